package service

// ownedResource is any resource carrying a stored owner reference.
type ownedResource interface {
	OwnerID() int64
}

// ownedBy reports whether the authenticated user owns the resource. Every
// owner-restricted mutation goes through this one predicate.
func ownedBy(userID int64, r ownedResource) bool {
	return r.OwnerID() == userID
}
