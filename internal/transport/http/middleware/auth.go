package middleware

import (
	"context"
	"net/http"

	"devconnector/internal/httputil"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// UserIDKey is the context key for the authenticated user's ID
	UserIDKey contextKey = "user_id"
)

// TokenVerifier checks a bearer token and returns the embedded user ID.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// AuthMiddleware guards protected routes. The token travels in the
// x-auth-token header; there is no Authorization/Bearer fallback. The
// middleware never touches the database - handlers that need the full user
// record resolve it themselves.
func AuthMiddleware(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get("x-auth-token")
			if tokenString == "" {
				httputil.WriteMsg(w, http.StatusUnauthorized, "No token, authorization denied")
				return
			}

			userID, err := tokens.Verify(tokenString)
			if err != nil {
				// Expired, forged and malformed tokens all land here
				httputil.WriteMsg(w, http.StatusUnauthorized, "Token is not valid")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext extracts the user ID from the request context
// Returns the user ID and true if found, or 0 and false if not found
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}
