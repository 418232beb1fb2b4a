package repository

import (
	"context"

	"devconnector/internal/model"
)

type UserRepository interface {
	// Create returns model.ErrEmailExists when the email unique
	// constraint trips.
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Delete removes the user. Owned profiles, posts, likes and comments
	// go with it via ON DELETE CASCADE.
	Delete(ctx context.Context, id int64) error
}

type ProfileRepository interface {
	// Upsert creates the profile if absent, otherwise overwrites every
	// scalar field. Experience and education entries are untouched.
	Upsert(ctx context.Context, profile *model.Profile) error
	GetByUserID(ctx context.Context, userID int64) (*model.Profile, error)
	GetAll(ctx context.Context) ([]model.Profile, error)
	AddExperience(ctx context.Context, profileID int64, exp *model.Experience) error
	DeleteExperience(ctx context.Context, profileID, expID int64) error
	AddEducation(ctx context.Context, profileID int64, edu *model.Education) error
	DeleteEducation(ctx context.Context, profileID, eduID int64) error
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, postID int64) (*model.Post, error)
	GetAll(ctx context.Context) ([]model.Post, error)
	Delete(ctx context.Context, postID int64) error
	// Like returns model.ErrAlreadyLiked on a duplicate like.
	Like(ctx context.Context, postID, userID int64) error
	// Unlike returns model.ErrNotLiked when no like record exists.
	Unlike(ctx context.Context, postID, userID int64) error
	GetLikes(ctx context.Context, postID int64) ([]model.Like, error)
	AddComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, commentID int64) (*model.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
	GetComments(ctx context.Context, postID int64) ([]model.Comment, error)
}
