package model

import (
	"errors"
	"time"
)

// Post is a status update. Author name and avatar are denormalized at
// creation time and are not kept in sync with later profile edits.
type Post struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Text      string    `db:"text" json:"text"`
	Name      string    `db:"name" json:"name"`
	Avatar    string    `db:"avatar" json:"avatar"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Joined fields (not in posts table)
	Likes    []Like    `json:"likes"`
	Comments []Comment `json:"comments"`
}

// OwnerID returns the post's stored owner reference.
func (p *Post) OwnerID() int64 { return p.UserID }

// Like is one user's like on a post. Unique per (post, user).
type Like struct {
	ID        int64     `db:"id" json:"id"`
	PostID    int64     `db:"post_id" json:"-"`
	UserID    int64     `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}

// Comment is a comment on a post with its own denormalized author fields.
type Comment struct {
	ID        int64     `db:"id" json:"id"`
	PostID    int64     `db:"post_id" json:"-"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Text      string    `db:"text" json:"text"`
	Name      string    `db:"name" json:"name"`
	Avatar    string    `db:"avatar" json:"avatar"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// OwnerID returns the comment's stored owner reference.
func (c *Comment) OwnerID() int64 { return c.UserID }

// CreatePostRequest is the request body for creating a post.
type CreatePostRequest struct {
	Text string `json:"text"`
}

// CreateCommentRequest is the request body for commenting on a post.
type CreateCommentRequest struct {
	Text string `json:"text"`
}

// Post errors
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrNotPostOwner    = errors.New("not the owner of this post")
	ErrAlreadyLiked    = errors.New("post already liked")
	ErrNotLiked        = errors.New("post has not yet been liked")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("not the owner of this comment")
)
