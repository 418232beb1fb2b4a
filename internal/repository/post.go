package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"devconnector/internal/model"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a new post with its denormalized author fields.
func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	query := `
		INSERT INTO posts (user_id, text, name, avatar, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`
	row := r.db.QueryRowxContext(ctx, query, post.UserID, post.Text, post.Name, post.Avatar)
	if err := row.Scan(&post.ID, &post.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	post.Likes = []model.Like{}
	post.Comments = []model.Comment{}
	return nil
}

// GetByID retrieves a single post with its likes and comments.
func (r *postRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	query := `
		SELECT id, user_id, text, name, avatar, created_at
		FROM posts
		WHERE id = $1
	`
	var post model.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err == sql.ErrNoRows {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if err := r.loadLikesAndComments(ctx, []*model.Post{&post}); err != nil {
		return nil, err
	}

	return &post, nil
}

// GetAll retrieves every post, newest first, with likes and comments.
func (r *postRepository) GetAll(ctx context.Context) ([]model.Post, error) {
	query := `
		SELECT id, user_id, text, name, avatar, created_at
		FROM posts
		ORDER BY created_at DESC, id DESC
	`
	var posts []model.Post
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}

	refs := make([]*model.Post, len(posts))
	for i := range posts {
		refs[i] = &posts[i]
	}
	if err := r.loadLikesAndComments(ctx, refs); err != nil {
		return nil, err
	}

	return posts, nil
}

// Delete removes a post. Likes and comments go with it via ON DELETE CASCADE.
// Ownership is checked by the caller before this runs.
func (r *postRepository) Delete(ctx context.Context, postID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

// Like inserts a like record. Returns ErrAlreadyLiked on a duplicate.
func (r *postRepository) Like(ctx context.Context, postID, userID int64) error {
	query := `INSERT INTO post_likes (post_id, user_id, created_at) VALUES ($1, $2, NOW())`
	_, err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		// Unique constraint violation means this user already liked the post
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return model.ErrAlreadyLiked
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

// Unlike deletes a like record. Returns ErrNotLiked if none exists.
func (r *postRepository) Unlike(ctx context.Context, postID, userID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrNotLiked
	}
	return nil
}

// GetLikes returns a post's likes, newest first.
func (r *postRepository) GetLikes(ctx context.Context, postID int64) ([]model.Like, error) {
	likes := []model.Like{}
	err := r.db.SelectContext(ctx, &likes, `
		SELECT id, post_id, user_id, created_at
		FROM post_likes
		WHERE post_id = $1
		ORDER BY id DESC
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get likes: %w", err)
	}
	return likes, nil
}

// AddComment inserts a comment with its denormalized author fields.
func (r *postRepository) AddComment(ctx context.Context, c *model.Comment) error {
	query := `
		INSERT INTO post_comments (post_id, user_id, text, name, avatar, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	row := r.db.QueryRowxContext(ctx, query, c.PostID, c.UserID, c.Text, c.Name, c.Avatar)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

// GetComment retrieves a single comment.
func (r *postRepository) GetComment(ctx context.Context, commentID int64) (*model.Comment, error) {
	query := `
		SELECT id, post_id, user_id, text, name, avatar, created_at
		FROM post_comments
		WHERE id = $1
	`
	var comment model.Comment
	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err == sql.ErrNoRows {
		return nil, model.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

// DeleteComment removes a comment. Ownership is checked by the caller.
func (r *postRepository) DeleteComment(ctx context.Context, commentID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM post_comments WHERE id = $1`, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}

// GetComments returns a post's comments, newest first.
func (r *postRepository) GetComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	comments := []model.Comment{}
	err := r.db.SelectContext(ctx, &comments, `
		SELECT id, post_id, user_id, text, name, avatar, created_at
		FROM post_comments
		WHERE post_id = $1
		ORDER BY created_at DESC, id DESC
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	return comments, nil
}

// loadLikesAndComments fetches likes and comments for many posts in two
// queries and attaches them, newest first.
func (r *postRepository) loadLikesAndComments(ctx context.Context, posts []*model.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]int64, len(posts))
	index := make(map[int64]*model.Post, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
		index[p.ID] = p
		p.Likes = []model.Like{}
		p.Comments = []model.Comment{}
	}

	var likes []model.Like
	err := r.db.SelectContext(ctx, &likes, `
		SELECT id, post_id, user_id, created_at
		FROM post_likes
		WHERE post_id = ANY($1)
		ORDER BY id DESC
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to get likes: %w", err)
	}
	for _, like := range likes {
		p := index[like.PostID]
		p.Likes = append(p.Likes, like)
	}

	var comments []model.Comment
	err = r.db.SelectContext(ctx, &comments, `
		SELECT id, post_id, user_id, text, name, avatar, created_at
		FROM post_comments
		WHERE post_id = ANY($1)
		ORDER BY created_at DESC, id DESC
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to get comments: %w", err)
	}
	for _, comment := range comments {
		p := index[comment.PostID]
		p.Comments = append(p.Comments, comment)
	}

	return nil
}
