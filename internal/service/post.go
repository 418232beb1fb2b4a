package service

import (
	"context"
	"fmt"
	"log"

	"devconnector/internal/model"
	"devconnector/internal/repository"
)

// PostService handles posts, likes and comments.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// Create creates a post, copying the author's name and avatar at creation
// time. Later profile edits do not touch existing posts.
func (s *PostService) Create(ctx context.Context, userID int64, req *model.CreatePostRequest) (*model.Post, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		UserID: userID,
		Text:   req.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	return post, nil
}

// GetAll returns every post, newest first.
func (s *PostService) GetAll(ctx context.Context) ([]model.Post, error) {
	return s.postRepo.GetAll(ctx)
}

// GetByID returns a single post with likes and comments.
func (s *PostService) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

// Delete removes a post. Only the owner may delete it.
func (s *PostService) Delete(ctx context.Context, postID, userID int64) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if !ownedBy(userID, post) {
		return model.ErrNotPostOwner
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	log.Printf("[PostService] User %d deleted post %d", userID, postID)
	return nil
}

// Like records a like and returns the updated likes. A second like by the
// same user is rejected.
func (s *PostService) Like(ctx context.Context, postID, userID int64) ([]model.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.postRepo.Like(ctx, postID, userID); err != nil {
		return nil, err
	}

	log.Printf("[PostService] User %d liked post %d", userID, postID)
	return s.postRepo.GetLikes(ctx, postID)
}

// Unlike removes a like and returns the updated likes. Unliking a post the
// user never liked is rejected.
func (s *PostService) Unlike(ctx context.Context, postID, userID int64) ([]model.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.postRepo.Unlike(ctx, postID, userID); err != nil {
		return nil, err
	}

	log.Printf("[PostService] User %d unliked post %d", userID, postID)
	return s.postRepo.GetLikes(ctx, postID)
}

// AddComment adds a comment with denormalized author fields and returns the
// post's updated comments.
func (s *PostService) AddComment(ctx context.Context, postID, userID int64, req *model.CreateCommentRequest) ([]model.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		PostID: postID,
		UserID: userID,
		Text:   req.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
	}

	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	return s.postRepo.GetComments(ctx, postID)
}

// DeleteComment removes a comment. Only the comment's owner may delete it.
// Returns the post's remaining comments.
func (s *PostService) DeleteComment(ctx context.Context, postID, commentID, userID int64) ([]model.Comment, error) {
	comment, err := s.postRepo.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		return nil, model.ErrCommentNotFound
	}
	if !ownedBy(userID, comment) {
		return nil, model.ErrNotCommentOwner
	}

	if err := s.postRepo.DeleteComment(ctx, commentID); err != nil {
		return nil, err
	}

	log.Printf("[PostService] User %d deleted comment %d from post %d", userID, commentID, postID)
	return s.postRepo.GetComments(ctx, postID)
}
