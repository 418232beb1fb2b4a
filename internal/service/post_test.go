package service

import (
	"context"
	"errors"
	"testing"

	"devconnector/internal/model"
)

type mockPostRepository struct {
	createFn        func(ctx context.Context, post *model.Post) error
	getByIDFn       func(ctx context.Context, postID int64) (*model.Post, error)
	getAllFn        func(ctx context.Context) ([]model.Post, error)
	deleteFn        func(ctx context.Context, postID int64) error
	likeFn          func(ctx context.Context, postID, userID int64) error
	unlikeFn        func(ctx context.Context, postID, userID int64) error
	getLikesFn      func(ctx context.Context, postID int64) ([]model.Like, error)
	addCommentFn    func(ctx context.Context, comment *model.Comment) error
	getCommentFn    func(ctx context.Context, commentID int64) (*model.Comment, error)
	deleteCommentFn func(ctx context.Context, commentID int64) error
	getCommentsFn   func(ctx context.Context, postID int64) ([]model.Comment, error)

	deleteCalls        []int64
	deleteCommentCalls []int64
	addCommentCalls    []*model.Comment
}

func (m *mockPostRepository) Create(ctx context.Context, post *model.Post) error {
	if m.createFn != nil {
		return m.createFn(ctx, post)
	}
	return nil
}

func (m *mockPostRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, postID)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepository) GetAll(ctx context.Context) ([]model.Post, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockPostRepository) Delete(ctx context.Context, postID int64) error {
	m.deleteCalls = append(m.deleteCalls, postID)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, postID)
	}
	return nil
}

func (m *mockPostRepository) Like(ctx context.Context, postID, userID int64) error {
	if m.likeFn != nil {
		return m.likeFn(ctx, postID, userID)
	}
	return nil
}

func (m *mockPostRepository) Unlike(ctx context.Context, postID, userID int64) error {
	if m.unlikeFn != nil {
		return m.unlikeFn(ctx, postID, userID)
	}
	return nil
}

func (m *mockPostRepository) GetLikes(ctx context.Context, postID int64) ([]model.Like, error) {
	if m.getLikesFn != nil {
		return m.getLikesFn(ctx, postID)
	}
	return nil, nil
}

func (m *mockPostRepository) AddComment(ctx context.Context, comment *model.Comment) error {
	m.addCommentCalls = append(m.addCommentCalls, comment)
	if m.addCommentFn != nil {
		return m.addCommentFn(ctx, comment)
	}
	return nil
}

func (m *mockPostRepository) GetComment(ctx context.Context, commentID int64) (*model.Comment, error) {
	if m.getCommentFn != nil {
		return m.getCommentFn(ctx, commentID)
	}
	return nil, model.ErrCommentNotFound
}

func (m *mockPostRepository) DeleteComment(ctx context.Context, commentID int64) error {
	m.deleteCommentCalls = append(m.deleteCommentCalls, commentID)
	if m.deleteCommentFn != nil {
		return m.deleteCommentFn(ctx, commentID)
	}
	return nil
}

func (m *mockPostRepository) GetComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	if m.getCommentsFn != nil {
		return m.getCommentsFn(ctx, postID)
	}
	return nil, nil
}

func existingPost(id, userID int64) func(ctx context.Context, postID int64) (*model.Post, error) {
	return func(ctx context.Context, postID int64) (*model.Post, error) {
		if postID != id {
			return nil, model.ErrPostNotFound
		}
		return &model.Post{ID: id, UserID: userID, Text: "hello"}, nil
	}
}

func TestPostService_Create_DenormalizesAuthor(t *testing.T) {
	postRepo := &mockPostRepository{
		createFn: func(ctx context.Context, post *model.Post) error {
			post.ID = 10
			return nil
		},
	}
	userRepo := &mockUserRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, Name: "Jane Dev", Avatar: "https://gravatar.com/avatar/abc"}, nil
		},
	}
	svc := NewPostService(postRepo, userRepo)

	post, err := svc.Create(context.Background(), 1, &model.CreatePostRequest{Text: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if post.Name != "Jane Dev" {
		t.Errorf("name = %q, want %q", post.Name, "Jane Dev")
	}
	if post.Avatar != "https://gravatar.com/avatar/abc" {
		t.Errorf("avatar = %q, want author's avatar", post.Avatar)
	}
	if post.UserID != 1 {
		t.Errorf("user_id = %d, want 1", post.UserID)
	}
}

func TestPostService_Delete(t *testing.T) {
	tests := []struct {
		name       string
		postID     int64
		userID     int64
		wantErr    error
		wantDelete bool
	}{
		{name: "owner deletes", postID: 10, userID: 1, wantErr: nil, wantDelete: true},
		{name: "non-owner rejected", postID: 10, userID: 2, wantErr: model.ErrNotPostOwner, wantDelete: false},
		{name: "missing post", postID: 99, userID: 1, wantErr: model.ErrPostNotFound, wantDelete: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := &mockPostRepository{
				getByIDFn: existingPost(10, 1),
			}
			svc := NewPostService(postRepo, &mockUserRepository{})

			err := svc.Delete(context.Background(), tt.postID, tt.userID)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			gotDelete := len(postRepo.deleteCalls) > 0
			if gotDelete != tt.wantDelete {
				t.Errorf("delete called = %v, want %v", gotDelete, tt.wantDelete)
			}
		})
	}
}

func TestPostService_Like_Duplicate(t *testing.T) {
	postRepo := &mockPostRepository{
		getByIDFn: existingPost(10, 1),
		likeFn: func(ctx context.Context, postID, userID int64) error {
			return model.ErrAlreadyLiked
		},
	}
	svc := NewPostService(postRepo, &mockUserRepository{})

	_, err := svc.Like(context.Background(), 10, 2)
	if !errors.Is(err, model.ErrAlreadyLiked) {
		t.Errorf("error = %v, want %v", err, model.ErrAlreadyLiked)
	}
}

func TestPostService_Like_ReturnsUpdatedLikes(t *testing.T) {
	postRepo := &mockPostRepository{
		getByIDFn: existingPost(10, 1),
		getLikesFn: func(ctx context.Context, postID int64) ([]model.Like, error) {
			return []model.Like{{ID: 2, UserID: 2}, {ID: 1, UserID: 1}}, nil
		},
	}
	svc := NewPostService(postRepo, &mockUserRepository{})

	likes, err := svc.Like(context.Background(), 10, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(likes) != 2 {
		t.Fatalf("len(likes) = %d, want 2", len(likes))
	}
	// Newest like first
	if likes[0].UserID != 2 {
		t.Errorf("likes[0].UserID = %d, want 2", likes[0].UserID)
	}
}

func TestPostService_Unlike_NeverLiked(t *testing.T) {
	postRepo := &mockPostRepository{
		getByIDFn: existingPost(10, 1),
		unlikeFn: func(ctx context.Context, postID, userID int64) error {
			return model.ErrNotLiked
		},
	}
	svc := NewPostService(postRepo, &mockUserRepository{})

	_, err := svc.Unlike(context.Background(), 10, 2)
	if !errors.Is(err, model.ErrNotLiked) {
		t.Errorf("error = %v, want %v", err, model.ErrNotLiked)
	}
}

func TestPostService_AddComment_DenormalizesAuthor(t *testing.T) {
	postRepo := &mockPostRepository{
		getByIDFn: existingPost(10, 1),
	}
	userRepo := &mockUserRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, Name: "Commenter", Avatar: "https://gravatar.com/avatar/def"}, nil
		},
	}
	svc := NewPostService(postRepo, userRepo)

	_, err := svc.AddComment(context.Background(), 10, 2, &model.CreateCommentRequest{Text: "nice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(postRepo.addCommentCalls) != 1 {
		t.Fatalf("AddComment called %d times, want 1", len(postRepo.addCommentCalls))
	}
	comment := postRepo.addCommentCalls[0]
	if comment.Name != "Commenter" {
		t.Errorf("comment name = %q, want %q", comment.Name, "Commenter")
	}
	if comment.PostID != 10 || comment.UserID != 2 {
		t.Errorf("comment refs = (post %d, user %d), want (10, 2)", comment.PostID, comment.UserID)
	}
}

func TestPostService_DeleteComment(t *testing.T) {
	storedComment := &model.Comment{ID: 5, PostID: 10, UserID: 2, Text: "nice"}

	tests := []struct {
		name      string
		postID    int64
		commentID int64
		userID    int64
		wantErr   error
	}{
		{name: "owner deletes", postID: 10, commentID: 5, userID: 2, wantErr: nil},
		{name: "non-owner rejected", postID: 10, commentID: 5, userID: 3, wantErr: model.ErrNotCommentOwner},
		{name: "missing comment", postID: 10, commentID: 99, userID: 2, wantErr: model.ErrCommentNotFound},
		{name: "comment on another post", postID: 11, commentID: 5, userID: 2, wantErr: model.ErrCommentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := &mockPostRepository{
				getCommentFn: func(ctx context.Context, commentID int64) (*model.Comment, error) {
					if commentID != storedComment.ID {
						return nil, model.ErrCommentNotFound
					}
					return storedComment, nil
				},
			}
			svc := NewPostService(postRepo, &mockUserRepository{})

			_, err := svc.DeleteComment(context.Background(), tt.postID, tt.commentID, tt.userID)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				if len(postRepo.deleteCommentCalls) != 0 {
					t.Error("DeleteComment should not be called on failure")
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if len(postRepo.deleteCommentCalls) != 1 {
					t.Errorf("DeleteComment called %d times, want 1", len(postRepo.deleteCommentCalls))
				}
			}
		})
	}
}
