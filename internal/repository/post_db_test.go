package repository

import (
	"context"
	"errors"
	"testing"

	"devconnector/internal/model"
)

func TestPostRepository_LikeOrderingAndUniqueness(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	author := createTestUser(t, db, "like-author")
	firstLiker := createTestUser(t, db, "first-liker")
	secondLiker := createTestUser(t, db, "second-liker")

	repo := NewPostRepository(db)
	post := &model.Post{
		UserID: author.ID,
		Text:   "hello",
		Name:   author.Name,
		Avatar: author.Avatar,
	}
	if err := repo.Create(ctx, post); err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := repo.Like(ctx, post.ID, firstLiker.ID); err != nil {
		t.Fatalf("first like: %v", err)
	}
	if err := repo.Like(ctx, post.ID, secondLiker.ID); err != nil {
		t.Fatalf("second like: %v", err)
	}

	// The unique constraint rejects a second like by the same user
	if err := repo.Like(ctx, post.ID, firstLiker.ID); !errors.Is(err, model.ErrAlreadyLiked) {
		t.Errorf("duplicate like error = %v, want %v", err, model.ErrAlreadyLiked)
	}

	likes, err := repo.GetLikes(ctx, post.ID)
	if err != nil {
		t.Fatalf("get likes: %v", err)
	}
	if len(likes) != 2 {
		t.Fatalf("len(likes) = %d, want 2", len(likes))
	}
	// Newest like first
	if likes[0].UserID != secondLiker.ID {
		t.Errorf("likes[0].UserID = %d, want %d", likes[0].UserID, secondLiker.ID)
	}
	if likes[1].UserID != firstLiker.ID {
		t.Errorf("likes[1].UserID = %d, want %d", likes[1].UserID, firstLiker.ID)
	}
}

func TestPostRepository_CommentOrdering(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	author := createTestUser(t, db, "comment-author")
	repo := NewPostRepository(db)

	post := &model.Post{
		UserID: author.ID,
		Text:   "hello",
		Name:   author.Name,
		Avatar: author.Avatar,
	}
	if err := repo.Create(ctx, post); err != nil {
		t.Fatalf("create post: %v", err)
	}

	for _, text := range []string{"first comment", "second comment"} {
		err := repo.AddComment(ctx, &model.Comment{
			PostID: post.ID,
			UserID: author.ID,
			Text:   text,
			Name:   author.Name,
			Avatar: author.Avatar,
		})
		if err != nil {
			t.Fatalf("add comment %q: %v", text, err)
		}
	}

	comments, err := repo.GetComments(ctx, post.ID)
	if err != nil {
		t.Fatalf("get comments: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("len(comments) = %d, want 2", len(comments))
	}
	if comments[0].Text != "second comment" {
		t.Errorf("comments[0].Text = %q, want %q", comments[0].Text, "second comment")
	}
	if comments[1].Text != "first comment" {
		t.Errorf("comments[1].Text = %q, want %q", comments[1].Text, "first comment")
	}
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	repo := NewUserRepository(db)
	existing := createTestUser(t, db, "dup-email")

	err := repo.Create(ctx, &model.User{
		Name:           "Other User",
		Email:          existing.Email,
		Avatar:         existing.Avatar,
		PasswordHashed: "$2a$10$test",
	})
	if !errors.Is(err, model.ErrEmailExists) {
		t.Errorf("error = %v, want %v", err, model.ErrEmailExists)
	}
}
