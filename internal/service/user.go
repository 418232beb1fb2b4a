package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"devconnector/internal/model"
	"devconnector/internal/repository"
)

// UserService handles registration, login and account lifecycle.
type UserService struct {
	repo   repository.UserRepository
	tokens *TokenService
}

func NewUserService(repo repository.UserRepository, tokens *TokenService) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
	}
}

// Register creates a new account and returns a signed bearer token.
// No profile is created implicitly.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (string, error) {
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return "", fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return "", model.ErrEmailExists
	}

	// bcrypt.DefaultCost is 10; the salt is generated per hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHashed: string(hashedPassword),
		Avatar:         avatarURL(req.Email),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

// Login authenticates with email and password and returns a bearer token.
// An unknown email and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (string, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			// Don't reveal whether the email is registered
			return "", model.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHashed), []byte(req.Password)); err != nil {
		return "", model.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

// GetByID resolves the full user record for an authenticated identity.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// DeleteAccount removes the user along with their profile, posts, likes and
// comments (database cascade).
func (s *UserService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}
	log.Printf("[UserService] Deleted account %d", userID)
	return nil
}
