package service

import (
	"errors"
	"testing"

	"devconnector/internal/config"
	"devconnector/internal/model"
)

func TestTokenService_RoundTrip(t *testing.T) {
	t.Parallel()

	tokens := testTokenService()

	signed, err := tokens.Issue(123)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	userID, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if userID != 123 {
		t.Errorf("user ID = %d, want 123", userID)
	}
}

func TestTokenService_Expired(t *testing.T) {
	t.Parallel()

	// Negative lifetime produces a token that is already expired
	tokens := NewTokenService(&config.Config{
		JWTSecret:   "test-secret",
		TokenMaxAge: -60,
	})

	signed, err := tokens.Issue(123)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := tokens.Verify(signed); !errors.Is(err, model.ErrInvalidToken) {
		t.Errorf("error = %v, want %v", err, model.ErrInvalidToken)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService(&config.Config{JWTSecret: "secret-a", TokenMaxAge: 3600})
	verifier := NewTokenService(&config.Config{JWTSecret: "secret-b", TokenMaxAge: 3600})

	signed, err := issuer.Issue(123)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := verifier.Verify(signed); !errors.Is(err, model.ErrInvalidToken) {
		t.Errorf("error = %v, want %v", err, model.ErrInvalidToken)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	t.Parallel()

	tokens := testTokenService()

	for _, tokenString := range []string{
		"",
		"not-a-jwt",
		"aaaa.bbbb.cccc",
	} {
		if _, err := tokens.Verify(tokenString); !errors.Is(err, model.ErrInvalidToken) {
			t.Errorf("Verify(%q) error = %v, want %v", tokenString, err, model.ErrInvalidToken)
		}
	}
}

func TestTokenService_MissingUserClaim(t *testing.T) {
	t.Parallel()

	tokens := testTokenService()

	// A zero user ID in the payload means the claim is absent or junk
	signed, err := tokens.Issue(0)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := tokens.Verify(signed); !errors.Is(err, model.ErrInvalidToken) {
		t.Errorf("error = %v, want %v", err, model.ErrInvalidToken)
	}
}
