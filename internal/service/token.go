package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"devconnector/internal/config"
	"devconnector/internal/model"
)

// TokenService issues and verifies stateless HS256 bearer tokens. Tokens are
// self-verifying and never persisted; a leaked token stays valid until expiry.
type TokenService struct {
	secret []byte
	maxAge time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		maxAge: time.Duration(cfg.TokenMaxAge) * time.Second,
	}
}

type userClaim struct {
	ID int64 `json:"id"`
}

// tokenClaims carries the user identifier nested under "user", which is the
// payload shape clients of this API expect.
type tokenClaims struct {
	jwt.RegisteredClaims
	User userClaim `json:"user"`
}

// Issue signs a token embedding the user identifier, expiring maxAge from now.
func (s *TokenService) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.maxAge)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		User: userClaim{ID: userID},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded user identifier.
// Malformed, forged and expired tokens all come back as ErrInvalidToken;
// callers surface them identically.
func (s *TokenService) Verify(tokenString string) (int64, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, model.ErrInvalidToken
	}
	if !token.Valid || claims.User.ID == 0 {
		return 0, model.ErrInvalidToken
	}

	return claims.User.ID, nil
}
