// File: internal/service/token.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"lightbnb/internal/cache"
	"lightbnb/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	timeNow    = time.Now
	newTokenID = uuid.NewString
)

// ErrTokenRevoked is returned by Verify for a logged-out token.
var ErrTokenRevoked = errors.New("token revoked")

// Claims is the JWT payload.
type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 access tokens. Revoked token ids are kept
// in Redis until the token would have expired anyway.
type Tokens struct {
	secret  []byte
	ttl     time.Duration
	revoked cache.Cache
}

func NewTokens(secret string, ttl time.Duration, revoked cache.Cache) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, revoked: revoked}
}

// Issue signs a token for user.
func (t *Tokens) Issue(user model.User) (string, error) {
	if len(t.secret) == 0 {
		return "", fmt.Errorf("jwt secret not set")
	}
	now := timeNow()
	claims := Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        newTokenID(),
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses tokenString and rejects expired or revoked tokens.
func (t *Tokens) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(timeNow),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, fmt.Errorf("invalid token")
	}

	revoked, err := cache.IsRevoked(ctx, t.revoked, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// Revoke denies the token for the rest of its lifetime.
func (t *Tokens) Revoke(ctx context.Context, claims *Claims) error {
	if claims.ExpiresAt == nil {
		return fmt.Errorf("token has no expiry")
	}
	return cache.RevokeToken(ctx, t.revoked, claims.ID, claims.ExpiresAt.Sub(timeNow()))
}
