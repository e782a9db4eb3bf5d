package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/custodia-labs/sercha-feed/internal/core/domain"
	"github.com/custodia-labs/sercha-feed/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.TokenVerifier = (*Adapter)(nil)

// Adapter verifies bearer credentials for protected routes. Two modes:
// HS256 JWTs signed with a shared secret, or a single static token
// checked against a bcrypt hash (so the plaintext never sits in config).
type Adapter struct {
	jwtSecret []byte
	tokenHash []byte
}

// NewJWTAdapter creates an adapter that accepts HS256 JWTs
func NewJWTAdapter(secret string) *Adapter {
	return &Adapter{jwtSecret: []byte(secret)}
}

// NewStaticTokenAdapter creates an adapter that accepts the one token
// matching the given bcrypt hash
func NewStaticTokenAdapter(hash string) *Adapter {
	return &Adapter{tokenHash: []byte(hash)}
}

// Verify checks the presented bearer token
func (a *Adapter) Verify(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrTokenInvalid
	}
	if len(a.jwtSecret) > 0 {
		return a.verifyJWT(token)
	}
	if len(a.tokenHash) > 0 {
		if bcrypt.CompareHashAndPassword(a.tokenHash, []byte(token)) != nil {
			return domain.ErrTokenInvalid
		}
		return nil
	}
	return domain.ErrTokenInvalid
}

func (a *Adapter) verifyJWT(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.ErrTokenExpired
		}
		return domain.ErrTokenInvalid
	}
	if !token.Valid {
		return domain.ErrTokenInvalid
	}
	return nil
}

// HashToken generates a bcrypt hash for a static token. Used when
// provisioning FEED_TOKEN_HASH.
func HashToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash token: %w", err)
	}
	return string(hash), nil
}
