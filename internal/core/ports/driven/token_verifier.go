package driven

import "context"

// TokenVerifier validates bearer credentials presented to protected routes.
type TokenVerifier interface {
	// Verify checks the presented bearer token. Returns
	// domain.ErrTokenExpired or domain.ErrTokenInvalid on failure.
	Verify(ctx context.Context, token string) error
}
