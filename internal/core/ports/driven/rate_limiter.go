package driven

import "context"

// RateLimiter bounds request rates per client key.
type RateLimiter interface {
	// Allow reports whether the caller identified by key may proceed
	// with one more request in the current window.
	Allow(ctx context.Context, key string) (bool, error)
}
