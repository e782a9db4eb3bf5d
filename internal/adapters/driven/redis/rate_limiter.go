package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/custodia-labs/sercha-feed/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.RateLimiter = (*RateLimiter)(nil)

const limiterPrefix = "sercha-feed:ratelimit:"

// incrScript atomically bumps the window counter and sets its expiry on
// first increment, so a crashed client never leaves a counter without TTL.
var incrScript = redis.NewScript(`
	local count = redis.call("incr", KEYS[1])
	if count == 1 then
		redis.call("pexpire", KEYS[1], ARGV[1])
	end
	return count
`)

// RateLimiter implements a fixed-window request limiter on Redis.
// One counter per client key per window; the window resets when the
// counter's TTL expires.
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRateLimiter creates a limiter allowing limit requests per window.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
	}
}

// Allow reports whether the caller identified by key may proceed.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	result, err := incrScript.Run(ctx, l.client, []string{limiterPrefix + key}, l.window.Milliseconds()).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit %s: %w", key, err)
	}
	return result.(int64) <= l.limit, nil
}

// Ping checks if the Redis backend is healthy.
func (l *RateLimiter) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}
