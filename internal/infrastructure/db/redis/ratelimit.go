package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window request throttle backed by Redis.
// Key format: ratelimit:<scope>:<caller>
type Limiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewLimiter creates a Limiter allowing max requests per caller per window.
func NewLimiter(client *redis.Client, max int, window time.Duration) *Limiter {
	if max <= 0 {
		max = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{client: client, max: int64(max), window: window}
}

// Allow reports whether the caller identified by scope/caller is still within
// its window budget. The first request of a window sets the expiry.
func (l *Limiter) Allow(ctx context.Context, scope, caller string) (bool, error) {
	key := l.key(scope, caller)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.max, nil
}

func (l *Limiter) key(scope, caller string) string {
	return fmt.Sprintf("ratelimit:%s:%s", scope, caller)
}
