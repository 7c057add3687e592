package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter counts login attempts per client in a fixed window backed by
// Redis, so the limit holds across replicas.
// Key format: login:ip:<client_ip>
type LoginLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewLoginLimiter creates a LoginLimiter allowing limit attempts per window.
func NewLoginLimiter(client *redis.Client, limit int, window time.Duration) *LoginLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginLimiter{client: client, limit: limit, window: window}
}

// Allow records one attempt for key and reports whether it is still within
// the window's budget. The window starts on the first attempt and expires on
// its own; counting by INCR keeps the check one round trip.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("login:ip:%s", key)

	n, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= int64(l.limit), nil
}
