package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter counts requests per client in fixed windows backed by Redis.
// Key format: ratelimit:<scope>:<ip>:<window_start_unix>
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRateLimiter creates a RateLimiter allowing limit requests per window.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, limit: int64(limit), window: window}
}

// Allow records one request for ip within the current window and reports
// whether the request is still within the limit.
func (r *RateLimiter) Allow(ctx context.Context, scope, ip string) (bool, error) {
	key := r.key(scope, ip)

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, r.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit: %w", err)
	}

	return incr.Val() <= r.limit, nil
}

func (r *RateLimiter) key(scope, ip string) string {
	windowStart := time.Now().Unix() / int64(r.window/time.Second)
	return fmt.Sprintf("ratelimit:%s:%s:%d", scope, ip, windowStart)
}
