package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CounterStore backs fixed-window rate limiting with Redis counters.
// Key format: ratelimit:<key>
type CounterStore struct {
	client *redis.Client
}

// NewCounterStore creates a CounterStore wrapping the given Redis client.
func NewCounterStore(client *redis.Client) *CounterStore {
	return &CounterStore{client: client}
}

// Incr increments the counter for key and returns the new count. The first
// increment in a window arms the window's expiry.
func (s *CounterStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	k := "ratelimit:" + key

	n, err := s.client.Incr(ctx, k).Result()
	if err != nil {
		return 0, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := s.client.Expire(ctx, k, window).Err(); err != nil {
			return n, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n, nil
}
