package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// HitCounter accumulates per-route request counts in Redis.
// Key format: hits:<method>:<path>
type HitCounter struct {
	client *redis.Client
}

// NewHitCounter creates a HitCounter wrapping the given Redis client.
func NewHitCounter(client *redis.Client) *HitCounter {
	return &HitCounter{client: client}
}

// Record increments the counter for one served request.
func (h *HitCounter) Record(ctx context.Context, method, path string) error {
	if err := h.client.Incr(ctx, h.key(method, path)).Err(); err != nil {
		return fmt.Errorf("record hit: %w", err)
	}
	return nil
}

func (h *HitCounter) key(method, path string) string {
	return fmt.Sprintf("hits:%s:%s", method, path)
}
