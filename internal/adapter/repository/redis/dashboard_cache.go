// Package redis implements the optional dashboard view cache. The cached
// payloads mirror what the overview page renders; invoice writes invalidate
// them so the next read rebuilds from the store.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// DashboardCache implements domain.DashboardCache on a Redis client.
type DashboardCache struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// NewDashboardCache creates a Redis-backed dashboard cache. Entries expire
// after ttl even without an explicit invalidation.
func NewDashboardCache(client *redis.Client, logger *slog.Logger, ttl time.Duration) *DashboardCache {
	return &DashboardCache{
		client: client,
		logger: logger.With("component", "dashboard_cache"),
		ttl:    ttl,
	}
}

func (c *DashboardCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// A corrupt entry is treated as a miss; drop it so the next
		// write replaces it.
		c.logger.Warn("dropping unreadable cache entry", "key", key, "error", err)
		_ = c.client.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

func (c *DashboardCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

func (c *DashboardCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
