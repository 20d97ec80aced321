package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/caffeinepub/ryk-cart/internal/core/ports"
)

// QueryCache is the Redis-backed cache of backend responses, keyed by
// logical query identity. Entries are stored as JSON under query:<key>.
type QueryCache struct {
	client *redis.Client
}

// compile-time check
var _ ports.QueryCache = (*QueryCache)(nil)

// NewQueryCache creates a QueryCache wrapping the given Redis client.
func NewQueryCache(client *redis.Client) *QueryCache {
	return &QueryCache{client: client}
}

// Get loads the entry for key into dest. Returns ports.ErrCacheMiss when
// the key has no entry.
func (c *QueryCache) Get(ctx context.Context, key string, dest any) error {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err == redis.Nil {
		return ports.ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("cache decode %s: %w", key, err)
	}
	return nil
}

// Set stores value under key with the given TTL.
func (c *QueryCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, c.key(key), raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Invalidate drops the entries for the given logical keys. Missing keys
// are not an error.
func (c *QueryCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.key(k)
	}
	if err := c.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

func (c *QueryCache) key(logical string) string {
	return "query:" + logical
}
