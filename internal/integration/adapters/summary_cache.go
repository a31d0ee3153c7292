package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/controle-financeiro/backend/internal/application/adapter"
)

// summaryKeyPrefix namespaces every cached dashboard entry so invalidation
// can drop them all without touching unrelated keys.
const summaryKeyPrefix = "dashboard:"

// summaryCache implements the adapter.SummaryCache interface on Redis.
// Values are stored as JSON.
type summaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a new Redis-backed summary cache instance.
func NewSummaryCache(client *redis.Client) adapter.SummaryCache {
	return &summaryCache{
		client: client,
	}
}

// Get loads a cached value into dest. The second return is false on a miss.
func (c *summaryCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	payload, err := c.client.Get(ctx, summaryKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("failed to decode cache entry: %w", err)
	}
	return true, nil
}

// Set stores a value under key with the given TTL.
func (c *summaryCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	if err := c.client.Set(ctx, summaryKeyPrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Invalidate drops every cached summary entry.
func (c *summaryCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, summaryKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to drop cache keys: %w", err)
	}
	return nil
}
