// Package cache keeps query results in Redis between mutations.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hoa_stickers/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "hoa:cache:"

// RedisCache stores JSON encoded query results with a TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.IQueryCache = (*RedisCache)(nil)

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err()
}

// Invalidate deletes every key under the given prefixes.
func (c *RedisCache) Invalidate(ctx context.Context, prefixes ...string) error {
	for _, prefix := range prefixes {
		var keys []string
		iter := c.client.Scan(ctx, 0, keyPrefix+prefix+"*", 100).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return err
		}
		if len(keys) == 0 {
			continue
		}
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return err
		}
	}
	return nil
}

// NoopCache always misses. Used when no Redis is configured.
type NoopCache struct{}

var _ interfaces.IQueryCache = NoopCache{}

func (NoopCache) Get(context.Context, string, any) (bool, error) { return false, nil }

func (NoopCache) Set(context.Context, string, any) error { return nil }

func (NoopCache) Invalidate(context.Context, ...string) error { return nil }
