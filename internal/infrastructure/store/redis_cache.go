package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/senaitabera/wellspring/internal/domain/contract"
	"github.com/senaitabera/wellspring/internal/domain/entity"
)

const lookupKeyPrefix = "blog:lookup:"

// RedisBlogCache is the shared implementation of the lookup cache for
// deployments running more than one instance. Same contract and freshness
// window as the in-memory cache; Redis handles eviction.
type RedisBlogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisBlogCache creates a Redis-backed lookup cache.
func NewRedisBlogCache(rdb *redis.Client, ttl time.Duration) *RedisBlogCache {
	return &RedisBlogCache{rdb: rdb, ttl: ttl}
}

var _ contract.IBlogCache = (*RedisBlogCache)(nil)

func lookupKey(key string) string { return lookupKeyPrefix + key }

// Get returns the cached post for the key, if present and fresh.
func (c *RedisBlogCache) Get(ctx context.Context, key string) (*entity.BlogPost, bool, error) {
	b, err := c.rdb.Get(ctx, lookupKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var post entity.BlogPost
	if err := json.Unmarshal(b, &post); err != nil {
		// A corrupt entry is treated as a miss and overwritten on the next Set.
		return nil, false, nil
	}
	return &post, true, nil
}

// Set stores the post under the key for the configured TTL.
func (c *RedisBlogCache) Set(ctx context.Context, key string, post *entity.BlogPost) error {
	data, err := json.Marshal(post)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, lookupKey(key), data, c.ttl).Err()
}

// Invalidate drops the given keys.
func (c *RedisBlogCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, 0, len(keys))
	for _, key := range keys {
		full = append(full, lookupKey(key))
	}
	return c.rdb.Del(ctx, full...).Err()
}

// Purge drops every lookup entry.
func (c *RedisBlogCache) Purge(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, lookupKeyPrefix+"*", 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	_, err := pipe.Exec(ctx)
	return err
}

// NewRedisFromURL connects a Redis client from a REDIS_URL style string.
func NewRedisFromURL(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return rdb, nil
}
