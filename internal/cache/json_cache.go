// Package cache provides a small JSON cache over Redis, with a no-op
// fallback so the rest of the app never branches on whether Redis is
// configured.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type JSONCache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}

type NoopJSONCache struct{}

func (NoopJSONCache) GetJSON(context.Context, string, any) (bool, error) { return false, nil }
func (NoopJSONCache) SetJSON(context.Context, string, any, time.Duration) error {
	return nil
}
func (NoopJSONCache) Delete(context.Context, ...string) error { return nil }
func (NoopJSONCache) Ping(context.Context) error              { return nil }

type RedisJSONCache struct {
	client *redis.Client
	prefix string
}

// NewJSONCache connects to Redis when a URL is configured and falls
// back to the no-op cache when it is not.
func NewJSONCache(url, prefix string) (JSONCache, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return NoopJSONCache{}, nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "bookify"
	}
	return &RedisJSONCache{client: redis.NewClient(opts), prefix: prefix}, nil
}

func (c *RedisJSONCache) key(k string) string {
	if c == nil || c.prefix == "" {
		return k
	}
	return c.prefix + ":" + k
}

func (c *RedisJSONCache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}
	s, err := c.client.Get(ctx, c.key(key)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisJSONCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(key), b, ttl).Err()
}

func (c *RedisJSONCache) Delete(ctx context.Context, keys ...string) error {
	if c == nil || c.client == nil || len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, 0, len(keys))
	for _, k := range keys {
		prefixed = append(prefixed, c.key(k))
	}
	return c.client.Del(ctx, prefixed...).Err()
}

func (c *RedisJSONCache) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}
