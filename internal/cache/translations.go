package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TranslationCache maps a question key to previously generated SQL.
type TranslationCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, sql string) error
	Close() error
}

type redisTranslationCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisTranslationCache builds a cache with the given addr/password/db.
func NewRedisTranslationCache(addr, password string, db int, ttl time.Duration, prefix string) (TranslationCache, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	return NewTranslationCacheFromClient(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}), ttl, prefix), nil
}

// NewTranslationCacheFromClient wraps an existing client.
func NewTranslationCacheFromClient(client *redis.Client, ttl time.Duration, prefix string) TranslationCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if prefix == "" {
		prefix = "nl2sql"
	}
	return &redisTranslationCache{client: client, ttl: ttl, prefix: prefix}
}

func (c *redisTranslationCache) key(k string) string {
	return fmt.Sprintf("%s:%s", c.prefix, k)
}

func (c *redisTranslationCache) Get(ctx context.Context, key string) (string, bool, error) {
	if c == nil || c.client == nil {
		return "", false, nil
	}
	val, err := c.client.Get(ctx, c.key(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *redisTranslationCache) Set(ctx context.Context, key string, sql string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Set(ctx, c.key(key), sql, c.ttl).Err()
}

func (c *redisTranslationCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
