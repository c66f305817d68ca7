package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	cacheport "github.com/fintrack/fintrack-api/internal/domain/port/cache"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
)

const scanBatch = 200

// Options configures the redis connection
type Options struct {
	Addr     string
	Password string
	DB       int
}

// RedisCache stores JSON encoded values in redis
type RedisCache struct {
	client *redis.Client
	logger coreport.Logger
}

var _ cacheport.Cache = (*RedisCache)(nil)

// NewRedisCache connects to redis and verifies the connection with a ping
func NewRedisCache(ctx context.Context, opts Options, logger coreport.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", opts.Addr, err)
	}
	return &RedisCache{client: client, logger: logger}, nil
}

// Get loads key into dest. A missing key is a miss, not an error.
func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(val, dest); err != nil {
		c.logger.Warn("Dropping undecodable cache entry", map[string]any{
			"key":   key,
			"error": err,
		})
		_ = c.client.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

// Set stores value under key for ttl
func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, ttl).Err()
}

// DeleteByPrefix scans for keys starting with prefix and deletes them in batches
func (c *RedisCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, escapeGlob(prefix)+"*", scanBatch).Iterator()

	batch := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return c.client.Del(ctx, batch...).Err()
	}
	return nil
}

// Close releases the connection pool
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// escapeGlob quotes the characters redis MATCH treats as pattern syntax
func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
