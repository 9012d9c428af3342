// Package redis provides the Redis-backed implementation of the
// internal/cache interface. It holds derived projections of store data
// only; the database remains the source of truth on any disagreement.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/phrazzld/task-api/internal/cache"
	goredis "github.com/redis/go-redis/v9"
)

// Config holds connection settings for the Redis cache.
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Cache implements cache.Cache backed by a Redis server.
type Cache struct {
	client *goredis.Client
}

// New creates a Redis-backed cache from the given configuration.
// The connection is lazy; call Ping to verify reachability.
func New(cfg Config) *Cache {
	client := goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Cache{client: client}
}

// NewFromClient creates a Redis cache using an existing client.
// Useful for tests that provide their own client.
func NewFromClient(client *goredis.Client) *Cache {
	return &Cache{client: client}
}

// Ensure Cache implements cache.Cache interface
var _ cache.Cache = (*Cache)(nil)

// Get retrieves the value stored under key.
// Returns cache.ErrNotFound when the key is absent, expired, or empty.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", cache.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if val == "" {
		return "", cache.ErrNotFound
	}
	return val, nil
}

// Set stores a value under key with the given TTL.
func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes the given keys. Deleting a missing key is not an error.
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// Ping verifies connectivity to the Redis server.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client's resources.
func (c *Cache) Close() error {
	return c.client.Close()
}
