// Package cache defines an abstract key-value caching interface with TTL
// expiry. Implementations may use Redis or any other key-value store; the
// cache holds serialized projections of store data and is never treated as
// authoritative. Values are opaque strings, leaving encoding to the caller.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a key does not exist in the cache.
var ErrNotFound = errors.New("cache: key not found")

// DefaultTTL is the expiry applied to cached task projections. Entries
// not explicitly invalidated by a write disappear on their own after this
// window, which bounds staleness across service instances.
const DefaultTTL = 60 * time.Second

// AllTasksKey is the fixed key under which the full task collection is cached.
const AllTasksKey = "tasks:all"

// TaskKey returns the cache key for a single task's projection.
func TaskKey(id uuid.UUID) string {
	return fmt.Sprintf("task:%s", id)
}

// Cache abstracts a key-value cache with TTL support.
// All operations are safe for concurrent use.
type Cache interface {
	// Get retrieves the value associated with key.
	// Returns ErrNotFound if the key does not exist or has expired.
	// An empty stored value is indistinguishable from a miss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Delete removes the given keys from the cache. It is not an error to
	// delete a key that does not exist.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies connectivity to the underlying cache backend.
	Ping(ctx context.Context) error

	// Close releases all resources held by the cache implementation.
	Close() error
}
