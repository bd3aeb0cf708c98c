package cache

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a generic key-value cache with TTL support.
//
// TTL semantics for Set:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL
//   - Negative: item never expires
type Cache[V any] interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) (V, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error

	// Delete removes a key from the cache.
	Delete(ctx context.Context, key string) error

	// Has checks whether a key exists and has not expired.
	Has(ctx context.Context, key string) (bool, error)

	// Clear removes all entries from the cache.
	Clear(ctx context.Context) error

	// Close releases resources (stops background goroutines, etc.).
	Close() error
}

var flight singleflight.Group

type loaded[V any] struct {
	val V
	ttl time.Duration
}

// GetOrSet retrieves a value from the cache, or calls load to compute it
// on a miss. Concurrent misses for the same key collapse into a single
// load call via singleflight, so a burst of requests for an uncached
// page renders it once.
//
// The load callback returns the value, a TTL for caching, and an error.
// On error nothing is cached and the error is returned as-is.
func GetOrSet[V any](ctx context.Context, c Cache[V], key string, load func(ctx context.Context) (V, time.Duration, error)) (V, error) {
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}

	// The flight key is scoped to the cache instance so two caches
	// using the same key names never share a load.
	v, err, _ := flight.Do(fmt.Sprintf("%p:%s", c, key), func() (any, error) {
		val, ttl, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return loaded[V]{val: val, ttl: ttl}, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	r := v.(loaded[V])

	// Best effort: a Set on a closed cache just means the value is
	// returned uncached.
	_ = c.Set(ctx, key, r.val, r.ttl)

	return r.val, nil
}
