package cache

import "time"

// MemoryOption configures the in-memory cache.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	defaultTTL      time.Duration
	cleanupInterval time.Duration
	maxEntries      int
}

// Defaults suit short-lived render caches: entries live minutes, not
// hours, and the sweep runs often enough that an idle preview server
// releases page memory promptly.
func defaultMemoryOptions() *memoryOptions {
	return &memoryOptions{
		defaultTTL:      10 * time.Minute,
		cleanupInterval: time.Minute,
		maxEntries:      0, // 0 = unlimited
	}
}

// WithDefaultTTL sets the expiration applied when Set is called with a
// zero TTL.
// Default: 10 minutes.
func WithDefaultTTL(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.defaultTTL = d
	}
}

// WithCleanupInterval sets how often expired entries are swept by the
// background janitor goroutine. Zero disables the janitor; expired
// entries are then dropped lazily on access.
// Default: 1 minute.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.cleanupInterval = d
	}
}

// WithMaxEntries caps the number of entries. When the cap is reached,
// the least recently accessed entry is evicted to make room.
// Default: 0 (unlimited).
func WithMaxEntries(n int) MemoryOption {
	return func(o *memoryOptions) {
		o.maxEntries = n
	}
}
