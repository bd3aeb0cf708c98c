package cache

import (
	"context"
	"sync"
	"time"
)

// item holds a cached value with its expiry and an access stamp used
// for eviction ordering.
type item[V any] struct {
	expiresAt time.Time // zero value = never expires
	value     V
	seen      uint64
}

func (it *item[V]) expired(now time.Time) bool {
	return !it.expiresAt.IsZero() && now.After(it.expiresAt)
}

// Memory is an in-memory cache with TTL-based expiration and an optional
// entry cap. When the cap is reached, the least recently accessed entry
// is evicted.
//
// Eviction uses a linear scan for the coldest entry. That keeps the data
// structure a plain map, which is the right trade for the small,
// page-sized caches this package serves; it is not built for millions of
// capped entries.
type Memory[V any] struct {
	items  map[string]*item[V]
	opts   *memoryOptions
	stamp  uint64
	done   chan struct{}
	mu     sync.Mutex
	closed bool
}

// NewMemory creates a new in-memory cache.
//
// Example:
//
//	pages := cache.NewMemory[string](
//	    cache.WithDefaultTTL(5 * time.Minute),
//	    cache.WithMaxEntries(500),
//	)
//	defer pages.Close()
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	o := defaultMemoryOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory[V]{
		items: make(map[string]*item[V]),
		opts:  o,
		done:  make(chan struct{}),
	}

	if o.cleanupInterval > 0 {
		go m.janitor()
	}

	return m
}

// Get retrieves a value by key.
// Returns ErrNotFound if the key does not exist or has expired.
// A hit refreshes the entry's access stamp for eviction ordering.
func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	it, ok := m.items[key]
	if !ok || it.expired(time.Now()) {
		if ok {
			delete(m.items, key)
		}
		var zero V
		return zero, ErrNotFound
	}

	m.stamp++
	it.seen = m.stamp

	return it.value, nil
}

// Set stores a value with the given TTL.
// TTL semantics: positive = expires after duration, zero = use default TTL,
// negative = never expires.
func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if ttl == 0 {
		ttl = m.opts.defaultTTL
	}
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	m.stamp++

	if it, ok := m.items[key]; ok {
		it.value = value
		it.expiresAt = expiresAt
		it.seen = m.stamp
		return nil
	}

	if m.opts.maxEntries > 0 && len(m.items) >= m.opts.maxEntries {
		m.evictColdest()
	}

	m.items[key] = &item[V]{value: value, expiresAt: expiresAt, seen: m.stamp}

	return nil
}

// Delete removes a key from the cache.
func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	delete(m.items, key)

	return nil
}

// Has checks whether a key exists and has not expired.
// Unlike Get, it does not refresh the access stamp.
func (m *Memory[V]) Has(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	it, ok := m.items[key]
	if !ok {
		return false, nil
	}
	if it.expired(time.Now()) {
		delete(m.items, key)
		return false, nil
	}

	return true, nil
}

// Clear removes all entries from the cache.
func (m *Memory[V]) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	m.items = make(map[string]*item[V])

	return nil
}

// Close stops the background janitor goroutine and marks the cache as
// closed. Close is idempotent. Reads keep working after Close; writes
// return ErrClosed.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	m.closed = true
	close(m.done)

	return nil
}

// janitor periodically sweeps expired entries so idle caches do not pin
// stale values until the next access.
func (m *Memory[V]) janitor() {
	ticker := time.NewTicker(m.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

func (m *Memory[V]) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for key, it := range m.items {
		if it.expired(now) {
			delete(m.items, key)
		}
	}
}

// evictColdest drops the entry with the oldest access stamp.
// Caller must hold the mutex.
func (m *Memory[V]) evictColdest() {
	var (
		coldKey string
		cold    uint64
		found   bool
	)
	for key, it := range m.items {
		if !found || it.seen < cold {
			coldKey, cold, found = key, it.seen, true
		}
	}
	if found {
		delete(m.items, coldKey)
	}
}

var _ Cache[any] = (*Memory[any])(nil)
