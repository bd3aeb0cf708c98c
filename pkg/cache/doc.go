// Package cache provides a generic in-process cache with TTL expiry,
// built for memoizing rendered preview pages.
//
// # Interface
//
// The [Cache] interface is generic over value type V:
//
//   - Get(ctx, key) (V, error) — retrieve a value
//   - Set(ctx, key, value, ttl) error — store a value with TTL
//   - Delete(ctx, key) error — remove a key
//   - Has(ctx, key) (bool, error) — check existence
//   - Clear(ctx) error — remove all entries
//   - Close() error — release resources
//
// TTL semantics for Set:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL (10 minutes by default)
//   - Negative: item never expires
//
// # In-Memory Cache
//
// [NewMemory] backs the preview server's page cache: each rendered
// recipient page is stored under its page key so repeated visits do not
// re-render the message. Expired entries are dropped lazily on access
// and swept by a background janitor goroutine:
//
//	pages := cache.NewMemory[string](
//	    cache.WithDefaultTTL(5 * time.Minute),
//	    cache.WithMaxEntries(500),
//	)
//	defer pages.Close()
//
//	pages.Set(ctx, "page:1", html, 0)     // uses default TTL
//	val, err := pages.Get(ctx, "page:1")
//
// When a maximum entry count is set, the least recently accessed entry
// is evicted to make room for new ones.
//
// # Render Deduplication
//
// Use the standalone [GetOrSet] function to collapse concurrent misses.
// It uses singleflight so only one goroutine renders a missing page:
//
//	val, err := cache.GetOrSet(ctx, pages, "page:3", func(ctx context.Context) (string, time.Duration, error) {
//	    html, err := renderPage(ctx, 3)
//	    return html, 5 * time.Minute, err
//	})
//
// # Error Handling
//
// The package defines sentinel errors:
//
//   - [ErrNotFound] — key does not exist or has expired
//   - [ErrClosed] — write on a closed cache
//
// Use [errors.Is] to check:
//
//	val, err := pages.Get(ctx, "key")
//	if errors.Is(err, cache.ErrNotFound) {
//	    // handle miss
//	}
package cache
