// Package redis provides Redis client utilities for the campaign outbox store.
//
// This package wraps [github.com/redis/go-redis/v9] to provide connection pooling,
// health checks, and graceful shutdown with sensible defaults for production workloads.
// The mailer's outbox provider uses it as its backing store.
//
// # Features
//
//   - Connection pooling with configurable limits and timeouts
//   - Automatic retry logic with exponential backoff during startup
//   - Health check function compatible with the health package's CheckFunc
//   - Support for redis:// and rediss:// (TLS) URL schemes
//   - Graceful shutdown helper matching func(ctx) error teardown paths
//
// # Configuration
//
// All settings are configured via functional options:
//
//   - WithPoolSize(n int) — Maximum number of connections (default: 5)
//   - WithMinIdleConns(n int) — Minimum idle connections (default: 1)
//   - WithRetry(attempts int, interval time.Duration) — Retry attempts and base interval (default: 3 attempts, 2s)
//   - WithReadTimeout(d time.Duration) — Read operation timeout (default: 3s)
//   - WithWriteTimeout(d time.Duration) — Write operation timeout (default: 3s)
//   - WithDialTimeout(d time.Duration) — Connection dial timeout (default: 5s)
//
// The pool stays small because campaign delivery is sequential; one
// writer plus the health probe never needs more.
//
// # Usage
//
// Basic connection setup with functional options:
//
//	import (
//		"context"
//		"log"
//		"os"
//
//		"github.com/dmitrymomot/mailmerge/pkg/redis"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		client, err := redis.Open(ctx, os.Getenv("REDIS_URL"),
//			redis.WithPoolSize(20),
//			redis.WithMinIdleConns(5),
//		)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer client.Close()
//	}
//
// # Health Checks
//
// The [Healthcheck] function returns a closure suitable for readiness probes:
//
//	import (
//		"github.com/dmitrymomot/mailmerge/pkg/health"
//		"github.com/dmitrymomot/mailmerge/pkg/redis"
//	)
//
//	mux.Handle("/healthz", health.ReadinessHandler(health.Checks{
//		"redis": redis.Healthcheck(client),
//	}))
//
// # Graceful Shutdown
//
// Use [Shutdown] to fold client closure into a teardown path:
//
//	client := redis.MustOpen(ctx, redisURL)
//	stop := redis.Shutdown(client)
//	defer func() { _ = stop(ctx) }()
//
// # Error Handling
//
// The package defines sentinel errors for common failure modes:
//
//   - [ErrEmptyConnectionURL] - Empty connection URL provided
//   - [ErrFailedToParseURL] - Invalid connection URL format or scheme
//   - [ErrConnectionFailed] - Connection failed after all retry attempts
//   - [ErrHealthcheckFailed] - Redis ping failed
//
// Errors are wrapped using [errors.Join] to preserve the original error context.
package redis
