package redis

import (
	"context"
	"io"
)

// Shutdown returns a function that gracefully closes the Redis client.
// It matches the func(ctx) error shape used by teardown paths, so the
// close can be joined with other shutdown errors.
//
// Example:
//
//	stop := redis.Shutdown(client)
//	defer func() { _ = stop(ctx) }()
func Shutdown(client io.Closer) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return client.Close()
	}
}
