package id_test

import (
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailmerge/pkg/id"
)

var crockford = regexp.MustCompile(`^[0-9A-HJ-NP-TV-Z]{26}$`)

func TestNewULID_Format(t *testing.T) {
	t.Parallel()

	ulid := id.NewULID()
	require.Regexp(t, crockford, ulid, "ULID must be 26 Crockford Base32 characters")
}

func TestNewULID_Unique(t *testing.T) {
	t.Parallel()

	const n = 1000
	seen := make(map[string]struct{}, n)
	for range n {
		seen[id.NewULID()] = struct{}{}
	}
	require.Len(t, seen, n)
}

func TestNewULID_SortsByTime(t *testing.T) {
	t.Parallel()

	first := id.NewULID()
	time.Sleep(5 * time.Millisecond)
	second := id.NewULID()

	require.Greater(t, second[:10], first[:10], "timestamp prefix must advance")
	require.Greater(t, second, first)
}

func TestNewULID_ConcurrentUnique(t *testing.T) {
	t.Parallel()

	const goroutines = 50
	const perGoroutine = 100

	results := make(chan string, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for range goroutines {
		wg.Go(func() {
			for range perGoroutine {
				results <- id.NewULID()
			}
		})
	}
	wg.Wait()
	close(results)

	seen := make(map[string]struct{}, goroutines*perGoroutine)
	for ulid := range results {
		seen[ulid] = struct{}{}
	}
	require.Len(t, seen, goroutines*perGoroutine)
}
