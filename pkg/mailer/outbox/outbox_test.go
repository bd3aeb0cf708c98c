package outbox

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailmerge/pkg/mailer"
)

// fakeClient is an in-memory stand-in for the Redis commands the outbox
// uses. TTLs are recorded but never enforced.
type fakeClient struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		data: make(map[string]string),
		ttls: make(map[string]time.Duration),
	}
}

func (f *fakeClient) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeClient) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	val, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeClient) Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	prefix := strings.TrimSuffix(match, "*")
	var keys []string
	for k := range f.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return redis.NewScanCmdResult(keys, 0, nil)
}

func (f *fakeClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestSend_StoresMessage(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	sender := New(client, WithPrefix("run-42"), WithTTL(time.Hour))

	msg := &mailer.Message{
		To:      "ann@example.com",
		Subject: "Hello Ann",
		HTML:    "<p>Hi</p>",
	}
	require.NoError(t, sender.Send(context.Background(), msg))

	require.Len(t, client.data, 1)
	for key, val := range client.data {
		require.True(t, strings.HasPrefix(key, "run-42:"))
		require.Contains(t, val, "ann@example.com")
		require.Equal(t, time.Hour, client.ttls[key])
	}
}

func TestMessages_RoundTrip(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	sender := New(client)
	ctx := context.Background()

	for _, to := range []string{"a@example.com", "b@example.com"} {
		require.NoError(t, sender.Send(ctx, &mailer.Message{
			To:      to,
			Subject: "s",
			Text:    "body",
		}))
	}

	msgs, err := sender.Messages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	var tos []string
	for _, m := range msgs {
		tos = append(tos, m.To)
	}
	require.ElementsMatch(t, []string{"a@example.com", "b@example.com"}, tos)
}

func TestMessages_IgnoresOtherPrefixes(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	ctx := context.Background()

	require.NoError(t, New(client, WithPrefix("run-1")).Send(ctx, &mailer.Message{To: "a@x.y", Subject: "s", Text: "t"}))
	require.NoError(t, New(client, WithPrefix("run-2")).Send(ctx, &mailer.Message{To: "b@x.y", Subject: "s", Text: "t"}))

	msgs, err := New(client, WithPrefix("run-1")).Messages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, "a@x.y", msgs[0].To)
}

func TestClear(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	sender := New(client)
	ctx := context.Background()

	require.NoError(t, sender.Send(ctx, &mailer.Message{To: "a@x.y", Subject: "s", Text: "t"}))
	require.NoError(t, sender.Clear(ctx))

	msgs, err := sender.Messages(ctx)
	require.NoError(t, err)
	require.Empty(t, msgs)
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	check := New(newFakeClient()).Healthcheck()
	require.NoError(t, check(context.Background()))
}
