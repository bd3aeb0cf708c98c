// Package outbox archives campaign messages in Redis instead of, or in
// addition to, delivering them. A dry run sends the whole campaign through
// the outbox alone; a live run pairs it with a real provider via
// mailer.NewMulti to keep an audit copy of every message.
package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/mailmerge/pkg/mailer"
)

const defaultTTL = 7 * 24 * time.Hour

// Client is the subset of redis.UniversalClient the outbox uses.
type Client interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

var _ Client = (redis.UniversalClient)(nil)

// Option configures a Sender.
type Option func(*Sender)

// WithTTL overrides how long archived messages live. Zero keeps them
// until cleared.
func WithTTL(ttl time.Duration) Option {
	return func(s *Sender) {
		s.ttl = ttl
	}
}

// WithPrefix namespaces keys, typically by campaign run ID.
func WithPrefix(prefix string) Option {
	return func(s *Sender) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// Sender implements mailer.Sender by storing messages as JSON under
// "<prefix>:<uuid>" keys.
type Sender struct {
	client Client
	prefix string
	ttl    time.Duration
}

// New creates an outbox backed by the given Redis client.
func New(client Client, opts ...Option) *Sender {
	s := &Sender{
		client: client,
		prefix: "outbox",
		ttl:    defaultTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, msg *mailer.Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("outbox: failed to encode message: %w", err)
	}

	key := fmt.Sprintf("%s:%s", s.prefix, uuid.NewString())
	if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("outbox: failed to store message: %w", err)
	}
	return nil
}

// Healthcheck returns a check that verifies the store is reachable. It
// satisfies the campaign preflight's optional provider probe.
func (s *Sender) Healthcheck() func(context.Context) error {
	return func(ctx context.Context) error {
		if err := s.client.Scan(ctx, 0, s.prefix+":*", 1).Err(); err != nil {
			return fmt.Errorf("outbox: store unreachable: %w", err)
		}
		return nil
	}
}

// Messages returns all archived messages under the sender's prefix.
// Order is unspecified.
func (s *Sender) Messages(ctx context.Context) ([]*mailer.Message, error) {
	var out []*mailer.Message
	err := s.scanKeys(ctx, func(key string) error {
		raw, err := s.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil // expired between scan and get
		}
		if err != nil {
			return fmt.Errorf("outbox: failed to read %s: %w", key, err)
		}

		var msg mailer.Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			return fmt.Errorf("outbox: failed to decode %s: %w", key, err)
		}
		out = append(out, &msg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Clear deletes all archived messages under the sender's prefix.
func (s *Sender) Clear(ctx context.Context) error {
	return s.scanKeys(ctx, func(key string) error {
		if err := s.client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("outbox: failed to delete %s: %w", key, err)
		}
		return nil
	})
}

func (s *Sender) scanKeys(ctx context.Context, visit func(key string) error) error {
	var cursor uint64
	pattern := s.prefix + ":*"
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("outbox: scan failed: %w", err)
		}
		for _, key := range keys {
			if err := visit(key); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
