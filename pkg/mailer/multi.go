package mailer

import (
	"context"
	"errors"
)

// Multi fans one message out to several senders, e.g. a delivery provider
// plus an outbox archive. Every sender receives the message even when an
// earlier one fails; failures are joined into a single error.
type Multi struct {
	senders []Sender
}

// NewMulti creates a fan-out sender. With no senders it is a no-op.
func NewMulti(senders ...Sender) *Multi {
	return &Multi{senders: senders}
}

// Send implements Sender.
func (m *Multi) Send(ctx context.Context, msg *Message) error {
	var errs []error
	for _, s := range m.senders {
		if err := s.Send(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
