package mailer

import "context"

// Sender defines the minimal interface that delivery providers must
// implement. It accepts a fully-prepared Message and handles the actual
// delivery.
type Sender interface {
	// Send delivers one message. The Message must have To, Subject, and a
	// body (HTML or Text) already set. Returns an error if delivery fails.
	Send(ctx context.Context, msg *Message) error
}
