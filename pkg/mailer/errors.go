package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("message must have a recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("message must have a subject")

	// ErrNoContent indicates neither an HTML nor a text body was provided.
	ErrNoContent = errors.New("message must have a body")

	// ErrSendFailed indicates message delivery failed.
	ErrSendFailed = errors.New("failed to send message")

	// ErrInvalidConfig indicates a provider configuration is unusable.
	ErrInvalidConfig = errors.New("invalid provider config")
)
