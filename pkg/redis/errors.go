package redis

import "errors"

// Sentinel errors for connection and probe failures.
var (
	ErrEmptyConnectionURL = errors.New("redis: connection URL is empty")
	ErrFailedToParseURL   = errors.New("redis: failed to parse connection URL")
	ErrConnectionFailed   = errors.New("redis: failed to establish connection")
	ErrHealthcheckFailed  = errors.New("redis: healthcheck failed")
)
