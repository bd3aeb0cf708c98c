package preview

import "errors"

// Sentinel errors for preview server construction and readiness checks.
var (
	// ErrNoTemplate is returned when a server is created without a template.
	ErrNoTemplate = errors.New("preview: template is required")

	// ErrNoRoster is returned when a server is created without a roster.
	ErrNoRoster = errors.New("preview: roster is required")

	// ErrEmptyRoster is reported by the readiness check when the roster
	// has no recipients to preview.
	ErrEmptyRoster = errors.New("preview: roster has no recipients")
)
