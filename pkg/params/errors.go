package params

import "errors"

var (
	// ErrEmptyLabel indicates a parameter without a display label.
	ErrEmptyLabel = errors.New("parameter label must not be empty")

	// ErrEmptyIdentifier indicates a parameter without an identifier.
	ErrEmptyIdentifier = errors.New("parameter identifier must not be empty")

	// ErrInvalidIdentifier indicates an identifier with characters outside
	// letters, digits, and underscores.
	ErrInvalidIdentifier = errors.New("parameter identifier must contain only letters, digits, or underscores")

	// ErrDuplicateIdentifier indicates an identifier already registered
	// (comparison is case-insensitive).
	ErrDuplicateIdentifier = errors.New("parameter identifier already registered")

	// ErrSystemParam indicates an attempt to remove a built-in parameter.
	ErrSystemParam = errors.New("system parameter cannot be removed")

	// ErrNotFound indicates the identifier is not registered.
	ErrNotFound = errors.New("parameter not found")
)
