package roster

import "errors"

var (
	// ErrInvalidEmail indicates an empty or unparseable email address.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrMissingHeader indicates the CSV lacks a required email or name header.
	ErrMissingHeader = errors.New("csv missing required header")

	// ErrUnknownCharset indicates an unrecognized charset label.
	ErrUnknownCharset = errors.New("unknown charset label")

	// ErrImportFailed indicates the CSV could not be read.
	ErrImportFailed = errors.New("failed to import roster")

	// ErrExportFailed indicates the CSV could not be written.
	ErrExportFailed = errors.New("failed to export roster")
)
