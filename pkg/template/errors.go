package template

import "errors"

var (
	// ErrUndefinedParams indicates the template references parameters that
	// are not available to the campaign.
	ErrUndefinedParams = errors.New("template uses undefined parameters")

	// ErrInvalidMode indicates an unknown template mode.
	ErrInvalidMode = errors.New("invalid template mode")

	// ErrLoadFailed indicates the campaign file could not be decoded.
	ErrLoadFailed = errors.New("failed to load campaign file")

	// ErrTemplateNotFound indicates the markdown template file was not found.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")

	// ErrComposeFailed indicates markdown conversion failed.
	ErrComposeFailed = errors.New("failed to compose markdown template")
)
