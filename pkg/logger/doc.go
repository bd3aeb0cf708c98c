// Package logger builds the structured loggers used across campaign
// tooling: stderr JSON output, context-scoped attributes, and optional
// Sentry mirroring.
//
// # Overview
//
// The package provides:
//   - [New] for a stderr JSON logger; reports printed on stdout stay clean
//   - [NewNope] for a discard logger, the default inside library types
//   - [NewWithSentry] for mirroring warnings and errors to Sentry
//   - [Wrap] for adding context extraction to any slog.Handler
//
// # Basic Usage
//
// Create a logger with context extractors:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//
//	// request_id is appended automatically when present in the context
//	log.InfoContext(ctx, "page rendered", slog.Int("page", 3))
//	// {"level":"INFO","msg":"page rendered","page":3,"request_id":"01J..."}
//
// # Context Extractors
//
// A [ContextExtractor] pulls one attribute out of a context:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Extractors run on every log call, so request- and run-scoped values
// stay fresh. Return false to skip the attribute for that entry.
//
// # Sentry Integration
//
// For production error tracking, use [NewWithSentry]:
//
//	cfg := logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	}
//	log := logger.NewWithSentry(cfg, middlewares.RequestIDExtractor())
//
// Errors open Sentry issues; warnings are kept as log entries for
// context. With an empty DSN the logger degrades to the stderr stream
// alone, so development and production share one code path.
//
// # Wrapping Custom Handlers
//
// [Wrap] adds extraction to any handler implementation:
//
//	h := slog.NewTextHandler(os.Stderr, nil)
//	log := slog.New(logger.Wrap(h, extractors...))
package logger
