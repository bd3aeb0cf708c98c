package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel is the lowest level forwarded to Sentry as a log entry.
	// Levels below Warn are never forwarded; errors always open issues.
	MinLevel slog.Level
}

// NewWithSentry creates a logger that writes JSON to stderr and mirrors
// warnings and errors to Sentry. With an empty DSN, or when Sentry
// cannot be initialized, it degrades to the stderr stream alone, so
// local runs need no Sentry account.
func NewWithSentry(cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	local := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if cfg.DSN == "" {
		return slog.New(Wrap(local, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(Wrap(local, extractors...))
	}

	floor := max(cfg.MinLevel, slog.LevelWarn)
	var logLevels []slog.Level
	for _, l := range []slog.Level{slog.LevelWarn, slog.LevelError} {
		if l >= floor {
			logLevels = append(logLevels, l)
		}
	}

	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError}, // errors open Sentry issues
		LogLevel:   logLevels,                     // log entries for context and search
	}.NewSentryHandler(context.Background())

	return slog.New(Wrap(newFanout(local, remote), extractors...))
}
