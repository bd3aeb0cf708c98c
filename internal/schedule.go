package internal

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/dmitrymomot/mailmerge/pkg/logger"
)

// Scheduler runs campaigns on cron expressions. Each scheduled campaign
// sends on its own schedule; a send that overlaps the next tick delays it
// (runs never overlap for the same scheduler).
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// NewScheduler creates a scheduler using standard 5-field cron expressions.
func NewScheduler(log *slog.Logger) *Scheduler {
	if log == nil {
		log = logger.NewNope()
	}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger{log: log}),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger{log: log})),
		),
		logger: log,
	}
}

// Add registers a campaign to send on the given cron expression. The
// expression is validated immediately; scheduling starts with Start.
func (s *Scheduler) Add(spec string, campaign *Campaign) (cron.EntryID, error) {
	entryID, err := s.cron.AddFunc(spec, func() {
		report, err := campaign.Send(context.Background())
		if err != nil {
			s.logger.Error("scheduled campaign failed",
				slog.String("campaign", campaign.Name()),
				slog.Any("error", err),
			)
			return
		}
		s.logger.Info("scheduled campaign finished",
			slog.String("campaign", campaign.Name()),
			slog.String("run_id", report.RunID),
			slog.Int("sent", report.Sent),
			slog.Int("failed", report.Failed),
		)
	})
	if err != nil {
		return 0, errors.Join(ErrInvalidSchedule, err)
	}
	return entryID, nil
}

// Start begins scheduling in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for any in-flight send to finish, or for
// the context to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ValidateSchedule reports whether spec is a valid standard cron expression.
func ValidateSchedule(spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return errors.Join(ErrInvalidSchedule, err)
	}
	return nil
}

// cronLogger adapts slog to the cron logging interface.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Info(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
