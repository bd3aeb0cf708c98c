package mailmerge

import (
	"log/slog"

	"github.com/dmitrymomot/mailmerge/internal"
	"github.com/dmitrymomot/mailmerge/pkg/mailer"
	"github.com/dmitrymomot/mailmerge/pkg/mx"
	"github.com/dmitrymomot/mailmerge/pkg/params"
	"github.com/dmitrymomot/mailmerge/pkg/roster"
	"github.com/dmitrymomot/mailmerge/pkg/template"
)

// Type aliases - public API
type (
	// Campaign binds a template, a roster, and a delivery provider into
	// one sendable unit.
	Campaign = internal.Campaign

	// Option configures a campaign.
	Option = internal.Option

	// Report summarizes one campaign run.
	Report = internal.Report

	// Failure records one recipient that could not be delivered to.
	Failure = internal.Failure

	// Scheduler runs campaigns on cron expressions.
	Scheduler = internal.Scheduler

	// Healthchecker is implemented by senders that can probe their
	// provider without delivering anything.
	Healthchecker = internal.Healthchecker
)

// Sentinel errors - public API
var (
	ErrNoTemplate      = internal.ErrNoTemplate
	ErrNoRoster        = internal.ErrNoRoster
	ErrNoSender        = internal.ErrNoSender
	ErrEmptyRoster     = internal.ErrEmptyRoster
	ErrPreflightFailed = internal.ErrPreflightFailed
	ErrRunAborted      = internal.ErrRunAborted
	ErrInvalidSchedule = internal.ErrInvalidSchedule
)

// Constructors

// New creates a campaign with the given options. A template, a roster,
// and a sender are required.
//
// Example:
//
//	campaign, err := mailmerge.New(
//	    mailmerge.WithName("autumn-launch"),
//	    mailmerge.WithTemplate(tmpl),
//	    mailmerge.WithRoster(r),
//	    mailmerge.WithSender(smtpSender),
//	    mailmerge.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//
//	report, err := campaign.Send(ctx)
func New(opts ...Option) (*Campaign, error) {
	return internal.New(opts...)
}

// NewScheduler creates a scheduler using standard 5-field cron
// expressions.
//
// Example:
//
//	s := mailmerge.NewScheduler(log)
//	if _, err := s.Add("0 9 * * MON", campaign); err != nil {
//	    return err
//	}
//	s.Start()
//	defer s.Stop(ctx)
func NewScheduler(log *slog.Logger) *Scheduler {
	return internal.NewScheduler(log)
}

// ValidateSchedule reports whether spec is a valid standard cron
// expression.
func ValidateSchedule(spec string) error {
	return internal.ValidateSchedule(spec)
}

// Campaign options

// WithName sets the campaign name used in logs and reports.
func WithName(name string) Option {
	return internal.WithName(name)
}

// WithTemplate sets the campaign template. Required.
func WithTemplate(t *template.Template) Option {
	return internal.WithTemplate(t)
}

// WithRoster sets the recipient roster. Required.
func WithRoster(r *roster.Roster) Option {
	return internal.WithRoster(r)
}

// WithRegistry replaces the default parameter registry. Use this when the
// campaign declares custom parameters beyond email and name.
func WithRegistry(reg *params.Registry) Option {
	return internal.WithRegistry(reg)
}

// WithSender sets the delivery provider. Required.
//
// Example:
//
//	sender, err := smtp.New(smtpCfg)
//	if err != nil {
//	    return err
//	}
//	mailmerge.WithSender(sender)
//
// Combine providers with mailer.NewMulti to archive a copy of every
// message while sending for real:
//
//	mailmerge.WithSender(mailer.NewMulti(sender, outboxSender))
func WithSender(s mailer.Sender) Option {
	return internal.WithSender(s)
}

// WithLogger sets the structured logger for run progress and failures.
func WithLogger(log *slog.Logger) Option {
	return internal.WithLogger(log)
}

// WithMXVerification enables a preflight check that every recipient
// domain accepts mail.
func WithMXVerification(v *mx.Verifier) Option {
	return internal.WithMXVerification(v)
}

// WithHeaders adds custom headers to every message. The map is copied.
func WithHeaders(headers map[string]string) Option {
	return internal.WithHeaders(headers)
}

// WithTags adds provider tags to every message.
func WithTags(tags mailer.Tags) Option {
	return internal.WithTags(tags)
}

// WithFrom overrides the provider's default sender address.
func WithFrom(from string) Option {
	return internal.WithFrom(from)
}

// WithReplyTo sets the reply-to address on every message.
func WithReplyTo(replyTo string) Option {
	return internal.WithReplyTo(replyTo)
}
