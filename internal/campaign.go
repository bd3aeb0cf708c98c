package internal

import (
	"log/slog"

	"github.com/dmitrymomot/mailmerge/pkg/logger"
	"github.com/dmitrymomot/mailmerge/pkg/mailer"
	"github.com/dmitrymomot/mailmerge/pkg/mx"
	"github.com/dmitrymomot/mailmerge/pkg/params"
	"github.com/dmitrymomot/mailmerge/pkg/roster"
	"github.com/dmitrymomot/mailmerge/pkg/template"
)

// Campaign binds a template, a roster, and a delivery provider into one
// sendable unit. Campaigns are immutable after creation - all configuration
// is done via New().
type Campaign struct {
	headers  map[string]string
	tags     mailer.Tags
	tmpl     *template.Template
	roster   *roster.Roster
	registry *params.Registry
	sender   mailer.Sender
	mailer   *mailer.Mailer
	verifier *mx.Verifier
	logger   *slog.Logger
	name     string
	from     string
	replyTo  string
}

// New creates a campaign with the given options. A template, a roster, and
// a sender are required; the registry defaults to the system parameters
// (email, name) and logging defaults to a no-op logger.
//
// Example:
//
//	campaign, err := internal.New(
//	    internal.WithName("autumn-launch"),
//	    internal.WithTemplate(tmpl),
//	    internal.WithRoster(r),
//	    internal.WithSender(smtpSender),
//	    internal.WithLogger(log),
//	)
func New(opts ...Option) (*Campaign, error) {
	c := &Campaign{
		name:     "campaign",
		registry: params.NewRegistry(),
		logger:   logger.NewNope(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.tmpl == nil {
		return nil, ErrNoTemplate
	}
	if c.roster == nil {
		return nil, ErrNoRoster
	}
	if c.sender == nil {
		return nil, ErrNoSender
	}

	c.mailer = mailer.New(c.sender)
	return c, nil
}

// Name returns the campaign name used in logs and reports.
func (c *Campaign) Name() string { return c.name }

// Template returns the campaign template.
func (c *Campaign) Template() *template.Template { return c.tmpl }

// Roster returns the recipient roster.
func (c *Campaign) Roster() *roster.Roster { return c.roster }

// Registry returns the parameter registry.
func (c *Campaign) Registry() *params.Registry { return c.registry }

// Logger returns the campaign logger.
func (c *Campaign) Logger() *slog.Logger { return c.logger }

// Validate checks that every placeholder in the template resolves to a
// registered parameter.
func (c *Campaign) Validate() error {
	return c.tmpl.Validate(c.registry.Identifiers())
}
