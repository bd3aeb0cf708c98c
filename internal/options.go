package internal

import (
	"log/slog"
	"maps"

	"github.com/dmitrymomot/mailmerge/pkg/mailer"
	"github.com/dmitrymomot/mailmerge/pkg/mx"
	"github.com/dmitrymomot/mailmerge/pkg/params"
	"github.com/dmitrymomot/mailmerge/pkg/roster"
	"github.com/dmitrymomot/mailmerge/pkg/template"
)

// Option configures a campaign.
type Option func(*Campaign)

// WithName sets the campaign name used in logs and reports.
func WithName(name string) Option {
	return func(c *Campaign) {
		if name != "" {
			c.name = name
		}
	}
}

// WithTemplate sets the campaign template. Required.
func WithTemplate(t *template.Template) Option {
	return func(c *Campaign) {
		c.tmpl = t
	}
}

// WithRoster sets the recipient roster. Required.
func WithRoster(r *roster.Roster) Option {
	return func(c *Campaign) {
		c.roster = r
	}
}

// WithRegistry replaces the default parameter registry. Use this when the
// campaign declares custom parameters beyond email and name.
func WithRegistry(reg *params.Registry) Option {
	return func(c *Campaign) {
		if reg != nil {
			c.registry = reg
		}
	}
}

// WithSender sets the delivery provider. Required.
func WithSender(s mailer.Sender) Option {
	return func(c *Campaign) {
		c.sender = s
	}
}

// WithLogger sets the structured logger for run progress and failures.
func WithLogger(log *slog.Logger) Option {
	return func(c *Campaign) {
		if log != nil {
			c.logger = log
		}
	}
}

// WithMXVerification enables a preflight check that every recipient domain
// accepts mail.
func WithMXVerification(v *mx.Verifier) Option {
	return func(c *Campaign) {
		c.verifier = v
	}
}

// WithHeaders adds custom headers to every message. The map is copied.
func WithHeaders(headers map[string]string) Option {
	return func(c *Campaign) {
		c.headers = maps.Clone(headers)
	}
}

// WithTags adds provider tags to every message.
func WithTags(tags mailer.Tags) Option {
	return func(c *Campaign) {
		c.tags = tags
	}
}

// WithFrom overrides the provider's default sender address.
func WithFrom(from string) Option {
	return func(c *Campaign) {
		c.from = from
	}
}

// WithReplyTo sets the reply-to address on every message.
func WithReplyTo(replyTo string) Option {
	return func(c *Campaign) {
		c.replyTo = replyTo
	}
}
