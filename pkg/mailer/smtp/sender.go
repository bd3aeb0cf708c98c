// Package smtp delivers campaign messages through an SMTP relay.
package smtp

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	mail "github.com/wneessen/go-mail"

	"github.com/dmitrymomot/mailmerge/pkg/mailer"
)

// Sender implements mailer.Sender over an SMTP relay. Each Send dials,
// authenticates, delivers, and closes; campaigns send sequentially so a
// held connection buys nothing.
type Sender struct {
	client *mail.Client
	config Config
}

// New validates the config and prepares an SMTP client. The relay is not
// contacted until Send or Ping.
func New(cfg Config) (*Sender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: smtp host is required", mailer.ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: sender email is required", mailer.ErrInvalidConfig)
	}

	policy := mail.TLSOpportunistic
	if cfg.StartTLS {
		policy = mail.TLSMandatory
	}

	opts := []mail.Option{mail.WithTLSPolicy(policy)}
	if cfg.Port > 0 {
		opts = append(opts, mail.WithPort(cfg.Port))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Join(mailer.ErrInvalidConfig, err)
	}

	return &Sender{client: client, config: cfg}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, msg *mailer.Message) error {
	m, err := s.build(msg)
	if err != nil {
		return err
	}

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp: failed to send message: %w", err)
	}
	return nil
}

// Ping dials and authenticates against the relay without sending anything.
func (s *Sender) Ping(ctx context.Context) error {
	if err := s.client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp: relay unreachable: %w", err)
	}
	return s.client.Close()
}

// Healthcheck returns a probe function for the health package.
func (s *Sender) Healthcheck() func(context.Context) error {
	return s.Ping
}

func (s *Sender) build(msg *mailer.Message) (*mail.Msg, error) {
	m := mail.NewMsg()

	from := msg.From
	if from == "" {
		from = mailer.Address(s.config.SenderName, s.config.SenderEmail)
	}
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("smtp: invalid from address %q: %w", from, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("smtp: invalid recipient %q: %w", msg.To, err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("smtp: invalid reply-to %q: %w", msg.ReplyTo, err)
		}
	}

	m.Subject(msg.Subject)

	switch {
	case msg.HTML != "" && msg.Text != "":
		m.SetBodyString(mail.TypeTextPlain, msg.Text)
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	case msg.HTML != "":
		m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	default:
		m.SetBodyString(mail.TypeTextPlain, msg.Text)
	}

	for name, value := range msg.Headers {
		m.SetGenHeader(mail.Header(name), value)
	}
	if len(msg.Tags) > 0 {
		m.SetGenHeader("X-Tags", tagHeader(msg.Tags))
	}

	return m, nil
}

// tagHeader flattens tags into a deterministic "name=value, ..." header.
func tagHeader(tags mailer.Tags) string {
	parts := make([]string, 0, len(tags))
	for _, name := range slices.Sorted(maps.Keys(tags)) {
		parts = append(parts, name+"="+mailer.TagValue(tags[name]))
	}
	return strings.Join(parts, ", ")
}
