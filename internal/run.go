package internal

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"time"

	"github.com/dmitrymomot/mailmerge/pkg/id"
	"github.com/dmitrymomot/mailmerge/pkg/mailer"
	"github.com/dmitrymomot/mailmerge/pkg/roster"
	"github.com/dmitrymomot/mailmerge/pkg/sanitizer"
	"github.com/dmitrymomot/mailmerge/pkg/template"
)

// runHeader carries the run ID on every delivered message.
const runHeader = "X-Campaign-Run"

// Report summarizes one campaign run.
type Report struct {
	Started  time.Time
	RunID    string
	Failures []Failure
	Duration time.Duration
	Total    int
	Sent     int
	Failed   int
}

// Failure records one recipient that could not be delivered to.
type Failure struct {
	Err   error
	Email string
}

// Send runs the campaign: preflight, then one personalized message per
// recipient, sequentially. Recipient statuses move pending -> sending ->
// sent/failed as the run progresses. A failed recipient does not stop the
// run; a canceled context stops it between recipients and returns
// ErrRunAborted alongside the partial report.
func (c *Campaign) Send(ctx context.Context) (*Report, error) {
	if err := c.Preflight(ctx); err != nil {
		return nil, err
	}
	return c.send(ctx)
}

// SendUnchecked runs the campaign without the preflight gate. Use it when
// the checks already ran, e.g. from the CLI's validate step.
func (c *Campaign) SendUnchecked(ctx context.Context) (*Report, error) {
	return c.send(ctx)
}

func (c *Campaign) send(ctx context.Context) (*Report, error) {
	runID := id.NewULID()
	log := c.logger.With(
		slog.String("campaign", c.name),
		slog.String("run_id", runID),
	)

	c.roster.ResetStatuses()

	total := c.roster.Len()
	report := &Report{
		RunID:   runID,
		Started: time.Now(),
		Total:   total,
	}

	headers := maps.Clone(c.headers)
	if headers == nil {
		headers = make(map[string]string, 1)
	}
	headers[runHeader] = runID

	log.InfoContext(ctx, "campaign run started", slog.Int("recipients", total))

	for i := range total {
		if err := ctx.Err(); err != nil {
			report.Duration = time.Since(report.Started)
			log.WarnContext(ctx, "campaign run aborted",
				slog.Int("sent", report.Sent),
				slog.Int("failed", report.Failed),
				slog.Int("remaining", total-i),
			)
			return report, errors.Join(ErrRunAborted, err)
		}

		rcpt := c.roster.At(i)
		c.roster.SetStatus(i, roster.StatusSending)

		msg := c.compose(rcpt, headers)
		if err := c.mailer.Send(ctx, msg); err != nil {
			c.roster.SetStatus(i, roster.StatusFailed)
			report.Failed++
			report.Failures = append(report.Failures, Failure{Email: rcpt.Email, Err: err})
			log.ErrorContext(ctx, "delivery failed",
				slog.String("email", rcpt.Email),
				slog.Any("error", err),
			)
			continue
		}

		c.roster.SetStatus(i, roster.StatusSent)
		report.Sent++
		log.InfoContext(ctx, "message delivered",
			slog.String("email", rcpt.Email),
			slog.Int("progress", i+1),
			slog.Int("total", total),
		)
	}

	report.Duration = time.Since(report.Started)
	log.InfoContext(ctx, "campaign run finished",
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Duration("duration", report.Duration),
	)
	return report, nil
}

const defaultPreviewCount = 10

// Preview composes personalized messages for the first n recipients
// without delivering anything. n <= 0 previews ten recipients; the window
// never exceeds the roster. Recipient statuses are not touched, and the
// messages carry no run header because no run happens.
func (c *Campaign) Preview(n int) []*mailer.Message {
	if n <= 0 {
		n = defaultPreviewCount
	}
	n = min(n, c.roster.Len())

	msgs := make([]*mailer.Message, 0, n)
	for i := range n {
		msgs = append(msgs, c.compose(c.roster.At(i), maps.Clone(c.headers)))
	}
	return msgs
}

// compose personalizes the template for one recipient. HTML campaigns
// also carry a plain-text alternative stripped from the body.
func (c *Campaign) compose(rcpt roster.Recipient, headers map[string]string) *mailer.Message {
	vars := c.registry.Resolve(rcpt.Email, rcpt.Name, rcpt.Custom)
	subject, body := c.tmpl.Personalize(vars)

	msg := &mailer.Message{
		To:      mailer.Address(rcpt.Name, rcpt.Email),
		Subject: subject,
		From:    c.from,
		ReplyTo: c.replyTo,
		Headers: headers,
		Tags:    c.tags,
	}
	if c.tmpl.Mode() == template.ModeText {
		msg.Text = body
	} else {
		msg.HTML = c.tmpl.WrapDocument(body)
		msg.Text = sanitizer.PlainText(body)
	}
	return msg
}
