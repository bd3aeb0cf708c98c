package internal

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailmerge/pkg/mailer"
	"github.com/dmitrymomot/mailmerge/pkg/roster"
	"github.com/dmitrymomot/mailmerge/pkg/template"
)

func namedRoster(t *testing.T) *roster.Roster {
	t.Helper()
	r := roster.New()
	require.NoError(t, r.Add("ann@example.com", "Ann", nil))
	require.NoError(t, r.Add("bob@example.com", "Bob", nil))
	return r
}

func TestSend_DeliversPersonalizedMessages(t *testing.T) {
	t.Parallel()

	sender := &recordSender{}
	r := namedRoster(t)
	c, err := New(
		WithName("launch"),
		WithTemplate(testTemplate()),
		WithRoster(r),
		WithSender(sender),
		WithHeaders(map[string]string{"X-Campaign": "launch"}),
		WithTags(mailer.SimpleTags("launch")),
	)
	require.NoError(t, err)

	report, err := c.Send(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, report.Total)
	require.Equal(t, 2, report.Sent)
	require.Zero(t, report.Failed)
	require.Empty(t, report.Failures)
	require.Len(t, report.RunID, 26)

	msgs := sender.messages()
	require.Len(t, msgs, 2)
	require.Equal(t, "Ann <ann@example.com>", msgs[0].To)
	require.Equal(t, "Hello Ann", msgs[0].Subject)
	require.Contains(t, msgs[0].HTML, "Dear&nbsp;Ann,")
	require.Contains(t, msgs[0].HTML, "<!DOCTYPE html>")
	require.Equal(t, "Dear Ann, welcome!", msgs[0].Text, "HTML campaigns carry a plain-text alternative")
	require.Equal(t, report.RunID, msgs[0].Headers["X-Campaign-Run"])
	require.Equal(t, "launch", msgs[0].Headers["X-Campaign"])
	require.Contains(t, msgs[0].Tags, "launch")
	require.Equal(t, "Bob <bob@example.com>", msgs[1].To)

	require.Equal(t, roster.StatusSent, r.At(0).Status)
	require.Equal(t, roster.StatusSent, r.At(1).Status)
}

func TestSend_FailureDoesNotStopRun(t *testing.T) {
	t.Parallel()

	boom := errors.New("mailbox full")
	sender := &recordSender{failFor: map[string]error{"ann@example.com": boom}}
	r := namedRoster(t)
	c, err := New(
		WithTemplate(testTemplate()),
		WithRoster(r),
		WithSender(sender),
	)
	require.NoError(t, err)

	report, err := c.Send(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, report.Sent)
	require.Equal(t, 1, report.Failed)
	require.Len(t, report.Failures, 1)
	require.Equal(t, "ann@example.com", report.Failures[0].Email)
	require.ErrorIs(t, report.Failures[0].Err, mailer.ErrSendFailed)
	require.ErrorIs(t, report.Failures[0].Err, boom)

	require.Equal(t, roster.StatusFailed, r.At(0).Status)
	require.Equal(t, roster.StatusSent, r.At(1).Status)
}

func TestSend_TextMode(t *testing.T) {
	t.Parallel()

	sender := &recordSender{}
	c, err := New(
		WithTemplate(template.New("Hi {name}", "Dear {name}", template.WithMode(template.ModeText))),
		WithRoster(namedRoster(t)),
		WithSender(sender),
	)
	require.NoError(t, err)

	_, err = c.Send(context.Background())
	require.NoError(t, err)

	msgs := sender.messages()
	require.Equal(t, "Dear Ann", msgs[0].Text)
	require.Empty(t, msgs[0].HTML)
}

func TestPreview_ComposesWithoutSending(t *testing.T) {
	t.Parallel()

	sender := &recordSender{}
	r := namedRoster(t)
	c, err := New(
		WithTemplate(testTemplate()),
		WithRoster(r),
		WithSender(sender),
		WithHeaders(map[string]string{"X-Campaign": "launch"}),
	)
	require.NoError(t, err)

	msgs := c.Preview(1)
	require.Len(t, msgs, 1)
	require.Equal(t, "Ann <ann@example.com>", msgs[0].To)
	require.Equal(t, "Hello Ann", msgs[0].Subject)
	require.Contains(t, msgs[0].HTML, "Dear&nbsp;Ann,")
	require.Equal(t, "launch", msgs[0].Headers["X-Campaign"])
	require.NotContains(t, msgs[0].Headers, "X-Campaign-Run")

	require.Empty(t, sender.messages(), "preview must not deliver")
	require.Equal(t, roster.StatusPending, r.At(0).Status)
}

func TestPreview_WindowNeverExceedsRoster(t *testing.T) {
	t.Parallel()

	c, err := New(
		WithTemplate(testTemplate()),
		WithRoster(namedRoster(t)),
		WithSender(&recordSender{}),
	)
	require.NoError(t, err)

	require.Len(t, c.Preview(50), 2)
	require.Len(t, c.Preview(0), 2, "default window caps at the roster")
}

// cancelSender cancels the run context after delivering a set number of
// messages.
type cancelSender struct {
	recordSender
	cancel context.CancelFunc
	after  int
}

func (s *cancelSender) Send(ctx context.Context, msg *mailer.Message) error {
	err := s.recordSender.Send(ctx, msg)
	if len(s.messages()) >= s.after {
		s.cancel()
	}
	return err
}

func TestSend_ContextCancelStopsBetweenRecipients(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &cancelSender{cancel: cancel, after: 1}
	r := namedRoster(t)
	c, err := New(
		WithTemplate(testTemplate()),
		WithRoster(r),
		WithSender(sender),
	)
	require.NoError(t, err)

	report, err := c.Send(ctx)
	require.ErrorIs(t, err, ErrRunAborted)
	require.NotNil(t, report)
	require.Equal(t, 1, report.Sent)

	require.Equal(t, roster.StatusSent, r.At(0).Status)
	require.Equal(t, roster.StatusPending, r.At(1).Status)
}

func TestSend_RerunResetsStatuses(t *testing.T) {
	t.Parallel()

	sender := &recordSender{}
	r := namedRoster(t)
	c, err := New(
		WithTemplate(testTemplate()),
		WithRoster(r),
		WithSender(sender),
	)
	require.NoError(t, err)

	first, err := c.Send(context.Background())
	require.NoError(t, err)
	second, err := c.Send(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, first.Sent)
	require.Equal(t, 2, second.Sent)
	require.NotEqual(t, first.RunID, second.RunID)
	require.Len(t, sender.messages(), 4)
}
