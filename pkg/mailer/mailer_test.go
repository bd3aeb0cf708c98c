package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordSender captures delivered messages for assertions.
type recordSender struct {
	sent []*Message
	err  error
}

func (s *recordSender) Send(_ context.Context, msg *Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func validMessage() *Message {
	return &Message{
		To:      "ann@example.com",
		Subject: "Hello",
		HTML:    "<p>Hi</p>",
	}
}

func TestMailer_Send(t *testing.T) {
	t.Parallel()

	rec := &recordSender{}
	m := New(rec)

	require.NoError(t, m.Send(context.Background(), validMessage()))
	require.Len(t, rec.sent, 1)
	require.Equal(t, "ann@example.com", rec.sent[0].To)
}

func TestMailer_SendTextOnly(t *testing.T) {
	t.Parallel()

	rec := &recordSender{}
	m := New(rec)

	msg := &Message{To: "a@b.c", Subject: "s", Text: "plain"}
	require.NoError(t, m.Send(context.Background(), msg))
}

func TestMailer_ValidatesMessage(t *testing.T) {
	t.Parallel()

	m := New(&recordSender{})
	ctx := context.Background()

	msg := validMessage()
	msg.To = ""
	require.ErrorIs(t, m.Send(ctx, msg), ErrNoRecipient)

	msg = validMessage()
	msg.Subject = ""
	require.ErrorIs(t, m.Send(ctx, msg), ErrNoSubject)

	msg = validMessage()
	msg.HTML = ""
	msg.Text = ""
	require.ErrorIs(t, m.Send(ctx, msg), ErrNoContent)
}

func TestMailer_WrapsSenderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("relay refused")
	m := New(&recordSender{err: boom})

	err := m.Send(context.Background(), validMessage())
	require.ErrorIs(t, err, ErrSendFailed)
	require.ErrorIs(t, err, boom)
}

func TestMailer_FoldsSubjectNewlines(t *testing.T) {
	t.Parallel()

	rec := &recordSender{}
	m := New(rec)

	msg := validMessage()
	msg.Subject = "Hello\r\nBcc: spy@example.com"
	require.NoError(t, m.Send(context.Background(), msg))
	require.Equal(t, "Hello  Bcc: spy@example.com", rec.sent[0].Subject)
}
