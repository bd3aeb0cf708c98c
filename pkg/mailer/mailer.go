package mailer

import (
	"context"
	"errors"
	"strings"
)

// Mailer validates messages and delegates delivery to a Sender. Campaign
// code talks to the Mailer, never to providers directly.
type Mailer struct {
	sender Sender
}

// New creates a Mailer that delivers through the given sender.
func New(sender Sender) *Mailer {
	return &Mailer{sender: sender}
}

// Send validates and delivers one message. Subjects are folded to a single
// header line before delivery so substituted values cannot smuggle in extra
// headers.
func (m *Mailer) Send(ctx context.Context, msg *Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}
	if msg.Subject == "" {
		return ErrNoSubject
	}
	if msg.HTML == "" && msg.Text == "" {
		return ErrNoContent
	}

	msg.Subject = foldHeader(msg.Subject)

	if err := m.sender.Send(ctx, msg); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

var headerFolder = strings.NewReplacer("\r", " ", "\n", " ")

func foldHeader(v string) string {
	return headerFolder.Replace(v)
}
