// Package mailer provides a provider-agnostic delivery layer for
// personalized campaign messages.
//
// The package separates message preparation (done upstream by the template
// layer) from delivery, so providers can be swapped without touching
// campaign code.
//
// # Architecture
//
// The package consists of three parts:
//
//   - Sender: interface that delivery providers implement
//   - Mailer: validating client that campaign code sends through
//   - Multi: fan-out Sender combining several providers
//
// Providers live in subpackages: smtp (direct delivery via a relay),
// resend (Resend API), and outbox (Redis archive for dry runs and
// auditing).
//
// # Usage
//
//	sender, err := smtp.New(smtp.Config{
//		Host:        "smtp.example.com",
//		Port:        587,
//		Username:    "campaigns",
//		Password:    os.Getenv("SMTP_PASSWORD"),
//		SenderEmail: "team@example.com",
//		SenderName:  "Team",
//	})
//	if err != nil {
//		return err
//	}
//
//	m := mailer.New(sender)
//	err = m.Send(ctx, &mailer.Message{
//		To:      mailer.Address("Ann", "ann@example.com"),
//		Subject: "Welcome, Ann",
//		HTML:    "<p>Hello!</p>",
//	})
//
// # Fan-out
//
// Multi delivers through every configured sender, which is how a campaign
// archives a copy of each message while sending for real:
//
//	m := mailer.New(mailer.NewMulti(smtpSender, outboxSender))
//
// # Message Tags
//
// Messages carry provider-specific tags for categorization:
//
//	msg.Tags = mailer.SimpleTags("campaign", "autumn-launch")
//
// # Custom Providers
//
// Implement the Sender interface to add another provider:
//
//	type MySender struct{}
//
//	func (s *MySender) Send(ctx context.Context, msg *mailer.Message) error {
//		// deliver via your provider's API
//		return nil
//	}
//
// # Errors
//
// The package defines error variables for specific failure cases:
//
//   - ErrNoRecipient: no recipient specified
//   - ErrNoSubject: no subject provided
//   - ErrNoContent: neither HTML nor text body provided
//   - ErrSendFailed: delivery failed
//   - ErrInvalidConfig: provider configuration unusable
package mailer
