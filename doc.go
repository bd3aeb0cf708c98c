// Package mailmerge runs personalized mail campaigns: one template, a
// roster of recipients, and a delivery provider, sent one message at a
// time with per-recipient status tracking.
//
// The package is a thin facade over the campaign engine wired from the
// building blocks under pkg/: templates with {placeholder}
// substitution, CSV rosters, parameter registries, and pluggable
// senders. Everything is injected through options; there is no global
// state.
//
// # Quick Start
//
// Build a template, import a roster, pick a provider, and send:
//
//	tmpl := template.New("Welcome {name}!", "Dear {name}, your account is ready.")
//
//	r, err := roster.ImportCSV(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sender, err := smtp.New(smtpCfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	campaign, err := mailmerge.New(
//	    mailmerge.WithName("welcome-wave"),
//	    mailmerge.WithTemplate(tmpl),
//	    mailmerge.WithRoster(r),
//	    mailmerge.WithSender(sender),
//	    mailmerge.WithLogger(log),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := campaign.Send(ctx)
//
// Send runs preflight checks first (template placeholders resolve,
// roster is non-empty, provider reachable) and then delivers
// sequentially. Use SendUnchecked to skip preflight.
//
// # Personalization
//
// Templates substitute {identifier} placeholders from each recipient's
// roster row. Unknown placeholders stay literal, so a stray "{typo}"
// shows up in the output instead of vanishing. Identifiers beyond the
// built-in email and name are declared on a parameter registry:
//
//	reg := params.NewRegistry()
//	if err := reg.Add("Order number", "order"); err != nil {
//	    log.Fatal(err)
//	}
//
//	campaign, err := mailmerge.New(
//	    mailmerge.WithRegistry(reg),
//	    // ...
//	)
//
// # Providers
//
// Any [mailer.Sender] delivers the campaign. The repository ships SMTP
// ([github.com/dmitrymomot/mailmerge/pkg/mailer/smtp]), Resend
// ([github.com/dmitrymomot/mailmerge/pkg/mailer/resend]), and a Redis
// outbox that stores messages instead of sending them
// ([github.com/dmitrymomot/mailmerge/pkg/mailer/outbox]). Fan out to
// several at once with mailer.NewMulti:
//
//	mailmerge.WithSender(mailer.NewMulti(smtpSender, outboxSender))
//
// # Scheduling
//
// Recurring campaigns run on standard cron expressions:
//
//	s := mailmerge.NewScheduler(log)
//	if _, err := s.Add("0 9 * * MON", campaign); err != nil {
//	    log.Fatal(err)
//	}
//	s.Start()
//	defer s.Stop(ctx)
//
// Overlapping runs of the same campaign are skipped, not queued.
//
// # Preview
//
// Campaign.Preview composes the first recipients' messages without
// delivering anything. The [github.com/dmitrymomot/mailmerge/pkg/preview]
// package serves the same renderings over HTTP so a campaign can be
// proofread with real roster data before anything is sent.
package mailmerge
