package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailmerge"
	"github.com/dmitrymomot/mailmerge/pkg/mailer"
	"github.com/dmitrymomot/mailmerge/pkg/mailer/outbox"
	"github.com/dmitrymomot/mailmerge/pkg/mailer/resend"
	"github.com/dmitrymomot/mailmerge/pkg/mailer/smtp"
	"github.com/dmitrymomot/mailmerge/pkg/mx"
	"github.com/dmitrymomot/mailmerge/pkg/params"
	"github.com/dmitrymomot/mailmerge/pkg/redis"
	"github.com/dmitrymomot/mailmerge/pkg/roster"
	"github.com/dmitrymomot/mailmerge/pkg/template"
)

// loadCampaignFile reads a campaign YAML file and returns its template
// plus a registry with the declared custom parameters registered.
func loadCampaignFile(path string) (*template.Template, *params.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	tmpl, defs, err := template.Load(f)
	if err != nil {
		return nil, nil, err
	}

	reg := params.NewRegistry()
	for _, def := range defs {
		if err := reg.Add(def.Label, def.Ident); err != nil {
			return nil, nil, err
		}
	}
	return tmpl, reg, nil
}

// loadRosterFile reads a roster CSV file, decoding from charset when given.
func loadRosterFile(path, charset string) (*roster.Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var opts []roster.Option
	if charset != "" {
		opts = append(opts, roster.WithCharset(charset))
	}
	return roster.ImportCSV(f, opts...)
}

// buildSender constructs the delivery provider named by the flag. The
// returned closer releases provider resources (the outbox Redis client).
func buildSender(ctx context.Context, cfg *config, provider string) (mailer.Sender, func(), error) {
	switch provider {
	case "smtp":
		s, err := smtp.New(cfg.SMTP)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	case "resend":
		return resend.New(cfg.Resend), func() {}, nil
	case "outbox":
		client, err := redis.Open(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		stop := redis.Shutdown(client)
		return outbox.New(client), func() { _ = stop(ctx) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown provider %q (want smtp, resend, or outbox)", provider)
	}
}

// campaignFlags are the flags shared by validate and send.
type campaignFlags struct {
	campaignPath string
	rosterPath   string
	charset      string
	provider     string
	name         string
	verifyMX     bool
}

func (fl *campaignFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&fl.campaignPath, "campaign", "c", "", "path to the campaign YAML file")
	cmd.Flags().StringVarP(&fl.rosterPath, "roster", "r", "", "path to the roster CSV file")
	cmd.Flags().StringVar(&fl.charset, "charset", "", "roster charset label (default UTF-8)")
	cmd.Flags().StringVar(&fl.provider, "provider", "smtp", "delivery provider: smtp, resend, or outbox")
	cmd.Flags().StringVar(&fl.name, "name", "", "campaign name for logs and reports (default: campaign file name)")
	cmd.Flags().BoolVar(&fl.verifyMX, "verify-mx", false, "preflight-check MX records for all recipient domains")
	_ = cmd.MarkFlagRequired("campaign")
	_ = cmd.MarkFlagRequired("roster")
}

// buildCampaign assembles a campaign from the shared flags.
func buildCampaign(fl *campaignFlags, log *slog.Logger, sender mailer.Sender) (*mailmerge.Campaign, error) {
	tmpl, reg, err := loadCampaignFile(fl.campaignPath)
	if err != nil {
		return nil, err
	}
	r, err := loadRosterFile(fl.rosterPath, fl.charset)
	if err != nil {
		return nil, err
	}

	name := fl.name
	if name == "" {
		base := filepath.Base(fl.campaignPath)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	opts := []mailmerge.Option{
		mailmerge.WithName(name),
		mailmerge.WithTemplate(tmpl),
		mailmerge.WithRoster(r),
		mailmerge.WithRegistry(reg),
		mailmerge.WithSender(sender),
		mailmerge.WithLogger(log),
	}
	if fl.verifyMX {
		opts = append(opts, mailmerge.WithMXVerification(mx.NewVerifier()))
	}
	return mailmerge.New(opts...)
}
