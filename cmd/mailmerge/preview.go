package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailmerge"
	"github.com/dmitrymomot/mailmerge/middlewares"
	"github.com/dmitrymomot/mailmerge/pkg/logger"
	"github.com/dmitrymomot/mailmerge/pkg/preview"
)

func newPreviewCommand() *cobra.Command {
	var (
		campaignPath string
		rosterPath   string
		charset      string
		addr         string
		count        int
		text         bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve rendered messages over HTTP for proofreading",
		Long: `Starts a local web server that pages through the roster, showing each
recipient's personalized subject and message. Use --text to dump the
rendered messages to stdout instead of serving them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			tmpl, reg, err := loadCampaignFile(campaignPath)
			if err != nil {
				return err
			}
			r, err := loadRosterFile(rosterPath, charset)
			if err != nil {
				return err
			}

			if text {
				campaign, err := mailmerge.New(
					mailmerge.WithTemplate(tmpl),
					mailmerge.WithRoster(r),
					mailmerge.WithRegistry(reg),
					mailmerge.WithSender(&dryRunSender{log: logger.NewNope()}),
				)
				if err != nil {
					return err
				}
				n := count
				if n <= 0 {
					n = r.Len()
				}
				return dumpMessages(cmd.OutOrStdout(), campaign, n)
			}

			log := logger.NewWithSentry(cfg.Sentry, middlewares.RequestIDExtractor())
			srv, err := preview.New(tmpl, r,
				preview.WithRegistry(reg),
				preview.WithAddress(addr),
				preview.WithCount(count),
				preview.WithLogger(log),
			)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&campaignPath, "campaign", "c", "", "path to the campaign YAML file")
	cmd.Flags().StringVarP(&rosterPath, "roster", "r", "", "path to the roster CSV file")
	cmd.Flags().StringVar(&charset, "charset", "", "roster charset label (default UTF-8)")
	cmd.Flags().StringVar(&addr, "addr", "localhost:8025", "preview server listen address")
	cmd.Flags().IntVar(&count, "count", 10, "how many recipients to preview (0 = whole roster)")
	cmd.Flags().BoolVar(&text, "text", false, "dump rendered messages to stdout instead of serving")
	_ = cmd.MarkFlagRequired("campaign")
	_ = cmd.MarkFlagRequired("roster")
	return cmd
}

// dumpMessages writes the first n rendered messages to w.
func dumpMessages(w io.Writer, campaign *mailmerge.Campaign, n int) error {
	msgs := campaign.Preview(n)
	for i, msg := range msgs {
		body := msg.HTML
		if body == "" {
			body = msg.Text
		}
		if _, err := fmt.Fprintf(w, "=== %d/%d To: %s\nSubject: %s\n\n%s\n\n",
			i+1, len(msgs), msg.To, msg.Subject, body); err != nil {
			return err
		}
	}
	return nil
}
