package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailmerge"
	"github.com/dmitrymomot/mailmerge/pkg/logger"
	"github.com/dmitrymomot/mailmerge/pkg/mailer"
	"github.com/dmitrymomot/mailmerge/pkg/roster"
)

func newSendCommand() *cobra.Command {
	fl := &campaignFlags{}
	var (
		dryRun    bool
		cronSpec  string
		statusOut string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Run the campaign: preflight, then deliver to every recipient",
		Long: `Runs preflight checks and then delivers one personalized message per
recipient, sequentially. With --cron the campaign runs on a schedule
until interrupted. With --dry-run messages are logged instead of
delivered. With --status-out the final per-recipient delivery statuses
are written as a CSV report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := logger.NewWithSentry(cfg.Sentry)

			var (
				sender      mailer.Sender
				closeSender = func() {}
			)
			if dryRun {
				sender = &dryRunSender{log: log}
			} else {
				sender, closeSender, err = buildSender(cmd.Context(), cfg, fl.provider)
				if err != nil {
					return err
				}
			}
			defer closeSender()

			campaign, err := buildCampaign(fl, log, sender)
			if err != nil {
				return err
			}

			if cronSpec != "" {
				return runScheduled(cmd.Context(), log, cronSpec, campaign)
			}

			report, err := campaign.Send(cmd.Context())
			if report != nil {
				printReport(cmd.OutOrStdout(), report)
				if statusOut != "" {
					if werr := writeDeliveryReport(statusOut, campaign.Roster()); werr != nil {
						err = errors.Join(err, werr)
					}
				}
			}
			return err
		},
	}

	fl.register(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "log messages instead of delivering them")
	cmd.Flags().StringVar(&cronSpec, "cron", "", `run on a cron schedule instead of once (e.g. "0 9 * * 1")`)
	cmd.Flags().StringVar(&statusOut, "status-out", "", "write a delivery report CSV (email, name, status) to this path")
	return cmd
}

// dryRunSender logs each message instead of delivering it.
type dryRunSender struct {
	log *slog.Logger
}

func (s *dryRunSender) Send(ctx context.Context, msg *mailer.Message) error {
	s.log.InfoContext(ctx, "dry run: would send",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return nil
}

// runScheduled runs the campaign on the cron schedule until SIGINT/SIGTERM.
func runScheduled(ctx context.Context, log *slog.Logger, spec string, campaign *mailmerge.Campaign) error {
	s := mailmerge.NewScheduler(log)
	if _, err := s.Add(spec, campaign); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.Start()
	log.InfoContext(ctx, "campaign scheduled", slog.String("cron", spec))
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return s.Stop(stopCtx)
}

func printReport(w io.Writer, report *mailmerge.Report) {
	fmt.Fprintf(w, "run %s: sent %d/%d in %s\n",
		report.RunID, report.Sent, report.Total, report.Duration.Round(time.Millisecond))
	for _, f := range report.Failures {
		fmt.Fprintf(w, "  failed %s: %v\n", f.Email, f.Err)
	}
}

// writeDeliveryReport writes one row per recipient with the final
// delivery status. This is a run artifact, not a roster: re-importing it
// would turn the status column into a custom parameter.
func writeDeliveryReport(path string, r *roster.Roster) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"email", "name", "status"}); err != nil {
		_ = f.Close()
		return err
	}
	for _, rec := range r.All() {
		if err := cw.Write([]string{rec.Email, rec.Name, string(rec.Status)}); err != nil {
			_ = f.Close()
			return err
		}
	}
	cw.Flush()

	return errors.Join(cw.Error(), f.Close())
}
