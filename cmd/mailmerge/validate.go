package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailmerge/pkg/logger"
)

func newValidateCommand() *cobra.Command {
	fl := &campaignFlags{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run campaign preflight checks without sending",
		Long: `Loads the campaign and roster, then runs the same preflight checks that
precede a real run: every template placeholder is declared, the roster is
non-empty, and the delivery provider is reachable. With --verify-mx it
also resolves MX records for every recipient domain.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := logger.NewWithSentry(cfg.Sentry)

			sender, closeSender, err := buildSender(cmd.Context(), cfg, fl.provider)
			if err != nil {
				return err
			}
			defer closeSender()

			campaign, err := buildCampaign(fl, log, sender)
			if err != nil {
				return err
			}

			if err := campaign.Preflight(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "campaign %q is ready to send to %d recipients\n",
				campaign.Name(), campaign.Roster().Len())
			return nil
		},
	}

	fl.register(cmd)
	return cmd
}
