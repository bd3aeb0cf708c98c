package main

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newParamsCommand() *cobra.Command {
	var (
		campaignPath string
		rosterPath   string
		charset      string
	)

	cmd := &cobra.Command{
		Use:   "params",
		Short: "List campaign parameters and check them against the roster",
		Long: `Lists the parameters a campaign declares, shows which placeholders the
template actually uses, and fails if the template uses an undeclared
placeholder. When a roster is given, also fails if a declared custom
parameter has no matching roster column.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, reg, err := loadCampaignFile(campaignPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "PLACEHOLDER\tLABEL\tSOURCE")
			for _, p := range reg.Params() {
				source := "roster column"
				if p.System {
					source = "built-in"
				}
				fmt.Fprintf(tw, "{%s}\t%s\t%s\n", p.Ident, p.Label, source)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if used := tmpl.Params(); len(used) > 0 {
				fmt.Fprintf(out, "\nused in template: %s\n", strings.Join(used, ", "))
			} else {
				fmt.Fprintln(out, "\nno placeholders used in template")
			}

			if err := tmpl.Validate(reg.Identifiers()); err != nil {
				return err
			}

			if rosterPath == "" {
				return nil
			}

			r, err := loadRosterFile(rosterPath, charset)
			if err != nil {
				return err
			}

			columns := r.Customs()
			var missing []string
			for _, p := range reg.Customs() {
				if !slices.Contains(columns, p.Ident) {
					missing = append(missing, p.Ident)
				}
			}
			if len(missing) > 0 {
				return fmt.Errorf("roster is missing columns: %s", strings.Join(missing, ", "))
			}

			fmt.Fprintln(out, "all parameters are backed by roster columns")
			return nil
		},
	}

	cmd.Flags().StringVarP(&campaignPath, "campaign", "c", "", "path to the campaign YAML file")
	cmd.Flags().StringVarP(&rosterPath, "roster", "r", "", "roster CSV to verify columns against (optional)")
	cmd.Flags().StringVar(&charset, "charset", "", "roster charset label (default UTF-8)")
	_ = cmd.MarkFlagRequired("campaign")
	return cmd
}
