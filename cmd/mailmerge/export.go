package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/mailmerge/pkg/roster"
)

func newExportCommand() *cobra.Command {
	var (
		inPath     string
		outPath    string
		inCharset  string
		outCharset string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Re-encode a roster CSV",
		Long: `Reads a roster CSV and writes it back out with normalized headers and
cells. Use --charset to decode a legacy input encoding and --out-charset
to encode the output; both default to UTF-8.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRosterFile(inPath, inCharset)
			if err != nil {
				return err
			}

			f, err := os.Create(outPath)
			if err != nil {
				return err
			}

			var opts []roster.Option
			if outCharset != "" {
				opts = append(opts, roster.WithCharset(outCharset))
			}
			if err := r.ExportCSV(f, r.Customs(), opts...); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported %d recipients to %s\n", r.Len(), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inPath, "roster", "r", "", "path to the input roster CSV")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "path to write the output CSV")
	cmd.Flags().StringVar(&inCharset, "charset", "", "input charset label (default UTF-8)")
	cmd.Flags().StringVar(&outCharset, "out-charset", "", "output charset label (default UTF-8)")
	_ = cmd.MarkFlagRequired("roster")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
