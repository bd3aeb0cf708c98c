package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mailmerge",
		Short: "Personalized mail campaign runner",
		Long: `mailmerge sends one personalized message per roster recipient from a
YAML campaign file and a CSV roster. Provider credentials come from the
environment; a .env file in the working directory is honored.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newValidateCommand(),
		newPreviewCommand(),
		newSendCommand(),
		newExportCommand(),
		newParamsCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
