package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ta89365/twconnect2-sub000/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "twconnect",
		Short: "TWConnect - contact service for the multilingual marketing site",
		Long:  `TWConnect serves the contact-form submission pipeline behind the marketing website: it accepts inquiries, sends the internal notification and the localized auto-reply, and reports the outcome back to the browser.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
