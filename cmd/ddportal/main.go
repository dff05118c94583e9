package main

import (
	"os"

	"github.com/spf13/cobra"

	"ddportal/internal/interfaces/cli/migrate"
	"ddportal/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ddportal",
		Short: "Digital Directions client portal",
		Long:  `Client service portal with ticketing, project phase tracking, and support hour accounting.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
