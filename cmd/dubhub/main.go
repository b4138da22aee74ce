package main

import (
	"os"

	"github.com/spf13/cobra"

	"dubhub/internal/interfaces/cli/export"
	"dubhub/internal/interfaces/cli/seed"
	"dubhub/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dubhub",
		Short: "DubHub - support desk record manager",
		Long:  `DubHub is a record-management service for support tickets, dealership accounts, reference resources and internal tasks, with spreadsheet export tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		export.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
