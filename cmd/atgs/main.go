package main

import (
	"os"

	"github.com/spf13/cobra"

	"atgs/internal/interfaces/cli/migrate"
	"atgs/internal/interfaces/cli/seed"
	"atgs/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atgs",
		Short: "ATGS - university advising and ticketing portal",
		Long:  `ATGS is the advising and ticketing portal backend with built-in server, migration, and seeding commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
