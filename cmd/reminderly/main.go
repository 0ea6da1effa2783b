package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/reminderly/reminderly/internal/interfaces/cli/migrate"
	"github.com/reminderly/reminderly/internal/interfaces/cli/run"
	"github.com/reminderly/reminderly/internal/interfaces/cli/seed"
	"github.com/reminderly/reminderly/internal/interfaces/cli/server"
	"github.com/reminderly/reminderly/internal/interfaces/cli/worker"
	"github.com/reminderly/reminderly/internal/shared/version"
)

// @title Reminderly API
// @description HR reminder engine: employees, reminder types, reminders and batch job triggers.
// @BasePath /api
// @securityDefinitions.apikey ApiToken
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:     "reminderly",
		Short:   "Reminderly - HR reminder engine",
		Long:    `Reminderly tracks employee due dates and emails reminders at configured intervals before each one.`,
		Version: version.Current(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		worker.NewCommand(),
		run.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
