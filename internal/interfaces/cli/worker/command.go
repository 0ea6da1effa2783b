package worker

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reminderly/reminderly/internal/infrastructure/database"
	"github.com/reminderly/reminderly/internal/interfaces/cli/bootstrap"
	httpapi "github.com/reminderly/reminderly/internal/interfaces/http"
)

var flags bootstrap.Flags

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run the reminder scheduler without the HTTP API",
		Long:  `Run the dispatch and recurrence jobs on their cron schedules until interrupted.`,
		RunE:  run,
	}
	flags.Bind(cmd)
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Load(&flags)
	if err != nil {
		return err
	}
	log.Infow("starting scheduler worker", "environment", flags.Environment())

	db, err := bootstrap.OpenDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx, stop := bootstrap.SignalContext()
	defer stop()

	container, err := httpapi.NewContainer(ctx, db, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}
	defer container.Shutdown()

	if err := container.StartScheduler(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	log.Infow("scheduler worker started",
		"dispatch_cron", cfg.Scheduler.DispatchCron,
		"recurring_cron", cfg.Scheduler.RecurringCron)

	<-ctx.Done()
	log.Infow("received signal, waiting for running jobs")
	return nil
}
