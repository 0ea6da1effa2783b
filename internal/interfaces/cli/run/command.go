package run

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/reminderly/reminderly/internal/domain/jobrun"
	"github.com/reminderly/reminderly/internal/infrastructure/database"
	"github.com/reminderly/reminderly/internal/interfaces/cli/bootstrap"
	httpapi "github.com/reminderly/reminderly/internal/interfaces/http"
	"github.com/reminderly/reminderly/internal/shared/biztime"
)

var (
	flags bootstrap.Flags
	date  string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "run <process-reminders|process-recurring>",
		Short:     "Run one batch job now",
		Long:      `Run a batch job once, record it in the job run log and print the run as JSON.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"process-reminders", "process-recurring"},
		RunE:      runJob,
	}
	flags.Bind(cmd)
	cmd.Flags().StringVarP(&date, "date", "d", "", "Treat this date (YYYY-MM-DD) as today")
	return cmd
}

// ParseJobType accepts both the CLI spelling and the stored job type.
func ParseJobType(arg string) (jobrun.JobType, error) {
	t := jobrun.JobType(strings.ReplaceAll(strings.TrimSpace(arg), "-", "_"))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown job %q, expected process-reminders or process-recurring", arg)
	}
	return t, nil
}

func runJob(cmd *cobra.Command, args []string) error {
	jobType, err := ParseJobType(args[0])
	if err != nil {
		return err
	}

	cfg, log, err := bootstrap.Load(&flags)
	if err != nil {
		return err
	}

	var today *time.Time
	if date != "" {
		d, err := biztime.ParseDate(date)
		if err != nil {
			return err
		}
		today = &d
	}

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

	result, runErr := container.RunJob(ctx, jobType, today)
	if result != nil {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	}
	if runErr != nil {
		return fmt.Errorf("%s failed: %w", jobType, runErr)
	}
	return nil
}
