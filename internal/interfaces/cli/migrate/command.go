package migrate

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/reminderly/reminderly/internal/infrastructure/database"
	"github.com/reminderly/reminderly/internal/infrastructure/migration"
	"github.com/reminderly/reminderly/internal/interfaces/cli/bootstrap"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

var (
	flags       bootstrap.Flags
	name        string
	steps       int
	scriptsPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	flags.Bind(cmd)

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and the state of every script.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create an empty goose migration for every supported dialect.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration in lower snake case (required)")
	cmd.Flags().StringVar(&scriptsPath, "scripts", "./internal/infrastructure/migration/scripts", "Migration scripts root")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

type migrateFunc func(ctx context.Context, db *gorm.DB, strategy *migration.GooseStrategy, log logger.Interface) error

// withDatabase loads config, opens the database and runs fn with a goose strategy.
func withDatabase(fn migrateFunc) error {
	cfg, log, err := bootstrap.Load(&flags)
	if err != nil {
		return err
	}

	db, err := bootstrap.OpenDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx, stop := bootstrap.SignalContext()
	defer stop()

	return fn(ctx, db, migration.NewGooseStrategy(), log)
}

func runUp(cmd *cobra.Command, args []string) error {
	return withDatabase(func(ctx context.Context, db *gorm.DB, strategy *migration.GooseStrategy, log logger.Interface) error {
		log.Infow("running up migrations", "environment", flags.Environment())

		if err := strategy.Migrate(ctx, db); err != nil {
			log.Errorw("migration failed", "error", err)
			return fmt.Errorf("migration failed: %w", err)
		}

		log.Infow("migrations completed successfully")
		return nil
	})
}

func runDown(cmd *cobra.Command, args []string) error {
	return withDatabase(func(ctx context.Context, db *gorm.DB, strategy *migration.GooseStrategy, log logger.Interface) error {
		log.Infow("running down migrations", "environment", flags.Environment(), "steps", steps)

		if err := strategy.MigrateDown(ctx, db, steps); err != nil {
			log.Errorw("down migration failed", "error", err)
			return fmt.Errorf("down migration failed: %w", err)
		}

		log.Infow("down migration completed successfully")
		return nil
	})
}

func runStatus(cmd *cobra.Command, args []string) error {
	return withDatabase(func(ctx context.Context, db *gorm.DB, strategy *migration.GooseStrategy, log logger.Interface) error {
		current, err := strategy.GetVersion(ctx, db)
		if err != nil {
			log.Errorw("failed to get migration version", "error", err)
			return fmt.Errorf("failed to get migration version: %w", err)
		}

		statuses, err := strategy.Status(ctx, db)
		if err != nil {
			log.Errorw("failed to get detailed status", "error", err)
			return fmt.Errorf("failed to get detailed status: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\nMigration Status:\n")
		fmt.Fprintf(out, "  Environment:     %s\n", flags.Environment())
		fmt.Fprintf(out, "  Current Version: %d\n\n", current)

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tSOURCE")
		for _, st := range statuses {
			applied := "-"
			if !st.AppliedAt.IsZero() {
				applied = st.AppliedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", st.Source.Version, st.State, applied, st.Source.Path)
		}
		return tw.Flush()
	})
}

func runCreate(cmd *cobra.Command, args []string) error {
	created, err := migration.NewGenerator(scriptsPath).CreateMigration(name)
	if err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	for _, path := range created {
		fmt.Fprintf(os.Stdout, "created %s\n", path)
	}
	return nil
}
