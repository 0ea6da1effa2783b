package seed

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reminderly/reminderly/internal/infrastructure/catalog"
	"github.com/reminderly/reminderly/internal/infrastructure/database"
	"github.com/reminderly/reminderly/internal/infrastructure/repository"
	"github.com/reminderly/reminderly/internal/interfaces/cli/bootstrap"
	shareddb "github.com/reminderly/reminderly/internal/shared/db"
)

var (
	flags     bootstrap.Flags
	file      string
	overwrite bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the reminder type catalog",
		Long: `Create the reminder types listed in a YAML catalog. Without --file the
built-in HR catalog is used. Existing types are left alone unless --overwrite is set.`,
		RunE: run,
	}

	flags.Bind(cmd)
	cmd.Flags().StringVarP(&file, "file", "f", "", "Catalog YAML file (default: built-in catalog)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace existing reminder types with the catalog definition")

	return cmd
}

func loadCatalog() (*catalog.Catalog, error) {
	if file == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(file)
}

func run(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

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

	seeder := catalog.NewSeeder(
		repository.NewReminderTypeRepository(db),
		shareddb.NewTransactionManager(db),
		log.Named("seed"),
	)

	result, err := seeder.Seed(ctx, cat, overwrite)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
