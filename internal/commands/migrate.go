package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conectone/platform/internal/storage"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Create every table the platform needs in the configured database.
Existing tables are left untouched, so running migrate repeatedly is safe.`,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	store, err := storage.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()

	if err := store.Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Printf("Schema up to date (%s)\n", cfg.Database.Driver)
	return nil
}
