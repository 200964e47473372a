package main

import (
	"fmt"
	"log/slog"

	"hoa_stickers/internal/adapter/persistence"

	"github.com/spf13/cobra"
)

// migrateCmd creates the Postgres schema or the DynamoDB tables
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the residents, products and purchases tables",
	Long: `Create the tables of the configured store.

For postgres the schema statements are idempotent. For dynamodb existing
tables are left untouched.`,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := persistence.Open(cmd.Context(), cfg.Store)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}
	defer store.Close()

	if err := store.Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("migrate %s store: %w", store.Backend(), err)
	}
	slog.Info("store migrated", "backend", store.Backend())
	fmt.Fprintf(cmd.OutOrStdout(), "%s store is up to date\n", store.Backend())
	return nil
}
