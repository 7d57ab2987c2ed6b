package cmd

import (
	"errors"
	"fmt"

	"hotwire-demo/core/config"
	"hotwire-demo/core/database"
	"hotwire-demo/core/logger"
	"hotwire-demo/feature/items"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var itemColumns = []string{"id", "name"}

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the items table and seed it",
	Long:  `Auto-migrates the items table for the configured database driver and inserts the default items into an empty table. With --check it only reports missing columns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		checkOnly, _ := cmd.Flags().GetBool("check")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		if !cfg.Database.Enabled() {
			return errors.New("no database configured: set DATABASE_DRIVER to mysql, postgres or sqlite")
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}

		if checkOnly {
			missing, err := database.MissingColumns(db, items.Item{}.TableName(), itemColumns)
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				return fmt.Errorf("items table is missing columns: %v", missing)
			}
			logg.Info("Items table is up to date")
			return nil
		}

		store := items.NewGormStore(db)
		if err := store.Migrate(cmd.Context()); err != nil {
			return err
		}
		seeded, err := store.Seed(cmd.Context(), items.DefaultItems()...)
		if err != nil {
			return err
		}

		logg.Info("Migration complete", zap.String("driver", cfg.Database.Driver), zap.Int("seeded", seeded))
		return nil
	},
}

func init() {
	migrateCmd.Flags().Bool("check", false, "Only report missing columns")
	RootCmd.AddCommand(migrateCmd)
}
