package main

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/guildhall/backend-go/internal/config"
	"github.com/guildhall/backend-go/internal/database"
	"github.com/guildhall/backend-go/internal/logger"
)

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run PostgreSQL schema migrations",
}

func newMigrateSubcommand(direction, short string) *cobra.Command {
	return &cobra.Command{
		Use:   direction,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.DBDriver != config.DriverPostgres {
				return fmt.Errorf("migrations apply to postgres only, DB_DRIVER is %q", cfg.DBDriver)
			}

			appLogger := logger.New(cfg)

			sqlDB, err := sql.Open("postgres", cfg.DSN())
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer sqlDB.Close()

			appLogger.Info("🔄 [Database] Running migration", "direction", direction)
			if err := database.Migrate(cmd.Context(), sqlDB, direction); err != nil {
				return err
			}
			appLogger.Info("✅ [Database] Migration finished", "direction", direction)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(
		newMigrateSubcommand(database.MigrateUp, "Apply all up migrations"),
		newMigrateSubcommand(database.MigrateDown, "Roll back the most recent migration"),
		newMigrateSubcommand(database.MigrateStatus, "Print the migration status"),
	)
}
