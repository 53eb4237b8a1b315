package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/guildhall/backend-go/internal/config"
	"github.com/guildhall/backend-go/internal/database/models"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsDir = "migrations"

// Migration directions accepted by Migrate
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// Connect opens the configured database and brings its schema up to date.
// PostgreSQL is migrated by goose; SQLite (local development) by AutoMigrate.
func Connect(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel(cfg)),
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		logger.Info("🔌 [Database] Opening SQLite database...", "path", cfg.SQLitePath)
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		logger.Info("🔌 [Database] Connecting to PostgreSQL...",
			"host", cfg.PostgreSQLHost,
			"port", cfg.PostgreSQLPort,
			"database", cfg.PostgreSQLDatabase,
		)
		dialector = postgres.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("✅ [Database] Database connection established", "driver", cfg.DBDriver)

	logger.Info("🔄 [Database] Running migrations...")
	if cfg.DBDriver == config.DriverSQLite {
		err = AutoMigrate(db)
	} else {
		err = Migrate(context.Background(), sqlDB, MigrateUp)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("✅ [Database] Migrations completed successfully")

	return db, nil
}

// AutoMigrate creates the tables from the entity definitions
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Character{}, &models.Employee{})
}

// Migrate runs the embedded goose migrations against a PostgreSQL handle
func Migrate(ctx context.Context, sqlDB *sql.DB, direction string) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	var err error
	switch direction {
	case MigrateUp:
		err = goose.UpContext(ctx, sqlDB, migrationsDir)
	case MigrateDown:
		err = goose.DownContext(ctx, sqlDB, migrationsDir)
	case MigrateStatus:
		err = goose.StatusContext(ctx, sqlDB, migrationsDir)
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
	if err != nil {
		return fmt.Errorf("goose %s: %w", direction, err)
	}

	return nil
}

func gormLogLevel(cfg *config.Config) gormlogger.LogLevel {
	switch {
	case cfg.LogLevel <= slog.LevelDebug:
		return gormlogger.Info
	case cfg.IsProduction():
		return gormlogger.Error
	default:
		return gormlogger.Warn
	}
}
