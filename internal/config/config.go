package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppEnv             string        `env:"APP_ENV" envDefault:"development"`
	LogLevel           slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`
	ApiServicePort     string        `env:"API_SERVICE_PORT" envDefault:"8080"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	DBDriver           string        `env:"DB_DRIVER" envDefault:"postgres"`
	SQLitePath         string        `env:"SQLITE_PATH" envDefault:"guildhall.db"`
	DatabaseURL        string        `env:"DATABASE_URL"`
	PostgreSQLHost     string        `env:"POSTGRESQL_HOST" envDefault:"db"`
	PostgreSQLPort     int64         `env:"POSTGRESQL_PORT" envDefault:"5432"`
	PostgreSQLUser     string        `env:"POSTGRESQL_USER" envDefault:"guildhall_user"`
	PostgreSQLPassword string        `env:"POSTGRESQL_PASSWORD" envDefault:"guildhall_password"`
	PostgreSQLDatabase string        `env:"POSTGRESQL_DATABASE" envDefault:"guildhall_db"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// LoadConfig reads the process environment into a Config. In development a
// .env file in the working directory is loaded first when present.
func LoadConfig() (*Config, error) {
	if strings.ToLower(lookupAppEnv()) == "development" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.DBDriver = strings.ToLower(cfg.DBDriver)
	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string, preferring DATABASE_URL if set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		c.PostgreSQLHost,
		c.PostgreSQLUser,
		c.PostgreSQLPassword,
		c.PostgreSQLDatabase,
		c.PostgreSQLPort,
	)
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.AppEnv) == "production"
}

func lookupAppEnv() string {
	if value, exists := os.LookupEnv("APP_ENV"); exists {
		return value
	}
	return "development"
}
