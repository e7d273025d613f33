package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"

	// Immediate transactions take the write lock at BEGIN, before the first read
	defaultSQLiteDSN = "tournament.db?_journal_mode=WAL&_foreign_keys=on&_txlock=immediate"
)

type Config struct {
	DBDriver      string
	DatabaseURL   string
	MigrationsDir string
	HTTPAddr      string
	LogLevel      slog.Level
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// A missing .env is normal outside local development
	_ = godotenv.Load()

	cfg := &Config{
		DBDriver:      envOr("DB_DRIVER", DriverSQLite),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		MigrationsDir: envOr("MIGRATIONS_DIR", "migrations"),
		HTTPAddr:      envOr("HTTP_ADDR", ":8080"),
	}

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = defaultSQLiteDSN
		}
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL must be set when DB_DRIVER is %s", DriverPostgres)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	level, err := parseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}
