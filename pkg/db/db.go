package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"accessctl/pkg/config"
)

// Config holds database connection configuration
type Config struct {
	// URL is the database connection URL (defaults to the configured
	// database_url, which folds in the DATABASE_URL environment variable)
	URL string
}

// Connect establishes a database connection.
// If no URL is provided, it reads the configured database_url.
func Connect(cfg Config) (*gorm.DB, error) {
	settings := config.Get()

	dbURL := cfg.URL
	if dbURL == "" {
		dbURL = settings.DatabaseURL
	}
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// Default to silent logging unless the configured log level is debug
	logMode := logger.Silent
	if settings.LogLevel == "debug" {
		logMode = logger.Info
	}

	database, err := gorm.Open(
		postgres.New(postgres.Config{
			DSN:                  dbURL,
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logMode),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return database, nil
}

// URL returns the configured database URL.
// Returns empty string if no database URL is configured.
func URL() string {
	return config.Get().DatabaseURL
}
