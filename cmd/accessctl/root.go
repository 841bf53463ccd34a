package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	_ "github.com/lib/pq"
	"gorm.io/gorm"

	"accessctl/pkg/config"
	"accessctl/pkg/db"
	"accessctl/pkg/ledger"
	"accessctl/pkg/schema"
)

var rootCmd = &cobra.Command{
	Use:   "accessctl",
	Short: "Access control administration",
	Long:  `Administer the accessctl authorization database: schema lifecycle, protected objects and access grants.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// databaseURL resolves the connection string from configuration
// (which already folds in the DATABASE_URL environment variable).
func databaseURL() (string, error) {
	if url := config.Get().DatabaseURL; url != "" {
		return url, nil
	}
	return "", fmt.Errorf("DATABASE_URL environment variable is required")
}

// connect opens a GORM handle for ledger operations.
func connect() (*gorm.DB, error) {
	url, err := databaseURL()
	if err != nil {
		return nil, err
	}
	return db.Connect(db.Config{URL: url})
}

// openSQL opens a plain database/sql handle for schema operations.
func openSQL() (*sql.DB, error) {
	url, err := databaseURL()
	if err != nil {
		return nil, err
	}
	return sql.Open("postgres", url)
}

// openLedger opens a grant ledger after running the schema version
// guard. The returned cleanup closes the connection.
func openLedger() (*ledger.GormStore, func(), error) {
	database, err := connect()
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := database.DB()
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = sqlDB.Close() }

	if err := schema.NewStore(sqlDB).Verify(); err != nil {
		cleanup()
		return nil, nil, err
	}
	return ledger.NewGormStore(database), cleanup, nil
}
