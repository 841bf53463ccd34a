package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"accessctl/pkg/config"
)

// configCheckCmd represents the config check command
var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the accessctl configuration",
	Long: `Validate the current state of the configuration file and environment
without connecting to the database.

Example:
  accessctl config check`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := checkConfiguration(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to check configuration: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configCmd.AddCommand(configCheckCmd)
}

func checkConfiguration() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Printf("Config file: %s\n", cfg.ConfigFilePath())

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	fmt.Println("Configuration is valid.")
	return nil
}
