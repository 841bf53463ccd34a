package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"accessctl/pkg/schema"
)

// schemaVersionCmd represents the schema version command
var schemaVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the installed schema version",
	Long:  `Show the currently installed access control schema version.`,
	Run: func(cmd *cobra.Command, args []string) {
		version, err := showSchemaVersion()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get schema version: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(version)
	},
}

func init() {
	schemaCmd.AddCommand(schemaVersionCmd)
}

func showSchemaVersion() (string, error) {
	database, err := openSQL()
	if err != nil {
		return "", err
	}
	defer func() { _ = database.Close() }()

	return schema.NewStore(database).CurrentVersion()
}
