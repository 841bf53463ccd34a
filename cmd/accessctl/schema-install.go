package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"accessctl/pkg/schema"
)

// schemaInstallCmd represents the schema install command
var schemaInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the access control schema",
	Long: `Install the access control database schema.

Creates the accessControlObjects, accessControlOwners, accessControlRules
and aclMetadata tables at the current schema version. Fails if the schema
is already installed.

Example:
  accessctl schema install`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := installSchema(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to install schema: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Schema version %s installed.\n", schema.Version)
	},
}

func init() {
	schemaCmd.AddCommand(schemaInstallCmd)
}

func installSchema() error {
	database, err := openSQL()
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	return schema.NewStore(database).Install()
}
