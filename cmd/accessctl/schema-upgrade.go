package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"accessctl/pkg/schema"
)

// schemaUpgradeCmd represents the schema upgrade command
var schemaUpgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade the access control schema",
	Long: `Upgrade the access control database schema.

The only supported transition is from version 1 to version 2, which adds
the uniqueness constraint on (objectClass, objectId). An already-current
schema is left untouched.

Example:
  accessctl schema upgrade`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := upgradeSchema(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to upgrade schema: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	schemaCmd.AddCommand(schemaUpgradeCmd)
}

func upgradeSchema() error {
	database, err := openSQL()
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	applied, err := schema.NewStore(database).Upgrade()
	if err != nil {
		var mismatch *schema.VersionMismatchError
		if errors.As(err, &mismatch) {
			fmt.Printf("Upgrade is only possible from schema version 1, but found installed version %s.\n", mismatch.Found)
			return nil
		}
		return err
	}

	if !applied {
		fmt.Println("Schema version is up to date.")
		return nil
	}
	fmt.Printf("Schema version successfully upgraded to %s.\n", schema.Version)
	return nil
}
