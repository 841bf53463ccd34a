package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Manage the access control schema",
	Long:  `Manage the access control database schema and its version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'schema' requires a subcommand (install, upgrade, version)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
