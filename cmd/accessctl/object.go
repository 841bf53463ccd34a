package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// objectCmd represents the object command
var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "Manage protected objects",
	Long:  `Manage access-controlled objects.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'object' requires a subcommand (create)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(objectCmd)
}
