package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"accessctl/pkg/audit"
)

// grantCmd represents the grant command
var grantCmd = &cobra.Command{
	Use:   "grant <objectClass> <objectId> <granteeId> <accessType>",
	Short: "Grant access to an object to a user",
	Long: `Grant a user an access type on a protected object.

Granting an already-held permission is a no-op.

Example:
  accessctl grant document 42 9 edit`,
	Args: cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		objectClass := args[0]
		objectID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid objectId %q: %v\n", args[1], err)
			os.Exit(1)
		}
		granteeID, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid granteeId %q: %v\n", args[2], err)
			os.Exit(1)
		}
		accessType := args[3]

		if err := runGrant(objectClass, objectID, granteeID, accessType); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to grant access: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Granted %s access on %s/%d to user %d.\n", accessType, objectClass, objectID, granteeID)
	},
}

func init() {
	rootCmd.AddCommand(grantCmd)
}

func runGrant(objectClass string, objectID, granteeID int64, accessType string) error {
	store, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	err = store.Grant(objectClass, objectID, granteeID, accessType)

	event := audit.GrantEvent{
		GranteeID:   granteeID,
		ObjectClass: objectClass,
		ObjectID:    objectID,
		AccessType:  accessType,
		Success:     err == nil,
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)

	return err
}
