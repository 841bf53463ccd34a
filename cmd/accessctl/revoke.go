package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"accessctl/pkg/audit"
)

// revokeCmd represents the revoke command
var revokeCmd = &cobra.Command{
	Use:   "revoke <objectClass> <objectId> <granteeId> <accessType>",
	Short: "Revoke a user's access to an object",
	Long: `Revoke a user's access type on a protected object.

Revoking an absent permission is a no-op.

Example:
  accessctl revoke document 42 9 edit`,
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

		if err := runRevoke(objectClass, objectID, granteeID, accessType); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to revoke access: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Revoked %s access on %s/%d from user %d.\n", accessType, objectClass, objectID, granteeID)
	},
}

func init() {
	rootCmd.AddCommand(revokeCmd)
}

func runRevoke(objectClass string, objectID, granteeID int64, accessType string) error {
	store, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	err = store.Revoke(objectClass, objectID, granteeID, accessType)

	event := audit.RevokeEvent{
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
