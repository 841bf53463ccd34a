package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"accessctl/pkg/audit"
)

// objectCreateCmd represents the object create command
var objectCreateCmd = &cobra.Command{
	Use:   "create <objectClass> <objectId> <ownerId>",
	Short: "Place an object under access control",
	Long: `Place a domain entity under access control.

The owner is recorded and receives read and edit access in the same
transaction. Prints the new protected object id.

Example:
  accessctl object create document 42 7`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		objectClass := args[0]
		objectID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid objectId %q: %v\n", args[1], err)
			os.Exit(1)
		}
		ownerID, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid ownerId %q: %v\n", args[2], err)
			os.Exit(1)
		}

		id, err := runObjectCreate(objectClass, objectID, ownerID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create protected object: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(id)
	},
}

func init() {
	objectCmd.AddCommand(objectCreateCmd)
}

func runObjectCreate(objectClass string, objectID, ownerID int64) (int64, error) {
	store, cleanup, err := openLedger()
	if err != nil {
		return 0, err
	}
	defer cleanup()

	id, err := store.CreateProtectedObject(objectClass, objectID, ownerID)

	event := audit.ObjectEvent{
		OwnerID:           ownerID,
		ObjectClass:       objectClass,
		ObjectID:          objectID,
		ProtectedObjectID: id,
		Success:           err == nil,
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)

	return id, err
}
