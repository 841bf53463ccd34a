package ledger

import "errors"

// ErrObjectNotFound indicates the (objectClass, objectId) pair has no
// registered protected object.
var ErrObjectNotFound = errors.New("protected object not found")

// ErrMissingHandle indicates no database handle was supplied.
var ErrMissingHandle = errors.New("a database handle is required")

// ownerAccessTypes are the grants a creating owner receives alongside
// the ownership record. Ownership and grants are deliberately redundant:
// the owner policy checks ownership, the ACL policy checks grants.
var ownerAccessTypes = []string{"read", "edit"}

// Store abstracts the grant ledger: mutation and point lookup over
// protected objects, ownership and grant rules.
type Store interface {
	// Transaction wraps operations in a database transaction.
	// The provided function receives a transactional Store.
	// If the function returns an error, the transaction is rolled back.
	Transaction(fn func(Store) error) error

	// CreateProtectedObject registers an entity for access control and,
	// in the same transaction, records the owner and grants the owner
	// read and edit access. Returns the new protected object id.
	CreateProtectedObject(objectClass string, objectID, ownerID int64) (int64, error)

	// Grant gives a principal an access type on a protected object.
	// Granting an already-held permission is a no-op. Fails with
	// ErrObjectNotFound when the object is not registered.
	Grant(objectClass string, objectID, granteeID int64, accessType string) error

	// Revoke removes a principal's access type on a protected object.
	// Revoking an absent permission is a no-op. Fails with
	// ErrObjectNotFound when the object is not registered.
	Revoke(objectClass string, objectID, granteeID int64, accessType string) error

	// FindGrant looks up a matching grant rule and returns the protected
	// object id when one exists.
	FindGrant(objectClass string, objectID, granteeID int64, accessType string) (int64, bool, error)

	// FindOwnership looks up a matching ownership record and returns the
	// protected object id when one exists.
	FindOwnership(objectClass string, objectID, ownerID int64) (int64, bool, error)
}
