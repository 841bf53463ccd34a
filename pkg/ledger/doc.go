// Package ledger implements storage for ownership and grant facts.
//
// The ledger is the storage-facing primitive layer: creating protected
// objects, granting and revoking access, and the point lookups the
// policy engine reads. Grant and Revoke are idempotent and safe to
// retry or race; CreateProtectedObject is the only multi-statement
// write and always runs inside a single transaction.
package ledger
