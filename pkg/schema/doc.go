// Package schema manages the persisted access-control schema.
//
// The installed revision is tracked in two places: golang-migrate's own
// migrations table (MigrationsTable) and the 'version' attribute row in
// aclMetadata, which the migrations themselves maintain. aclMetadata is
// the contract with host applications; the migrations table is an
// implementation detail.
//
// Every component that touches the schema must call Store.Verify first
// and treat a failure as fatal. The only supported upgrade transition
// is version 1 to version 2, which adds the uniqueness constraint on
// (objectClass, objectId).
package schema
