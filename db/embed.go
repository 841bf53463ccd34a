// Package db holds the embedded SQL migrations for the access-control
// schema. The migration files are the canonical definition of the
// persisted layout; pkg/schema applies them.
package db

import "embed"

// Migrations contains the SQL migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
