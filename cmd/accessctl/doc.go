// Package accessctl provides the administrative CLI for the access
// control database.
//
// # Quick Start
//
//	# Install the schema
//	accessctl schema install
//
//	# Place an object under access control
//	accessctl object create document 42 7
//
//	# Grant and revoke access
//	accessctl grant document 42 9 edit
//	accessctl revoke document 42 9 edit
//
//	# Inspect and validate configuration
//	accessctl config show
//	accessctl config check
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - ACCESSCTL_CONFIG_PATH: directory containing accessctl.yml
//   - ACCESSCTL_LOG_LEVEL: log level (debug enables statement logging)
//   - ACCESSCTL_AUDIT_ENABLED: set to false to disable audit logging
//   - AUDIT_DATABASE_URL: optional database for persisted audit events
package main
