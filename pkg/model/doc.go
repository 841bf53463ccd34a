// Package model defines the database models for accessctl.
//
// This package contains GORM models that map to the access-control schema.
// Table and column names keep the camelCase identifiers of the wire schema,
// so every identifier is quoted in raw SQL.
//
// # Core Models
//
//   - ProtectedObject: entities placed under access control
//   - Ownership: owner relationships for protected objects
//   - GrantRule: (grantee, access type) permissions on protected objects
//   - MetadataAttribute: schema metadata, including the version marker
//
// # Database Schema
//
// The database uses PostgreSQL with the following tables:
//
//   - accessControlObjects: protected object identities
//   - accessControlOwners: object ownership
//   - accessControlRules: access grants
//   - aclMetadata: schema metadata ('version' is currently '2')
//
// Grantee and owner columns reference the host application's users table
// by foreign key; accessctl never queries that table directly.
package model
