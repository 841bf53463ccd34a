package schema

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	dbembed "accessctl/db"
)

// Version is the schema revision this release of accessctl requires.
const Version = "2"

// MigrationsTable is where golang-migrate records applied migrations.
// It is separate from aclMetadata, which stays the authoritative version
// marker visible to host applications.
const MigrationsTable = "acl_schema_migrations"

// ErrNotInstalled indicates the aclMetadata table or version row is absent.
var ErrNotInstalled = errors.New("access control schema is not installed")

// ErrAlreadyInstalled indicates Install was called on a database that
// already carries the schema.
var ErrAlreadyInstalled = errors.New("access control schema is already installed")

// ErrMissingHandle indicates no database handle was supplied.
var ErrMissingHandle = errors.New("a database handle is required")

// VersionMismatchError indicates the installed schema version differs
// from the one this release requires.
type VersionMismatchError struct {
	Found string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("access control schema version %s expected, %s found instead", Version, e.Found)
}

// undefinedTable is the PostgreSQL error code for a missing relation.
const undefinedTable = "42P01"

// sqlStater is implemented by both lib/pq and pgx error types, so the
// store works over either driver's *sql.DB handle.
type sqlStater interface {
	SQLState() string
}

// isUndefinedTable reports whether err is PostgreSQL's undefined_table.
func isUndefinedTable(err error) bool {
	var pgErr sqlStater
	return errors.As(err, &pgErr) && pgErr.SQLState() == undefinedTable
}

// Store manages the access-control schema: installation, upgrade and
// the version guard every other component runs at startup.
type Store struct {
	db *sql.DB
}

// NewStore creates a schema store over an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// CurrentVersion returns the version marker from aclMetadata.
// It returns ErrNotInstalled when the table or the version row is absent.
func (s *Store) CurrentVersion() (string, error) {
	if s.db == nil {
		return "", ErrMissingHandle
	}

	var version string
	err := s.db.QueryRow(`SELECT "value" FROM "aclMetadata" WHERE "attribute" = 'version'`).Scan(&version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isUndefinedTable(err) {
			return "", ErrNotInstalled
		}
		return "", fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// Verify is the startup guard: it fails with ErrNotInstalled or a
// VersionMismatchError unless the installed version is current.
func (s *Store) Verify() error {
	version, err := s.CurrentVersion()
	if err != nil {
		return err
	}
	if version != Version {
		return &VersionMismatchError{Found: version}
	}
	return nil
}

// Install creates all tables fresh at the current version.
// It fails with ErrAlreadyInstalled if the schema is already present,
// at any version.
func (s *Store) Install() error {
	_, err := s.CurrentVersion()
	if err == nil {
		return ErrAlreadyInstalled
	}
	if !errors.Is(err, ErrNotInstalled) {
		return err
	}

	m, err := s.migrator()
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("schema installation failed: %w", err)
	}
	return nil
}

// Upgrade brings a version 1 schema up to the current version. An
// already-current schema is a no-op success (applied is false). Any
// other installed version is reported as a mismatch without mutating
// state; there is no upgrade path from it.
func (s *Store) Upgrade() (applied bool, err error) {
	version, err := s.CurrentVersion()
	if err != nil {
		return false, err
	}

	switch version {
	case Version:
		return false, nil
	case "1":
	default:
		return false, &VersionMismatchError{Found: version}
	}

	m, err := s.migrator()
	if err != nil {
		return false, err
	}
	defer func() { _, _ = m.Close() }()

	// A version 1 schema predates the migrations table, so record the
	// initial migration as applied before running the rest.
	if err := m.Force(1); err != nil {
		return false, fmt.Errorf("failed to record schema baseline: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return false, fmt.Errorf("schema upgrade failed: %w", err)
	}
	return true, nil
}

func (s *Store) migrator() (*migrate.Migrate, error) {
	if s.db == nil {
		return nil, ErrMissingHandle
	}

	driver, err := migratepg.WithInstance(s.db, &migratepg.Config{
		MigrationsTable: MigrationsTable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(dbembed.Migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	return migrate.NewWithInstance("iofs", source, "postgres", driver)
}
