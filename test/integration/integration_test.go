package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbembed "accessctl/db"
	"accessctl/pkg/ledger"
	"accessctl/pkg/policy"
	"accessctl/pkg/schema"
)

const (
	ownerID    = int64(7)
	granteeID  = int64(9)
	strangerID = int64(12)
)

// testContext holds the resources shared by the integration subtests.
type testContext struct {
	db        *gorm.DB
	rawDB     *sql.DB
	container testcontainers.Container
}

func newTestContext(ctx context.Context) (*testContext, error) {
	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("accessctl_test"),
		tcpostgres.WithUsername("accessctl"),
		tcpostgres.WithPassword("accessctl"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := pgContainer.MappedPort(ctx, "5432")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}
	connStr := fmt.Sprintf("postgres://accessctl:accessctl@%s:%s/accessctl_test?sslmode=disable", host, port.Port())

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	rawDB, err := db.DB()
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get raw db: %w", err)
	}

	return &testContext{db: db, rawDB: rawDB, container: pgContainer}, nil
}

func (tc *testContext) close(ctx context.Context) {
	if tc.rawDB != nil {
		_ = tc.rawDB.Close()
	}
	if tc.container != nil {
		_ = tc.container.Terminate(ctx)
	}
}

// createUsers creates the host application's users table, which the
// access control tables reference.
func (tc *testContext) createUsers() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (id BIGSERIAL PRIMARY KEY, name TEXT NOT NULL DEFAULT '')`,
		fmt.Sprintf(`INSERT INTO users (id, name) VALUES (%d, 'owner'), (%d, 'grantee'), (%d, 'stranger') ON CONFLICT DO NOTHING`,
			ownerID, granteeID, strangerID),
	}
	for _, statement := range statements {
		if _, err := tc.rawDB.Exec(statement); err != nil {
			return err
		}
	}
	return nil
}

// resetToVersion1 drops the access control tables and recreates the
// version 1 layout directly, simulating a database installed by an
// older release.
func (tc *testContext) resetToVersion1() error {
	drop := `DROP TABLE IF EXISTS "accessControlRules", "accessControlOwners", "accessControlObjects", "aclMetadata", ` +
		schema.MigrationsTable + ` CASCADE`
	if _, err := tc.rawDB.Exec(drop); err != nil {
		return err
	}

	v1, err := dbembed.Migrations.ReadFile("migrations/000001_create_access_control_schema.up.sql")
	if err != nil {
		return err
	}
	_, err = tc.rawDB.Exec(string(v1))
	return err
}

func TestAccessControl(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") == "" {
		t.Skip("Skipping integration tests. Set INTEGRATION_TEST=1 to run.")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tc, err := newTestContext(ctx)
	require.NoError(t, err)
	defer tc.close(ctx)

	require.NoError(t, tc.createUsers())

	schemaStore := schema.NewStore(tc.rawDB)
	store := ledger.NewGormStore(tc.db)

	t.Run("guard fails before installation", func(t *testing.T) {
		assert.ErrorIs(t, schemaStore.Verify(), schema.ErrNotInstalled)

		_, err := policy.NewRegistry(store, schemaStore.Verify, policy.Options{})
		assert.ErrorIs(t, err, schema.ErrNotInstalled)
	})

	t.Run("install", func(t *testing.T) {
		require.NoError(t, schemaStore.Install())

		version, err := schemaStore.CurrentVersion()
		require.NoError(t, err)
		assert.Equal(t, schema.Version, version)
		assert.NoError(t, schemaStore.Verify())
	})

	t.Run("reinstall fails", func(t *testing.T) {
		assert.ErrorIs(t, schemaStore.Install(), schema.ErrAlreadyInstalled)
	})

	t.Run("upgrade of current schema is a no-op", func(t *testing.T) {
		applied, err := schemaStore.Upgrade()
		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("end to end", func(t *testing.T) {
		registry, err := policy.NewRegistry(store, schemaStore.Verify, policy.Options{})
		require.NoError(t, err)

		acl, ok := registry.Policy(policy.ACLPolicyName)
		require.True(t, ok)
		owner, ok := registry.Policy(policy.OwnerPolicyName)
		require.True(t, ok)

		protectedID, err := store.CreateProtectedObject("document", 42, ownerID)
		require.NoError(t, err)
		require.NotZero(t, protectedID)

		request := func(user *int64, accessType string) policy.Request {
			return policy.Request{UserID: user, ObjectClass: "document", ObjectID: 42, AccessType: accessType}
		}
		uid := func(id int64) *int64 { return &id }

		// The creating owner holds ownership plus read and edit grants.
		id, found, err := store.FindOwnership("document", 42, ownerID)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, protectedID, id)

		for _, accessType := range []string{"read", "edit"} {
			id, err := acl.VerifyAccess(request(uid(ownerID), accessType))
			assert.NoError(t, err)
			assert.Equal(t, protectedID, id)
		}
		id, err = owner.VerifyAccess(request(uid(ownerID), "anything"))
		assert.NoError(t, err)
		assert.Equal(t, protectedID, id)

		// Strangers and anonymous requesters are denied.
		_, err = acl.VerifyAccess(request(uid(strangerID), "read"))
		assert.ErrorIs(t, err, policy.ErrForbidden)
		_, err = owner.VerifyAccess(request(uid(granteeID), "read"))
		assert.ErrorIs(t, err, policy.ErrForbidden)
		_, err = acl.VerifyAccess(request(nil, "read"))
		assert.ErrorIs(t, err, policy.ErrForbidden)

		// Granting read flips the ACL decision for the grantee only.
		require.NoError(t, store.Grant("document", 42, granteeID, "read"))
		id, err = acl.VerifyAccess(request(uid(granteeID), "read"))
		assert.NoError(t, err)
		assert.Equal(t, protectedID, id)
		_, err = acl.VerifyAccess(request(uid(granteeID), "edit"))
		assert.ErrorIs(t, err, policy.ErrForbidden)

		// Duplicate grants and absent revokes are no-ops.
		assert.NoError(t, store.Grant("document", 42, granteeID, "read"))
		assert.NoError(t, store.Revoke("document", 42, granteeID, "edit"))

		// Revoking restores the denial.
		require.NoError(t, store.Revoke("document", 42, granteeID, "read"))
		_, err = acl.VerifyAccess(request(uid(granteeID), "read"))
		assert.ErrorIs(t, err, policy.ErrForbidden)

		// Operations on unregistered objects fail loudly.
		err = store.Grant("document", 404, granteeID, "read")
		assert.ErrorIs(t, err, ledger.ErrObjectNotFound)
		err = store.Revoke("document", 404, granteeID, "read")
		assert.ErrorIs(t, err, ledger.ErrObjectNotFound)

		// The same entity cannot be registered twice.
		_, err = store.CreateProtectedObject("document", 42, ownerID)
		assert.Error(t, err)
	})

	t.Run("upgrade from version 1", func(t *testing.T) {
		require.NoError(t, tc.resetToVersion1())

		version, err := schemaStore.CurrentVersion()
		require.NoError(t, err)
		require.Equal(t, "1", version)

		var mismatch *schema.VersionMismatchError
		require.ErrorAs(t, schemaStore.Verify(), &mismatch)
		assert.Equal(t, "1", mismatch.Found)

		applied, err := schemaStore.Upgrade()
		require.NoError(t, err)
		assert.True(t, applied)

		version, err = schemaStore.CurrentVersion()
		require.NoError(t, err)
		assert.Equal(t, schema.Version, version)
		assert.NoError(t, schemaStore.Verify())

		// The upgrade added the object identity constraint.
		_, err = store.CreateProtectedObject("report", 1, ownerID)
		require.NoError(t, err)
		_, err = store.CreateProtectedObject("report", 1, ownerID)
		assert.Error(t, err)
	})
}
