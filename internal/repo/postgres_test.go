package repo

import (
	"database/sql"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/asset-inventory/internal/db"
	"github.com/rogerio-castellano/asset-inventory/internal/models"
)

// openTestDB connects to DATABASE_URL and empties the inventory tables.
// Tests using it are skipped when no database is configured.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set")
	}
	conn, err := db.Connect("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, db.Migrate(conn))

	_, err = conn.Exec(`DELETE FROM assets; DELETE FROM catalog_entries; DELETE FROM users`)
	require.NoError(t, err)
	return conn
}

func TestPostgresAssetRepository(t *testing.T) {
	testAssetRepository(t, NewPostgresAssetRepository(openTestDB(t)))
}

func TestPostgresCatalogRepository(t *testing.T) {
	testCatalogRepository(t, NewPostgresCatalogRepository(openTestDB(t)))
}

func TestPostgresUserRepository(t *testing.T) {
	r := NewPostgresUserRepository(openTestDB(t))

	_, err := r.GetByUsername("ana")
	assert.ErrorIs(t, err, ErrUserNotFound)

	created, err := r.CreateUser(models.User{Username: "ana", PasswordHash: "hash", Role: "admin"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = r.CreateUser(models.User{Username: "ana", PasswordHash: "other", Role: "user"})
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)

	got, err := r.GetByUsername("ana")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.Equal(t, "admin", got.Role)
}
