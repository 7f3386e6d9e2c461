package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"reconciliations", "reconciliation_levels"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_reconciliations_created", "idx_reconciliations_request"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_OutcomeConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO reconciliations (id, request_id, created_at, outcome)
		VALUES ('r1', 'q1', '2025-03-04T00:00:00Z', 'exploded')`)
	assert.Error(t, err)
}

func TestMigrate_LevelsCascadeOnDelete(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO reconciliations (id, request_id, created_at, outcome)
		VALUES ('r1', 'q1', '2025-03-04T00:00:00Z', 'applied')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO reconciliation_levels (reconciliation_id, level, kept)
		VALUES ('r1', 'milestones', 2)`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM reconciliations WHERE id = 'r1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM reconciliation_levels`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestMigrate_LevelRequiresParent(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO reconciliation_levels (reconciliation_id, level)
		VALUES ('missing', 'tasks')`)
	assert.Error(t, err, "foreign keys must be enforced")
}
