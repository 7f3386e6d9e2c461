package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so it is
// safe to call on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS reconciliations (
		id               TEXT PRIMARY KEY,
		request_id       TEXT NOT NULL,
		created_at       TEXT NOT NULL,
		active_step      INTEGER NOT NULL DEFAULT 0,
		outcome          TEXT NOT NULL
		                 CHECK(outcome IN ('applied','no_change','failed')),
		failure_code     TEXT NOT NULL DEFAULT '',
		tasks_suppressed INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS reconciliation_levels (
		reconciliation_id TEXT NOT NULL REFERENCES reconciliations(id) ON DELETE CASCADE,
		level             TEXT NOT NULL
		                  CHECK(level IN ('workstreams','milestones','tasks')),
		absent            INTEGER NOT NULL DEFAULT 0,
		proposed          INTEGER NOT NULL DEFAULT 0,
		kept              INTEGER NOT NULL DEFAULT 0,
		dropped           INTEGER NOT NULL DEFAULT 0,
		new_items         INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (reconciliation_id, level)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_reconciliations_created ON reconciliations(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_reconciliations_request ON reconciliations(request_id)`,
}
