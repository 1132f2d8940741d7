package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies every schema statement. Statements are idempotent, so the
// whole list runs on each open.
func Migrate(conn *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS view_states (
		scope      TEXT PRIMARY KEY,
		zoom       TEXT NOT NULL DEFAULT 'weekly' CHECK(zoom IN ('weekly','monthly')),
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS group_expansions (
		scope      TEXT NOT NULL,
		group_id   TEXT NOT NULL,
		expanded   INTEGER NOT NULL CHECK(expanded IN (0,1)),
		updated_at TEXT NOT NULL,
		PRIMARY KEY (scope, group_id)
	)`,

	`CREATE TABLE IF NOT EXISTS load_records (
		id          TEXT PRIMARY KEY,
		scope       TEXT NOT NULL,
		source      TEXT NOT NULL,
		issue_count INTEGER NOT NULL DEFAULT 0,
		group_count INTEGER NOT NULL DEFAULT 0,
		full_reload INTEGER NOT NULL DEFAULT 0,
		loaded_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_load_records_scope ON load_records(scope, loaded_at)`,
}
