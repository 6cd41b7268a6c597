package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the ledger schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS teacher_profile (
		id          TEXT PRIMARY KEY CHECK(id = 'default'),
		name        TEXT NOT NULL DEFAULT '',
		hourly_rate REAL NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS class_sessions (
		id        TEXT PRIMARY KEY,
		category  TEXT NOT NULL
		          CHECK(category IN ('course','super_module','workshop')),
		name      TEXT NOT NULL,
		starts_at TEXT NOT NULL,
		ends_at   TEXT NOT NULL,
		seq       INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_class_sessions_category ON class_sessions(category, seq)`,

	`CREATE TABLE IF NOT EXISTS session_adjustments (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id  TEXT NOT NULL REFERENCES class_sessions(id) ON DELETE CASCADE,
		reason      TEXT NOT NULL DEFAULT '',
		delta_hours REAL NOT NULL,
		applied_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_session_adjustments_session ON session_adjustments(session_id)`,

	// Record-wide history; survives independently of the per-session rows.
	`CREATE TABLE IF NOT EXISTS adjustment_history (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		category     TEXT NOT NULL DEFAULT '',
		session_name TEXT NOT NULL DEFAULT '',
		reason       TEXT NOT NULL DEFAULT '',
		delta_hours  REAL NOT NULL,
		applied_at   TEXT NOT NULL
	)`,
}
