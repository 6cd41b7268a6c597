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

	expected := []string{"teacher_profile", "class_sessions", "session_adjustments", "adjustment_history"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_RejectsUnknownCategory(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO class_sessions (id, category, name, starts_at, ends_at, seq)
		VALUES ('s1', 'seminar', 'x', '2024-01-01 09:00', '2024-01-01 10:00', 0)`)
	assert.Error(t, err)
}

func TestMigrate_AdjustmentsCascadeWithSession(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO class_sessions (id, category, name, starts_at, ends_at, seq)
		VALUES ('s1', 'course', 'Go', '2024-01-01 09:00', '2024-01-01 12:30', 0)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO session_adjustments (session_id, reason, delta_hours, applied_at)
		VALUES ('s1', 'late', -1, '2024-01-01 18:00')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM class_sessions WHERE id = 's1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM session_adjustments`).Scan(&n))
	assert.Equal(t, 0, n)
}
