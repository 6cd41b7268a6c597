package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/aula/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

// profileName reads the stored teacher name through a read-only transaction.
func profileName(uow *db.SQLiteUnitOfWork) (string, bool) {
	var name string
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		row := tx.QueryRowContext(ctx, `SELECT name FROM teacher_profile WHERE id = 'default'`)
		if err := row.Scan(&name); err != nil {
			return nil
		}
		found = true
		return nil
	})
	return name, found
}

func insertProfile(ctx context.Context, tx db.DBTX, name string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO teacher_profile (id, name, hourly_rate) VALUES ('default', ?, 100)`, name)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertProfile(ctx, tx, "Ana")
	})
	require.NoError(t, err)

	name, found := profileName(uow)
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, "Ana", name)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertProfile(ctx, tx, "Bruno"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := profileName(uow)
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertProfile(ctx, tx, "Carla")
			panic("boom")
		})
	})

	_, found := profileName(uow)
	assert.False(t, found, "row should not exist after panic rollback")
}
