package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/aula/internal/domain"
	"github.com/alexanderramin/aula/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRecordStore_RoundTripIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRecordStore(nil)

	_, err := store.Load(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	rec := sampleRecord(t)
	require.NoError(t, store.Save(ctx, rec))
	rec.Courses[0].Name = "mutated after save"

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Go 101", got.Courses[0].Name)
	assert.Equal(t, 1, store.Saves)
}

func TestMemoryRecordStore_Initial(t *testing.T) {
	initial := testutil.NewTestRecord(50)
	require.NoError(t, initial.Add(domain.CategoryCourse, testutil.NewTestSession(domain.CategoryCourse, "Go", testutil.At(9, 0))))

	store := NewMemoryRecordStore(initial)
	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.Courses, 1)
	assert.Nil(t, NewMemoryRecordStore(nil).Snapshot())
}
