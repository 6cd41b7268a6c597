package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/aula/internal/domain"
)

// MemoryRecordStore holds a copy of the record in process memory.
type MemoryRecordStore struct {
	rec   *domain.Record
	Saves int
}

func NewMemoryRecordStore(initial *domain.Record) *MemoryRecordStore {
	s := &MemoryRecordStore{}
	if initial != nil {
		s.rec = initial.Clone()
	}
	return s
}

func (s *MemoryRecordStore) Load(_ context.Context) (*domain.Record, error) {
	if s.rec == nil {
		return nil, fmt.Errorf("ledger record: %w", ErrNotFound)
	}
	return s.rec.Clone(), nil
}

func (s *MemoryRecordStore) Save(_ context.Context, r *domain.Record) error {
	s.rec = r.Clone()
	s.Saves++
	return nil
}

// Snapshot returns a copy of the last saved record, or nil.
func (s *MemoryRecordStore) Snapshot() *domain.Record {
	if s.rec == nil {
		return nil
	}
	return s.rec.Clone()
}
