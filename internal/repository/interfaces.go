package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/aula/internal/domain"
)

// ErrNotFound is returned by Load when no record has been saved yet.
var ErrNotFound = errors.New("not found")

// RecordStore persists the whole ledger record. The record is read once at
// the start of a run and written back wholesale at the end.
type RecordStore interface {
	Load(ctx context.Context) (*domain.Record, error)
	Save(ctx context.Context, r *domain.Record) error
}
