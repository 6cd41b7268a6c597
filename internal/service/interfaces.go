package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/aula/internal/contract"
	"github.com/alexanderramin/aula/internal/domain"
)

var (
	// ErrConflict is returned when a new session overlaps an existing one.
	ErrConflict = errors.New("schedule conflict")

	// ErrNotLoaded is returned when a use case runs before Load.
	ErrNotLoaded = errors.New("ledger not loaded")

	ErrInvalidInput = errors.New("invalid input")
)

// LedgerService owns the in-memory record for one run: Load once, mutate,
// Save once.
type LedgerService interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) error

	Profile() domain.TeacherProfile
	SetTeacherName(ctx context.Context, name string) error
	SetHourlyRate(ctx context.Context, rate float64) error

	AddSession(ctx context.Context, c domain.Category, name string, start time.Time) (*domain.Session, error)
	Adjust(ctx context.Context, c domain.Category, name string, deltaHours float64, reason string) (*domain.Session, error)
	Sessions(c domain.Category) []domain.Session
	History() []domain.Adjustment

	Report(ctx context.Context) (*contract.ReportResponse, error)
}

// Clock abstracts time to keep adjustment timestamps deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

// Now returns the local wall-clock time held as UTC, like every other
// ledger timestamp.
func (SystemClock) Now() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second(), 0, time.UTC)
}
