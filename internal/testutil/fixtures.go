package testutil

import (
	"time"

	"github.com/alexanderramin/aula/internal/domain"
	"github.com/google/uuid"
)

// Day is the reference date used by fixtures: 2024-01-01 00:00 UTC.
var Day = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// At returns Day at hour:min.
func At(hour, min int) time.Time {
	return Day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

// Session options
type SessionOption func(*domain.Session)

func WithEnd(end time.Time) SessionOption {
	return func(s *domain.Session) {
		s.End = end
	}
}

func WithAdjustment(reason string, delta float64, appliedAt time.Time) SessionOption {
	return func(s *domain.Session) {
		s.ApplyAdjustment(delta, reason, appliedAt)
	}
}

func WithoutID() SessionOption {
	return func(s *domain.Session) {
		s.ID = ""
	}
}

// NewTestSession builds a session of category c starting at start with the
// category's default duration.
func NewTestSession(c domain.Category, name string, start time.Time, opts ...SessionOption) *domain.Session {
	s := &domain.Session{
		ID:          uuid.New().String(),
		Name:        name,
		Start:       start,
		End:         start.Add(c.DefaultDuration()),
		Adjustments: []domain.Adjustment{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestRecord returns a record with a complete profile at the given rate.
func NewTestRecord(rate float64) *domain.Record {
	r := domain.NewRecord()
	r.Profile = domain.TeacherProfile{Name: "Ana Souza", HourlyRate: rate}
	return r
}
