package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/aula/internal/accounting"
	"github.com/alexanderramin/aula/internal/contract"
	"github.com/alexanderramin/aula/internal/domain"
	"github.com/alexanderramin/aula/internal/repository"
	"github.com/google/uuid"
)

type LedgerOptions struct {
	// CrossCategoryConflicts checks new sessions against every category
	// instead of only their own.
	CrossCategoryConflicts bool
	Clock                  Clock
}

type ledgerService struct {
	store    repository.RecordStore
	opts     LedgerOptions
	clock    Clock
	observer UseCaseObserver
	rec      *domain.Record
}

func NewLedgerService(store repository.RecordStore, opts LedgerOptions, observers ...UseCaseObserver) LedgerService {
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	return &ledgerService{
		store:    store,
		opts:     opts,
		clock:    clock,
		observer: useCaseObserverOrNoop(observers),
	}
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}

func (s *ledgerService) Load(ctx context.Context) (err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "load-record", time.Now(), &err, fields)

	rec, err := s.store.Load(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		fields["initialized"] = true
		s.rec = domain.NewRecord()
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading record: %w", err)
	}
	fields["sessions"] = len(rec.All())
	s.rec = rec
	return nil
}

func (s *ledgerService) Save(ctx context.Context) (err error) {
	defer observe(ctx, s.observer, "save-record", time.Now(), &err, nil)

	if s.rec == nil {
		return ErrNotLoaded
	}
	if err = s.store.Save(ctx, s.rec); err != nil {
		return fmt.Errorf("saving record: %w", err)
	}
	return nil
}

func (s *ledgerService) Profile() domain.TeacherProfile {
	if s.rec == nil {
		return domain.TeacherProfile{}
	}
	return s.rec.Profile
}

func (s *ledgerService) SetTeacherName(ctx context.Context, name string) (err error) {
	defer observe(ctx, s.observer, "set-teacher-name", time.Now(), &err, nil)

	if s.rec == nil {
		return ErrNotLoaded
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("teacher name is required: %w", ErrInvalidInput)
	}
	s.rec.Profile.Name = name
	return nil
}

func (s *ledgerService) SetHourlyRate(ctx context.Context, rate float64) (err error) {
	defer observe(ctx, s.observer, "set-hourly-rate", time.Now(), &err, map[string]any{"rate": rate})

	if s.rec == nil {
		return ErrNotLoaded
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return fmt.Errorf("hourly rate %v must be a non-negative number: %w", rate, ErrInvalidInput)
	}
	s.rec.Profile.HourlyRate = rate
	return nil
}

func (s *ledgerService) AddSession(ctx context.Context, c domain.Category, name string, start time.Time) (session *domain.Session, err error) {
	fields := map[string]any{"category": string(c), "name": name}
	defer observe(ctx, s.observer, "add-session", time.Now(), &err, fields)

	if s.rec == nil {
		return nil, ErrNotLoaded
	}
	if !c.Valid() {
		return nil, fmt.Errorf("%q: %w", c, domain.ErrUnknownCategory)
	}

	candidate := domain.NewInterval(start, c.DefaultDuration())
	existing := s.rec.Sessions(c)
	if s.opts.CrossCategoryConflicts {
		existing = s.rec.All()
	}
	if accounting.HasConflict(existing, candidate) {
		return nil, fmt.Errorf("%s %q at %s: %w", c, name, start.Format(domain.TimestampLayout), ErrConflict)
	}

	session = &domain.Session{
		ID:          uuid.New().String(),
		Name:        name,
		Start:       candidate.Start,
		End:         candidate.End,
		Adjustments: []domain.Adjustment{},
	}
	if err = s.rec.Add(c, session); err != nil {
		return nil, err
	}
	fields["id"] = session.ID
	return session, nil
}

func (s *ledgerService) Adjust(ctx context.Context, c domain.Category, name string, deltaHours float64, reason string) (session *domain.Session, err error) {
	fields := map[string]any{"category": string(c), "name": name, "delta_hours": deltaHours}
	defer observe(ctx, s.observer, "adjust-session", time.Now(), &err, fields)

	if s.rec == nil {
		return nil, ErrNotLoaded
	}
	if math.IsNaN(deltaHours) || math.IsInf(deltaHours, 0) {
		return nil, fmt.Errorf("adjustment %v is not a number of hours: %w", deltaHours, ErrInvalidInput)
	}
	return s.rec.ApplyAdjustment(c, name, deltaHours, reason, s.clock.Now())
}

func (s *ledgerService) Sessions(c domain.Category) []domain.Session {
	if s.rec == nil {
		return nil
	}
	sessions := s.rec.Sessions(c)
	out := make([]domain.Session, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, *sess)
	}
	return out
}

func (s *ledgerService) History() []domain.Adjustment {
	if s.rec == nil {
		return nil
	}
	return append([]domain.Adjustment{}, s.rec.Adjustments...)
}

func (s *ledgerService) Report(ctx context.Context) (resp *contract.ReportResponse, err error) {
	defer observe(ctx, s.observer, "report", time.Now(), &err, nil)

	if s.rec == nil {
		return nil, ErrNotLoaded
	}
	return buildReport(s.rec, s.clock.Now()), nil
}
