package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/aula/internal/db"
	"github.com/alexanderramin/aula/internal/domain"
	"github.com/google/uuid"
)

// SQLiteRecordStore implements RecordStore on the ledger schema. Save
// replaces every row inside one transaction.
type SQLiteRecordStore struct {
	db  db.DBTX
	uow db.UnitOfWork
}

func NewSQLiteRecordStore(conn *sql.DB) *SQLiteRecordStore {
	return &SQLiteRecordStore{db: conn, uow: db.NewSQLiteUnitOfWork(conn)}
}

// WithUnitOfWork replaces the transaction runner used by Save.
func (r *SQLiteRecordStore) WithUnitOfWork(uow db.UnitOfWork) *SQLiteRecordStore {
	r.uow = uow
	return r
}

func (r *SQLiteRecordStore) Load(ctx context.Context) (*domain.Record, error) {
	rec := domain.NewRecord()

	profileFound, err := r.loadProfile(ctx, rec)
	if err != nil {
		return nil, err
	}
	byID, err := r.loadSessions(ctx, rec)
	if err != nil {
		return nil, err
	}
	if err := r.loadSessionAdjustments(ctx, byID); err != nil {
		return nil, err
	}
	if err := r.loadHistory(ctx, rec); err != nil {
		return nil, err
	}

	if !profileFound && len(byID) == 0 && len(rec.Adjustments) == 0 {
		return nil, fmt.Errorf("ledger record: %w", ErrNotFound)
	}
	return rec, nil
}

func (r *SQLiteRecordStore) loadProfile(ctx context.Context, rec *domain.Record) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT name, hourly_rate FROM teacher_profile WHERE id = 'default'`)
	if err := row.Scan(&rec.Profile.Name, &rec.Profile.HourlyRate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("scanning teacher profile: %w", err)
	}
	return true, nil
}

func (r *SQLiteRecordStore) loadSessions(ctx context.Context, rec *domain.Record) (map[string]*domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, category, name, starts_at, ends_at
		FROM class_sessions ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing class sessions: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*domain.Session)
	for rows.Next() {
		var s domain.Session
		var category, startsAt, endsAt string
		if err := rows.Scan(&s.ID, &category, &s.Name, &startsAt, &endsAt); err != nil {
			return nil, fmt.Errorf("scanning class session row: %w", err)
		}
		if s.Start, err = parseTimestamp("starts_at", startsAt); err != nil {
			return nil, err
		}
		if s.End, err = parseTimestamp("ends_at", endsAt); err != nil {
			return nil, err
		}
		s.Adjustments = []domain.Adjustment{}
		if err := rec.Add(domain.Category(category), &s); err != nil {
			return nil, err
		}
		byID[s.ID] = &s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating class sessions: %w", err)
	}
	return byID, nil
}

func (r *SQLiteRecordStore) loadSessionAdjustments(ctx context.Context, byID map[string]*domain.Session) error {
	rows, err := r.db.QueryContext(ctx, `SELECT session_id, reason, delta_hours, applied_at
		FROM session_adjustments ORDER BY id`)
	if err != nil {
		return fmt.Errorf("listing session adjustments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sessionID, appliedAt string
		var a domain.Adjustment
		if err := rows.Scan(&sessionID, &a.Reason, &a.DeltaHours, &appliedAt); err != nil {
			return fmt.Errorf("scanning session adjustment row: %w", err)
		}
		if a.AppliedAt, err = parseTimestamp("applied_at", appliedAt); err != nil {
			return err
		}
		if s, ok := byID[sessionID]; ok {
			s.Adjustments = append(s.Adjustments, a)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating session adjustments: %w", err)
	}
	return nil
}

func (r *SQLiteRecordStore) loadHistory(ctx context.Context, rec *domain.Record) error {
	rows, err := r.db.QueryContext(ctx, `SELECT category, session_name, reason, delta_hours, applied_at
		FROM adjustment_history ORDER BY id`)
	if err != nil {
		return fmt.Errorf("listing adjustment history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category, appliedAt string
		var a domain.Adjustment
		if err := rows.Scan(&category, &a.SessionName, &a.Reason, &a.DeltaHours, &appliedAt); err != nil {
			return fmt.Errorf("scanning adjustment history row: %w", err)
		}
		if a.AppliedAt, err = parseTimestamp("applied_at", appliedAt); err != nil {
			return err
		}
		if category != "" {
			a.Category = categoryOrUnknown(category)
		}
		rec.Adjustments = append(rec.Adjustments, a)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating adjustment history: %w", err)
	}
	return nil
}

// Save overwrites the stored record. Sessions without an ID are assigned one.
func (r *SQLiteRecordStore) Save(ctx context.Context, rec *domain.Record) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		for _, stmt := range []string{
			`DELETE FROM adjustment_history`,
			`DELETE FROM class_sessions`,
		} {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("clearing ledger: %w", err)
			}
		}

		_, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO teacher_profile (id, name, hourly_rate)
			VALUES ('default', ?, ?)`, rec.Profile.Name, rec.Profile.HourlyRate)
		if err != nil {
			return fmt.Errorf("upserting teacher profile: %w", err)
		}

		seq := 0
		for _, c := range domain.Categories {
			for _, s := range rec.Sessions(c) {
				if err := insertSession(ctx, tx, c, s, seq); err != nil {
					return err
				}
				seq++
			}
		}

		for _, a := range rec.Adjustments {
			_, err := tx.ExecContext(ctx, `INSERT INTO adjustment_history
				(category, session_name, reason, delta_hours, applied_at) VALUES (?, ?, ?, ?, ?)`,
				string(a.Category), a.SessionName, a.Reason, a.DeltaHours, formatTimestamp(a.AppliedAt))
			if err != nil {
				return fmt.Errorf("inserting adjustment history: %w", err)
			}
		}
		return nil
	})
}

func insertSession(ctx context.Context, tx db.DBTX, c domain.Category, s *domain.Session, seq int) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	_, err := tx.ExecContext(ctx, `INSERT INTO class_sessions (id, category, name, starts_at, ends_at, seq)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, string(c), s.Name, formatTimestamp(s.Start), formatTimestamp(s.End), seq)
	if err != nil {
		return fmt.Errorf("inserting class session %q: %w", s.Name, err)
	}
	for _, a := range s.Adjustments {
		_, err := tx.ExecContext(ctx, `INSERT INTO session_adjustments (session_id, reason, delta_hours, applied_at)
			VALUES (?, ?, ?, ?)`, s.ID, a.Reason, a.DeltaHours, formatTimestamp(a.AppliedAt))
		if err != nil {
			return fmt.Errorf("inserting adjustment for %q: %w", s.Name, err)
		}
	}
	return nil
}
