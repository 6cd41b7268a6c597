package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexanderramin/aula/internal/domain"
)

// DefaultRecordFile is the record file name used when no path is configured.
const DefaultRecordFile = "professor_dados.json"

// JSONRecordStore keeps the record as an indented JSON document on disk.
type JSONRecordStore struct {
	path string
}

func NewJSONRecordStore(path string) *JSONRecordStore {
	if path == "" {
		path = DefaultRecordFile
	}
	return &JSONRecordStore{path: path}
}

type recordDocument struct {
	TeacherName  string               `json:"teacher_name"`
	HourlyRate   float64              `json:"hourly_rate"`
	Courses      []sessionDocument    `json:"courses"`
	SuperModules []sessionDocument    `json:"super_modules"`
	Workshops    []sessionDocument    `json:"workshops"`
	Adjustments  []adjustmentDocument `json:"adjustments"`
}

type sessionDocument struct {
	ID          string               `json:"id,omitempty"`
	Name        string               `json:"name"`
	Start       string               `json:"start"`
	End         string               `json:"end"`
	Adjustments []adjustmentDocument `json:"adjustments"`
}

type adjustmentDocument struct {
	Reason     string  `json:"reason"`
	DeltaHours float64 `json:"delta_hours"`
	AppliedAt  string  `json:"applied_at"`
	Session    string  `json:"session,omitempty"`
	Category   string  `json:"category,omitempty"`
}

func (s *JSONRecordStore) Load(_ context.Context) (*domain.Record, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("record %s: %w", s.path, ErrNotFound)
		}
		return nil, fmt.Errorf("reading record: %w", err)
	}

	var doc recordDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decoding record %s: %w", s.path, err)
	}
	return doc.toDomain()
}

func (s *JSONRecordStore) Save(_ context.Context, r *domain.Record) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating record directory: %w", err)
		}
	}
	payload, err := json.MarshalIndent(newRecordDocument(r), "", "    ")
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}

func newRecordDocument(r *domain.Record) recordDocument {
	return recordDocument{
		TeacherName:  r.Profile.Name,
		HourlyRate:   r.Profile.HourlyRate,
		Courses:      newSessionDocuments(r.Courses),
		SuperModules: newSessionDocuments(r.SuperModules),
		Workshops:    newSessionDocuments(r.Workshops),
		Adjustments:  newAdjustmentDocuments(r.Adjustments),
	}
}

func newSessionDocuments(sessions []*domain.Session) []sessionDocument {
	docs := make([]sessionDocument, 0, len(sessions))
	for _, s := range sessions {
		docs = append(docs, sessionDocument{
			ID:          s.ID,
			Name:        s.Name,
			Start:       formatTimestamp(s.Start),
			End:         formatTimestamp(s.End),
			Adjustments: newAdjustmentDocuments(s.Adjustments),
		})
	}
	return docs
}

func newAdjustmentDocuments(adjs []domain.Adjustment) []adjustmentDocument {
	docs := make([]adjustmentDocument, 0, len(adjs))
	for _, a := range adjs {
		docs = append(docs, adjustmentDocument{
			Reason:     a.Reason,
			DeltaHours: a.DeltaHours,
			AppliedAt:  formatTimestamp(a.AppliedAt),
			Session:    a.SessionName,
			Category:   string(a.Category),
		})
	}
	return docs
}

func (d recordDocument) toDomain() (*domain.Record, error) {
	r := domain.NewRecord()
	r.Profile = domain.TeacherProfile{Name: d.TeacherName, HourlyRate: d.HourlyRate}

	var err error
	if r.Courses, err = sessionsToDomain(d.Courses); err != nil {
		return nil, fmt.Errorf("courses: %w", err)
	}
	if r.SuperModules, err = sessionsToDomain(d.SuperModules); err != nil {
		return nil, fmt.Errorf("super_modules: %w", err)
	}
	if r.Workshops, err = sessionsToDomain(d.Workshops); err != nil {
		return nil, fmt.Errorf("workshops: %w", err)
	}
	if r.Adjustments, err = adjustmentsToDomain(d.Adjustments); err != nil {
		return nil, fmt.Errorf("adjustments: %w", err)
	}
	return r, nil
}

func sessionsToDomain(docs []sessionDocument) ([]*domain.Session, error) {
	sessions := make([]*domain.Session, 0, len(docs))
	for _, doc := range docs {
		start, err := parseTimestamp("start", doc.Start)
		if err != nil {
			return nil, fmt.Errorf("session %q: %w", doc.Name, err)
		}
		end, err := parseTimestamp("end", doc.End)
		if err != nil {
			return nil, fmt.Errorf("session %q: %w", doc.Name, err)
		}
		adjs, err := adjustmentsToDomain(doc.Adjustments)
		if err != nil {
			return nil, fmt.Errorf("session %q: %w", doc.Name, err)
		}
		sessions = append(sessions, &domain.Session{
			ID:          doc.ID,
			Name:        doc.Name,
			Start:       start,
			End:         end,
			Adjustments: adjs,
		})
	}
	return sessions, nil
}

func adjustmentsToDomain(docs []adjustmentDocument) ([]domain.Adjustment, error) {
	adjs := make([]domain.Adjustment, 0, len(docs))
	for _, doc := range docs {
		appliedAt, err := parseTimestamp("applied_at", doc.AppliedAt)
		if err != nil {
			return nil, err
		}
		adj := domain.Adjustment{
			Reason:      doc.Reason,
			DeltaHours:  doc.DeltaHours,
			AppliedAt:   appliedAt,
			SessionName: doc.Session,
		}
		if doc.Category != "" {
			adj.Category = categoryOrUnknown(doc.Category)
		}
		adjs = append(adjs, adj)
	}
	return adjs, nil
}
