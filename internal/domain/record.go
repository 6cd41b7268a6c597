package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// TeacherProfile is set once and reused across runs.
type TeacherProfile struct {
	Name       string
	HourlyRate float64
}

// Complete reports whether both fields have been provided.
func (p TeacherProfile) Complete() bool {
	return p.Name != "" && p.HourlyRate != 0
}

// Record is the whole persisted aggregate.
type Record struct {
	Profile      TeacherProfile
	Courses      []*Session
	SuperModules []*Session
	Workshops    []*Session
	Adjustments  []Adjustment
}

// NewRecord returns the empty record used when nothing has been saved yet.
func NewRecord() *Record {
	return &Record{
		Courses:      []*Session{},
		SuperModules: []*Session{},
		Workshops:    []*Session{},
		Adjustments:  []Adjustment{},
	}
}

// Sessions returns the collection holding sessions of category c.
func (r *Record) Sessions(c Category) []*Session {
	switch c {
	case CategoryCourse:
		return r.Courses
	case CategorySuperModule:
		return r.SuperModules
	case CategoryWorkshop:
		return r.Workshops
	default:
		return nil
	}
}

// All returns every session regardless of category.
func (r *Record) All() []*Session {
	all := make([]*Session, 0, len(r.Courses)+len(r.SuperModules)+len(r.Workshops))
	all = append(all, r.Courses...)
	all = append(all, r.SuperModules...)
	return append(all, r.Workshops...)
}

// Add appends s to the collection for c.
func (r *Record) Add(c Category, s *Session) error {
	switch c {
	case CategoryCourse:
		r.Courses = append(r.Courses, s)
	case CategorySuperModule:
		r.SuperModules = append(r.SuperModules, s)
	case CategoryWorkshop:
		r.Workshops = append(r.Workshops, s)
	default:
		return fmt.Errorf("%q: %w", c, ErrUnknownCategory)
	}
	return nil
}

// Find returns the first session named name in category c.
func (r *Record) Find(c Category, name string) (*Session, error) {
	for _, s := range r.Sessions(c) {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%s %q: %w", c, name, ErrSessionNotFound)
}

// ApplyAdjustment corrects the first session named name in category c and
// records the correction both on the session and in the record history.
func (r *Record) ApplyAdjustment(c Category, name string, deltaHours float64, reason string, at time.Time) (*Session, error) {
	s, err := r.Find(c, name)
	if err != nil {
		return nil, err
	}
	adj := s.ApplyAdjustment(deltaHours, reason, at)
	adj.SessionName = s.Name
	adj.Category = c
	r.Adjustments = append(r.Adjustments, adj)
	return s, nil
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	return &Record{
		Profile:      r.Profile,
		Courses:      cloneSessions(r.Courses),
		SuperModules: cloneSessions(r.SuperModules),
		Workshops:    cloneSessions(r.Workshops),
		Adjustments:  append([]Adjustment{}, r.Adjustments...),
	}
}

func cloneSessions(in []*Session) []*Session {
	out := make([]*Session, 0, len(in))
	for _, s := range in {
		c := *s
		c.Adjustments = append([]Adjustment{}, s.Adjustments...)
		out = append(out, &c)
	}
	return out
}
