package domain

import (
	"math"
	"strings"
	"time"
)

// TimestampLayout is the wall-clock format used for input and persistence.
// Times carry no zone and are held as UTC.
const TimestampLayout = "2006-01-02 15:04"

// ParseTimestamp parses a "YYYY-MM-DD HH:MM" string.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, strings.TrimSpace(s))
}

// Interval is a half-open span of wall-clock time.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval returns the interval starting at start and lasting d.
func NewInterval(start time.Time, d time.Duration) Interval {
	return Interval{Start: start, End: start.Add(d)}
}

// Overlaps reports whether the two intervals share any instant.
// Touching endpoints do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Session is one scheduled class. Its category is determined by the
// Record collection that holds it.
type Session struct {
	ID          string
	Name        string
	Start       time.Time
	End         time.Time
	Adjustments []Adjustment
}

// Adjustment is a manual correction to a session's end time.
type Adjustment struct {
	Reason     string
	DeltaHours float64
	AppliedAt  time.Time

	// Set only on entries of the record-wide history.
	SessionName string
	Category    Category
}

func (s *Session) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}

// Hours returns the session length in fractional hours. Negative when an
// adjustment moved the end before the start.
func (s *Session) Hours() float64 {
	return s.End.Sub(s.Start).Seconds() / 3600
}

func (s *Session) Income(hourlyRate float64) float64 {
	return s.Hours() * hourlyRate
}

// ApplyAdjustment moves End by deltaHours and appends the correction.
// No check is made that End stays after Start.
func (s *Session) ApplyAdjustment(deltaHours float64, reason string, at time.Time) Adjustment {
	s.End = s.End.Add(HoursToDuration(deltaHours))
	adj := Adjustment{Reason: reason, DeltaHours: deltaHours, AppliedAt: at}
	s.Adjustments = append(s.Adjustments, adj)
	return adj
}

// HoursToDuration converts fractional hours, rounded to the nearest nanosecond.
func HoursToDuration(h float64) time.Duration {
	return time.Duration(math.Round(h * float64(time.Hour)))
}
