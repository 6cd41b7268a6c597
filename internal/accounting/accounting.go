package accounting

import (
	"github.com/alexanderramin/aula/internal/domain"
)

// Totals is the aggregate of a set of sessions at one hourly rate.
type Totals struct {
	Count  int
	Hours  float64
	Income float64
}

// Add returns the pairwise sum of two totals.
func (t Totals) Add(o Totals) Totals {
	return Totals{Count: t.Count + o.Count, Hours: t.Hours + o.Hours, Income: t.Income + o.Income}
}

// Efficiency is income per worked hour for these totals.
func (t Totals) Efficiency() float64 {
	return Efficiency(t.Income, t.Hours)
}

type CategoryTotals struct {
	Category domain.Category
	Totals
}

// HasConflict reports whether candidate overlaps any of the existing sessions.
// Sessions are unordered; the first match wins.
func HasConflict(existing []*domain.Session, candidate domain.Interval) bool {
	for _, s := range existing {
		if s.Interval().Overlaps(candidate) {
			return true
		}
	}
	return false
}

// Aggregate sums hours and income across sessions.
func Aggregate(sessions []*domain.Session, hourlyRate float64) Totals {
	var t Totals
	for _, s := range sessions {
		h := s.Hours()
		t.Count++
		t.Hours += h
		t.Income += h * hourlyRate
	}
	return t
}

// Efficiency returns income/hours, or 0 when no hours were worked.
func Efficiency(income, hours float64) float64 {
	if hours > 0 {
		return income / hours
	}
	return 0
}

// Compare aggregates each category of the record in report order.
func Compare(r *domain.Record) []CategoryTotals {
	out := make([]CategoryTotals, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		out = append(out, CategoryTotals{
			Category: c,
			Totals:   Aggregate(r.Sessions(c), r.Profile.HourlyRate),
		})
	}
	return out
}

// Best returns the category with the highest efficiency. ok is false when
// no category has any worked hours.
func Best(all []CategoryTotals) (best CategoryTotals, ok bool) {
	for _, ct := range all {
		if ct.Hours <= 0 {
			continue
		}
		if !ok || ct.Efficiency() > best.Efficiency() {
			best, ok = ct, true
		}
	}
	return best, ok
}
