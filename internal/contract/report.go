package contract

import (
	"time"

	"github.com/alexanderramin/aula/internal/domain"
)

type SessionLine struct {
	Name        string
	Start       time.Time
	End         time.Time
	Hours       float64
	Income      float64
	Adjustments int
}

type CategoryReport struct {
	Category    domain.Category
	Label       string
	Sessions    []SessionLine
	TotalHours  float64
	TotalIncome float64
	Efficiency  float64
}

// ReportResponse is everything the console report shows. It carries no
// styling and is safe to render more than once.
type ReportResponse struct {
	GeneratedAt time.Time
	TeacherName string
	HourlyRate  float64
	Categories  []CategoryReport
	// BestCategory is empty when no category has worked hours.
	BestCategory domain.Category
	Warnings     []string
}

// Category returns the report section for c, or nil.
func (r *ReportResponse) Category(c domain.Category) *CategoryReport {
	for i := range r.Categories {
		if r.Categories[i].Category == c {
			return &r.Categories[i]
		}
	}
	return nil
}
