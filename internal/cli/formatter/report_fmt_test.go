package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/aula/internal/contract"
	"github.com/alexanderramin/aula/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleReport() *contract.ReportResponse {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return &contract.ReportResponse{
		TeacherName: "Ana Souza",
		HourlyRate:  100,
		Categories: []contract.CategoryReport{
			{
				Category: domain.CategoryCourse,
				Label:    "Courses",
				Sessions: []contract.SessionLine{{
					Name: "Go 101", Start: start, End: start.Add(210 * time.Minute),
					Hours: 3.5, Income: 350, Adjustments: 1,
				}},
				TotalHours:  3.5,
				TotalIncome: 350,
				Efficiency:  100,
			},
			{Category: domain.CategorySuperModule, Label: "Super-modules"},
			{Category: domain.CategoryWorkshop, Label: "Workshops"},
		},
		BestCategory: domain.CategoryCourse,
	}
}

func TestFormatReport_Plain(t *testing.T) {
	out := FormatReport(sampleReport(), ReportOptions{Currency: "R$", Plain: true})

	assert.Contains(t, out, "Courses - Detail:")
	assert.Contains(t, out, "  - Go 101: 2024-01-01 09:00 to 2024-01-01 12:30 (3.50 hours) - R$ 350.00")
	assert.Contains(t, out, "Total hours: 3.50 hours")
	assert.Contains(t, out, "Total income: R$ 350.00")
	assert.Contains(t, out, "Efficiency Comparison:")
	assert.Contains(t, out, "Courses: R$ 350.00 - 3.50 hours - Efficiency: R$ 100.00/hour")
	assert.Contains(t, out, "Workshops: R$ 0.00 - 0.00 hours - Efficiency: R$ 0.00/hour")
}

func TestFormatReport_Styled(t *testing.T) {
	resp := sampleReport()
	resp.Warnings = []string{`workshop "Intro" ends at or before its start after adjustments`}

	out := FormatReport(resp, ReportOptions{Currency: "R$"})

	assert.Contains(t, out, "COURSES")
	assert.Contains(t, out, "Go 101")
	assert.Contains(t, out, "R$ 350.00")
	assert.Contains(t, out, "No sessions scheduled.")
	assert.Contains(t, out, "★")
	assert.Contains(t, out, "WARNING:")
}
