package service

import (
	"fmt"
	"time"

	"github.com/alexanderramin/aula/internal/accounting"
	"github.com/alexanderramin/aula/internal/contract"
	"github.com/alexanderramin/aula/internal/domain"
)

func buildReport(rec *domain.Record, now time.Time) *contract.ReportResponse {
	rate := rec.Profile.HourlyRate
	resp := &contract.ReportResponse{
		GeneratedAt: now,
		TeacherName: rec.Profile.Name,
		HourlyRate:  rate,
	}

	all := accounting.Compare(rec)
	for _, ct := range all {
		section := contract.CategoryReport{
			Category:    ct.Category,
			Label:       ct.Category.Label(),
			Sessions:    make([]contract.SessionLine, 0, ct.Count),
			TotalHours:  ct.Hours,
			TotalIncome: ct.Income,
			Efficiency:  ct.Efficiency(),
		}
		for _, s := range rec.Sessions(ct.Category) {
			section.Sessions = append(section.Sessions, contract.SessionLine{
				Name:        s.Name,
				Start:       s.Start,
				End:         s.End,
				Hours:       s.Hours(),
				Income:      s.Income(rate),
				Adjustments: len(s.Adjustments),
			})
			if s.Hours() <= 0 {
				resp.Warnings = append(resp.Warnings,
					fmt.Sprintf("%s %q ends at or before its start after adjustments", ct.Category, s.Name))
			}
		}
		resp.Categories = append(resp.Categories, section)
	}

	if best, ok := accounting.Best(all); ok {
		resp.BestCategory = best.Category
	}
	return resp
}
