package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aula/internal/contract"
)

type ReportOptions struct {
	Currency string
	// Plain renders unstyled text suitable for pipes and the clipboard.
	Plain bool
}

// FormatReport renders the per-category detail followed by the efficiency
// comparison.
func FormatReport(resp *contract.ReportResponse, opts ReportOptions) string {
	if opts.Plain {
		return formatReportPlain(resp, opts.Currency)
	}

	var b strings.Builder
	for _, section := range resp.Categories {
		b.WriteString(formatCategorySection(section, opts.Currency))
		b.WriteString("\n")
	}
	b.WriteString(formatComparison(resp, opts.Currency))
	return b.String()
}

func formatCategorySection(section contract.CategoryReport, currency string) string {
	var b strings.Builder

	if len(section.Sessions) == 0 {
		b.WriteString(Dim("No sessions scheduled.") + "\n")
	} else {
		headers := []string{"NAME", "START", "END", "HOURS", "INCOME", "ADJ"}
		rows := make([][]string, 0, len(section.Sessions))
		for _, s := range section.Sessions {
			adj := Dim("--")
			if s.Adjustments > 0 {
				adj = StyleYellow.Render(fmt.Sprintf("%d", s.Adjustments))
			}
			rows = append(rows, []string{
				Bold(s.Name),
				FormatTimestamp(s.Start),
				FormatTimestamp(s.End),
				HoursStyled(s.Hours),
				FormatMoney(currency, s.Income),
				adj,
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		Dim("Total hours:"), HoursStyled(section.TotalHours),
		Dim("Total income:"), StyleGreen.Render(FormatMoney(currency, section.TotalIncome)),
	))

	return RenderBox(section.Label, b.String())
}

func formatComparison(resp *contract.ReportResponse, currency string) string {
	var b strings.Builder

	headers := []string{"CATEGORY", "INCOME", "HOURS", "EFFICIENCY"}
	rows := make([][]string, 0, len(resp.Categories))
	for _, section := range resp.Categories {
		eff := FormatMoney(currency, section.Efficiency) + "/h"
		if section.Category == resp.BestCategory {
			eff = StyleGreen.Render(eff + " ★")
		}
		rows = append(rows, []string{
			CategoryBadge(section.Category),
			FormatMoney(currency, section.TotalIncome),
			HoursStyled(section.TotalHours),
			eff,
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
		}
	}

	title := "Efficiency"
	if resp.TeacherName != "" {
		title = fmt.Sprintf("Efficiency · %s @ %s/h", resp.TeacherName, FormatMoney(currency, resp.HourlyRate))
	}
	return RenderBox(title, b.String())
}

func formatReportPlain(resp *contract.ReportResponse, currency string) string {
	var b strings.Builder

	for _, section := range resp.Categories {
		fmt.Fprintf(&b, "\n%s - Detail:\n", section.Label)
		for _, s := range section.Sessions {
			fmt.Fprintf(&b, "  - %s: %s to %s (%s hours) - %s\n",
				s.Name, FormatTimestamp(s.Start), FormatTimestamp(s.End),
				FormatHours(s.Hours), FormatMoney(currency, s.Income))
		}
		fmt.Fprintf(&b, "Total hours: %s hours\n", FormatHours(section.TotalHours))
		fmt.Fprintf(&b, "Total income: %s\n", FormatMoney(currency, section.TotalIncome))
	}

	b.WriteString("\nEfficiency Comparison:\n")
	for _, section := range resp.Categories {
		fmt.Fprintf(&b, "%s: %s - %s hours - Efficiency: %s/hour\n",
			section.Label, FormatMoney(currency, section.TotalIncome),
			FormatHours(section.TotalHours), FormatMoney(currency, section.Efficiency))
	}

	for _, w := range resp.Warnings {
		fmt.Fprintf(&b, "WARNING: %s\n", w)
	}
	return b.String()
}
