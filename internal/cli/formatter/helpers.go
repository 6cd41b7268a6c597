package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/aula/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatTimestamp renders t in the ledger's input layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(domain.TimestampLayout)
}

// FormatHours renders fractional hours with two decimals.
func FormatHours(h float64) string {
	return decimal.NewFromFloat(h).StringFixed(2)
}

// HoursStyled renders hours, in red when the duration is not positive.
func HoursStyled(h float64) string {
	text := FormatHours(h) + "h"
	if h <= 0 {
		return StyleRed.Render(text)
	}
	return StyleFg.Render(text)
}

// FormatMoney renders an amount rounded to cents, prefixed by currency.
func FormatMoney(currency string, amount float64) string {
	v := decimal.NewFromFloat(amount).StringFixed(2)
	if currency == "" {
		return v
	}
	return fmt.Sprintf("%s %s", currency, v)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
