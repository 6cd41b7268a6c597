package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/aula/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// aulaHuhTheme returns a huh theme using the Gruvbox palette.
func aulaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardProfile builds the first-run form. Only the missing fields are asked.
func wizardProfile(askName, askRate bool, name, rate *string) *huh.Form {
	var fields []huh.Field
	if askName {
		fields = append(fields, huh.NewInput().
			Title("Teacher name").
			Value(name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("name is required")
				}
				return nil
			}))
	}
	if askRate {
		fields = append(fields, huh.NewInput().
			Title("Hourly rate").
			Description("Amount earned per class hour").
			Placeholder("120").
			Value(rate).
			Validate(validateRate))
	}
	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(aulaHuhTheme()).
		WithShowHelp(false)
}

func validateRate(s string) error {
	_, err := parseRate(s)
	return err
}

func parseRate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", ".")), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hourly rate %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("hourly rate must not be negative")
	}
	return v, nil
}
