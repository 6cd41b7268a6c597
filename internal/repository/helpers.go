package repository

import (
	"fmt"
	"time"

	"github.com/alexanderramin/aula/internal/domain"
)

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(domain.TimestampLayout)
}

// parseTimestamp parses a stored timestamp, naming the field on failure.
func parseTimestamp(field, s string) (time.Time, error) {
	t, err := time.Parse(domain.TimestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", field, err)
	}
	return t, nil
}

// categoryOrUnknown keeps history entries readable even if the stored
// category no longer parses.
func categoryOrUnknown(s string) domain.Category {
	c, err := domain.ParseCategory(s)
	if err != nil {
		return domain.Category(s)
	}
	return c
}
