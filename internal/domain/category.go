package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Category string

const (
	CategoryCourse      Category = "course"
	CategorySuperModule Category = "super_module"
	CategoryWorkshop    Category = "workshop"
)

// ErrUnknownCategory is returned when a keyword does not name a category.
var ErrUnknownCategory = errors.New("unknown category")

// Categories lists every category in report order.
var Categories = []Category{CategoryCourse, CategorySuperModule, CategoryWorkshop}

// categoryKeywords maps accepted input keywords to categories.
var categoryKeywords = map[string]Category{
	"course":       CategoryCourse,
	"curso":        CategoryCourse,
	"super_module": CategorySuperModule,
	"super-module": CategorySuperModule,
	"supermodule":  CategorySuperModule,
	"supermodulo":  CategorySuperModule,
	"workshop":     CategoryWorkshop,
}

// ParseCategory resolves a user keyword (case-insensitive) to a Category.
func ParseCategory(keyword string) (Category, error) {
	c, ok := categoryKeywords[strings.ToLower(strings.TrimSpace(keyword))]
	if !ok {
		return "", fmt.Errorf("%q: %w", keyword, ErrUnknownCategory)
	}
	return c, nil
}

// DefaultDuration is the length a new session of this category is scheduled for.
func (c Category) DefaultDuration() time.Duration {
	switch c {
	case CategoryCourse:
		return 3*time.Hour + 30*time.Minute
	case CategorySuperModule:
		return 3 * time.Hour
	case CategoryWorkshop:
		return 2 * time.Hour
	default:
		return 0
	}
}

// Label is the display name used in reports.
func (c Category) Label() string {
	switch c {
	case CategoryCourse:
		return "Courses"
	case CategorySuperModule:
		return "Super-modules"
	case CategoryWorkshop:
		return "Workshops"
	default:
		return string(c)
	}
}

func (c Category) Valid() bool {
	return c.DefaultDuration() > 0
}
