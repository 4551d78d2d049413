// Package install estimates installation durations for part categories.
package install

import "strings"

// DefaultMinutes is used when no table entry or keyword matches.
const DefaultMinutes = 45

// Provider answers installation duration queries.
type Provider interface {
	// MinutesFor returns the estimated installation time for a category.
	MinutesFor(category string) int
}

// Times is a substring-tolerant lookup table from category to minutes.
type Times struct {
	table map[string]int
}

// NewTimes builds a Provider from a category→minutes table. A nil table
// falls back entirely to the keyword defaults.
func NewTimes(table map[string]int) *Times {
	if table == nil {
		table = map[string]int{}
	}
	return &Times{table: table}
}

// DefaultTimes mirrors the standard service durations.
func DefaultTimes() *Times {
	return NewTimes(map[string]int{
		"Battery":     30,
		"Tires":       45,
		"Brakes":      90,
		"Engine Oil":  30,
		"Filters":     25,
		"Spark Plugs": 60,
		"Suspension":  120,
		"Lighting":    20,
		"Accessories": 35,
		"Electrical":  50,
	})
}

// MinutesFor matches the category against the table in either substring
// direction, then falls back to keyword defaults, then to DefaultMinutes.
func (t *Times) MinutesFor(category string) int {
	catLower := strings.ToLower(strings.TrimSpace(category))
	if catLower == "" {
		return DefaultMinutes
	}

	for name, minutes := range t.table {
		nameLower := strings.ToLower(name)
		if strings.Contains(catLower, nameLower) || strings.Contains(nameLower, catLower) {
			return minutes
		}
	}

	switch {
	case strings.Contains(catLower, "battery"):
		return 30
	case strings.Contains(catLower, "tire"):
		return 45
	case strings.Contains(catLower, "brake"):
		return 90
	case strings.Contains(catLower, "light"):
		return 20
	default:
		return DefaultMinutes
	}
}

var _ Provider = (*Times)(nil)
