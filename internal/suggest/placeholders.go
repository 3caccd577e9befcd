package suggest

import (
	"fmt"

	"ontology-mapper/internal/profile"
)

// PlaceholderStrategy seeds lookup results for columns showing a pattern.
type PlaceholderStrategy struct {
	Pattern profile.Pattern
	// Purpose names what the looked-up value represents, e.g. "scrap rate".
	Purpose string
	// Value returns the placeholder for the i-th most frequent value.
	Value func(i int) string
}

// progression returns a placeholder func yielding start + i*step.
func progression(start, step float64, format string) func(int) string {
	return func(i int) string {
		return fmt.Sprintf(format, start+float64(i)*step)
	}
}

// DefaultPlaceholders returns the built-in strategies in precedence order.
func DefaultPlaceholders() []PlaceholderStrategy {
	return []PlaceholderStrategy{
		{Pattern: profile.PatternMachineID, Purpose: "scrap rate", Value: progression(2.0, 0.5, "%.1f")},
		{Pattern: profile.PatternMaterialCode, Purpose: "unit cost", Value: progression(100.0, 25.0, "%.2f")},
		{Pattern: profile.PatternDepartment, Purpose: "overhead rate", Value: progression(30.0, 5.0, "%.1f")},
	}
}

// strategyFor returns the first strategy whose pattern the profile shows.
func strategyFor(strategies []PlaceholderStrategy, p *profile.FieldProfile) (PlaceholderStrategy, bool) {
	for _, s := range strategies {
		if s.Value != nil && p.Patterns.Has(s.Pattern) {
			return s, true
		}
	}

	return PlaceholderStrategy{}, false
}
