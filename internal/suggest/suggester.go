package suggest

import (
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"

	"ontology-mapper/internal/common"
	"ontology-mapper/internal/mapping"
	"ontology-mapper/internal/profile"
	"ontology-mapper/internal/sample"
)

// Config tunes the heuristics.
type Config struct {
	// MaxLookupEntries caps the size of a suggested lookup table.
	MaxLookupEntries int
	// MinUnique and MaxUnique bound the distinct values of a lookup column.
	MinUnique int
	MaxUnique int
	// MaxCardinalityRatio rejects identifier-like columns.
	MaxCardinalityRatio float64
	// MinConfidence drops suggestions below it.
	MinConfidence float64
	// Placeholders seed lookup results, first matching pattern wins.
	Placeholders []PlaceholderStrategy
}

// DefaultConfig returns the default heuristic settings.
func DefaultConfig() Config {
	return Config{
		MaxLookupEntries:    10,
		MinUnique:           2,
		MaxUnique:           20,
		MaxCardinalityRatio: 0.8,
		MinConfidence:       0,
		Placeholders:        DefaultPlaceholders(),
	}
}

// Suggester proposes rules from sample rows.
type Suggester struct {
	config Config
	logger *zap.Logger
}

// NewSuggester returns a Suggester. A nil logger disables logging.
func NewSuggester(config Config, logger *zap.Logger) *Suggester {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Suggester{
		config: config,
		logger: logger.Named("suggest"),
	}
}

// Suggest runs the default suggester.
func Suggest(targetField string, candidateFields []string, rows []sample.Row) SuggestionList {
	return NewSuggester(DefaultConfig(), nil).Suggest(targetField, candidateFields, rows)
}

// BestSuggestion returns the highest-confidence default suggestion, or nil.
func BestSuggestion(targetField string, candidateFields []string, rows []sample.Row) *PatternSuggestion {
	return Suggest(targetField, candidateFields, rows).Best()
}

// Suggest profiles each candidate column in rows and returns every lookup and
// conditional suggestion, highest confidence first. The target itself is never
// a candidate. Empty rows or candidates yield an empty list.
func (s *Suggester) Suggest(targetField string, candidateFields []string, rows []sample.Row) SuggestionList {
	out := SuggestionList{}
	if len(rows) == 0 || len(candidateFields) == 0 {
		return out
	}

	for _, field := range common.Dedupe(candidateFields) {
		if field == "" || field == targetField {
			continue
		}

		p := profile.Profile(field, sample.Values(rows, field))

		if sug, ok := s.lookupSuggestion(p); ok {
			out = append(out, sug)
		}

		if sug, ok := s.conditionalSuggestion(p); ok {
			out = append(out, sug)
		}

		s.logger.Debug("Profiled candidate field",
			zap.String("target", targetField),
			zap.String("field", field),
			zap.Int("unique", p.UniqueCount),
			zap.Int("total", p.TotalCount),
			zap.String("type", string(p.Type)))
	}

	if s.config.MinConfidence > 0 {
		out = out.AboveThreshold(s.config.MinConfidence)
	}

	out.sortByConfidence()

	s.logger.Debug("Suggested rules",
		zap.String("target", targetField),
		zap.Int("candidates", len(candidateFields)),
		zap.Int("suggestions", len(out)))

	return out
}

// lookupSuggestion proposes a lookup table for low-cardinality columns.
func (s *Suggester) lookupSuggestion(p *profile.FieldProfile) (PatternSuggestion, bool) {
	if p.UniqueCount < s.config.MinUnique || p.UniqueCount > s.config.MaxUnique {
		return PatternSuggestion{}, false
	}

	if p.CardinalityRatio() > s.config.MaxCardinalityRatio {
		return PatternSuggestion{}, false
	}

	strategy, hasPattern := strategyFor(s.config.Placeholders, p)

	table := make(map[string]string)
	for i, v := range p.TopValues(s.config.MaxLookupEntries) {
		if hasPattern {
			table[v] = strategy.Value(i)
		} else {
			table[v] = ""
		}
	}

	confidence := ConfidencePlainLookup
	reason := fmt.Sprintf("Column %q has %d unique values with no recognized pattern; "+
		"a lookup table can map each value, results need to be filled in manually.",
		p.FieldName, p.UniqueCount)

	switch pats := p.Patterns.List(); {
	case hasPattern:
		confidence = ConfidencePatternLookup
		reason = fmt.Sprintf("Column %q has %d unique values matching the %s pattern; "+
			"a lookup table can assign each one a %s.",
			p.FieldName, p.UniqueCount, strategy.Pattern, strategy.Purpose)
	case len(pats) > 0:
		confidence = ConfidencePatternLookup
		reason = fmt.Sprintf("Column %q has %d unique values matching the %s pattern; "+
			"a lookup table can map each value, results need to be filled in manually.",
			p.FieldName, p.UniqueCount, pats[0])
	}

	return PatternSuggestion{
		Kind:                 mapping.RuleLookup,
		Confidence:           confidence,
		Reason:               reason,
		FieldAnalysisSummary: p.Summary(),
		SuggestedRule: &mapping.LookupConfig{
			SourceField:  p.FieldName,
			LookupTable:  table,
			DefaultValue: "",
		},
		SourceField: p.FieldName,
	}, true
}

// conditionalSuggestion proposes a premium rule for time or numeric columns.
// The time pattern takes priority.
func (s *Suggester) conditionalSuggestion(p *profile.FieldProfile) (PatternSuggestion, bool) {
	switch {
	case p.Patterns.Time:
		return PatternSuggestion{
			Kind:       mapping.RuleConditional,
			Confidence: ConfidenceTimeConditional,
			Reason: fmt.Sprintf("Column %q holds times of day; shifts starting from 18:00 "+
				"or before 06:00 usually carry a night premium.", p.FieldName),
			FieldAnalysisSummary: p.Summary(),
			SuggestedRule:        nightShiftRule(p.FieldName),
			SourceField:          p.FieldName,
		}, true

	case p.Patterns.NumericRange:
		mean, ok := p.Mean()
		if !ok {
			return PatternSuggestion{}, false
		}

		threshold := formatThreshold(mean)

		return PatternSuggestion{
			Kind:       mapping.RuleConditional,
			Confidence: ConfidenceNumericConditional,
			Reason: fmt.Sprintf("Column %q is numeric with an average of %.2f; "+
				"values above %s can carry a premium.", p.FieldName, mean, threshold),
			FieldAnalysisSummary: p.Summary(),
			SuggestedRule:        aboveAverageRule(p.FieldName, threshold),
			SourceField:          p.FieldName,
		}, true

	default:
		return PatternSuggestion{}, false
	}
}

func nightShiftRule(column string) *mapping.ConditionalConfig {
	return &mapping.ConditionalConfig{
		Conditions: []mapping.Condition{
			{Field: column, Operator: mapping.OpGreaterEqual, Value: "18:00", Result: "1.5", Label: "Night shift (evening)"},
			{Field: column, Operator: mapping.OpLess, Value: "06:00", Result: "1.5", Label: "Night shift (early morning)"},
		},
		DefaultValue: "1.0",
	}
}

// formatThreshold renders mean rounded to a whole number, without the
// overflow an integer conversion has for large means.
func formatThreshold(mean float64) string {
	rounded := math.Round(mean)
	if rounded == 0 {
		rounded = 0 // drop the sign of -0
	}

	return strconv.FormatFloat(rounded, 'f', 0, 64)
}

func aboveAverageRule(column, threshold string) *mapping.ConditionalConfig {
	return &mapping.ConditionalConfig{
		Conditions: []mapping.Condition{
			{Field: column, Operator: mapping.OpGreater, Value: threshold, Result: "1.5", Label: "Above average"},
		},
		DefaultValue: "1.0",
	}
}
