package suggest

import (
	"sort"

	"ontology-mapper/internal/mapping"
)

// Confidence levels assigned by the heuristics.
const (
	ConfidenceTimeConditional    = 0.9
	ConfidencePatternLookup      = 0.85
	ConfidenceNumericConditional = 0.7
	ConfidencePlainLookup        = 0.65
)

// PatternSuggestion is one proposed rule.
type PatternSuggestion struct {
	Kind       mapping.RuleKind `json:"type"`
	Confidence float64          `json:"confidence"`
	Reason     string           `json:"reason"`
	// FieldAnalysisSummary describes the profile the suggestion came from.
	FieldAnalysisSummary string               `json:"fieldAnalysis"`
	SuggestedRule        mapping.BusinessRule `json:"suggestedRule"`
	// SourceField is the candidate column the suggestion was derived from.
	SourceField string `json:"sourceField"`
}

// SuggestionList is a list of suggestions with ranking helpers.
type SuggestionList []PatternSuggestion

// sortByConfidence orders by confidence descending, keeping input order on ties.
func (l SuggestionList) sortByConfidence() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Confidence > l[j].Confidence
	})
}

// Best returns the best suggestion, or nil if there are none.
func (l SuggestionList) Best() *PatternSuggestion {
	if len(l) == 0 {
		return nil
	}

	return &l[0]
}

// Top returns the top n suggestions.
func (l SuggestionList) Top(n int) SuggestionList {
	if n >= len(l) {
		return l
	}

	return l[:n]
}

// AboveThreshold returns suggestions with confidence at or above threshold.
func (l SuggestionList) AboveThreshold(threshold float64) SuggestionList {
	result := SuggestionList{}

	for _, s := range l {
		if s.Confidence >= threshold {
			result = append(result, s)
		}
	}

	return result
}

// ForField returns the suggestions derived from one candidate column.
func (l SuggestionList) ForField(column string) SuggestionList {
	result := SuggestionList{}

	for _, s := range l {
		if s.SourceField == column {
			result = append(result, s)
		}
	}

	return result
}
