package match

import (
	"slices"
	"sort"

	"ontology-mapper/internal/mapping"
)

// Confidence thresholds for pre-filling a column binding.
const (
	// DefaultMinScore is the minimum score for accepting a column.
	DefaultMinScore = 0.7
	// DefaultMinGap is the minimum score gap between the top two columns.
	DefaultMinGap = 0.1
	// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
	DefaultAmbiguityThreshold = 0.1
)

const (
	nameWeight  = 0.7
	tokenWeight = 0.3

	maxContenders = 3
)

// ColumnCandidate is a sample column considered for an ontology field.
type ColumnCandidate struct {
	Column string
	// NameScore is the best normalized similarity against the property or
	// display name.
	NameScore float64
	// TokenScore is the token overlap against the same name.
	TokenScore float64
	// Score combines both, higher is better.
	Score float64
	// MatchedName is the field name that produced NameScore.
	MatchedName string
}

// ColumnList is a ranked list of column candidates.
type ColumnList []ColumnCandidate

// RankColumns scores every column against the field's property and display
// name. Results are sorted by score descending, then by column name.
func RankColumns(field mapping.FieldMapping, columns []string) ColumnList {
	names := fieldNames(field)
	if len(names) == 0 {
		return ColumnList{}
	}

	candidates := make(ColumnList, 0, len(columns))

	for _, col := range columns {
		if col == "" {
			continue
		}

		best := ColumnCandidate{Column: col}
		for _, name := range names {
			c := scoreColumn(col, name)
			if c.Score > best.Score {
				best = c
			}
		}

		candidates = append(candidates, best)
	}

	sort.Sort(candidates)

	return candidates
}

// SuggestColumns returns the confident column for every mapping whose
// csvColumn is empty or not among columns, keyed by field id. Columns already
// bound by other mappings are not offered.
func SuggestColumns(mappings []mapping.FieldMapping, columns []string) map[string]ColumnCandidate {
	free := FreeColumns(mappings, columns)
	out := make(map[string]ColumnCandidate)

	for _, m := range mappings {
		if !NeedsColumn(m, columns) {
			continue
		}

		if best := RankColumns(m, free).HighConfidence(DefaultMinScore, DefaultMinGap); best != nil {
			out[m.FieldID()] = *best
		}
	}

	return out
}

// FreeColumns returns the columns no mapping is bound to, in input order.
func FreeColumns(mappings []mapping.FieldMapping, columns []string) []string {
	bound := make(map[string]struct{}, len(mappings))
	for _, m := range mappings {
		if m.CSVColumn != "" {
			bound[m.CSVColumn] = struct{}{}
		}
	}

	free := make([]string, 0, len(columns))
	for _, c := range columns {
		if _, ok := bound[c]; !ok {
			free = append(free, c)
		}
	}

	return free
}

// NeedsColumn reports whether m has identity but its csvColumn is empty or
// not among columns.
func NeedsColumn(m mapping.FieldMapping, columns []string) bool {
	return m.HasIdentity() && (m.CSVColumn == "" || !slices.Contains(columns, m.CSVColumn))
}

func fieldNames(field mapping.FieldMapping) []string {
	var names []string

	if field.OntologyProperty != "" {
		names = append(names, field.OntologyProperty)
	}

	if field.DisplayName != "" && field.DisplayName != field.OntologyProperty {
		names = append(names, field.DisplayName)
	}

	return names
}

func scoreColumn(column, name string) ColumnCandidate {
	nameScore := HeaderSimilarity(column, name)
	tokenScore := TokenOverlap(column, name)

	return ColumnCandidate{
		Column:      column,
		NameScore:   nameScore,
		TokenScore:  tokenScore,
		Score:       nameScore*nameWeight + tokenScore*tokenWeight,
		MatchedName: name,
	}
}

// Len implements sort.Interface.
func (l ColumnList) Len() int { return len(l) }

// Swap implements sort.Interface.
func (l ColumnList) Swap(i, j int) { l[i], l[j] = l[j], l[i] }

// Less implements sort.Interface.
func (l ColumnList) Less(i, j int) bool {
	if l[i].Score != l[j].Score {
		return l[i].Score > l[j].Score
	}

	return l[i].Column < l[j].Column
}

// Top returns the top n candidates.
func (l ColumnList) Top(n int) ColumnList {
	if n >= len(l) {
		return l
	}

	return l[:n]
}

// Best returns the best candidate, or nil.
func (l ColumnList) Best() *ColumnCandidate {
	if len(l) == 0 {
		return nil
	}

	return &l[0]
}

// IsAmbiguous reports whether the top two candidates are within threshold.
func (l ColumnList) IsAmbiguous(threshold float64) bool {
	if len(l) < 2 {
		return false
	}

	return l[0].Score-l[1].Score < threshold
}

// AboveThreshold returns candidates scoring at least threshold.
func (l ColumnList) AboveThreshold(threshold float64) ColumnList {
	result := ColumnList{}

	for _, c := range l {
		if c.Score >= threshold {
			result = append(result, c)
		}
	}

	return result
}

// Contenders returns the candidates within threshold of the best one when
// the best reaches minScore and the list is ambiguous, at most maxContenders
// of them. It returns nil when there is a clear winner or no acceptable one.
func (l ColumnList) Contenders(minScore, threshold float64) ColumnList {
	best := l.Best()
	if best == nil || best.Score < minScore || !l.IsAmbiguous(threshold) {
		return nil
	}

	return l.AboveThreshold(best.Score - threshold).Top(maxContenders)
}

// HighConfidence returns the best candidate when it reaches minScore and leads
// the runner-up by at least minGap; nil otherwise.
func (l ColumnList) HighConfidence(minScore, minGap float64) *ColumnCandidate {
	best := l.Best()
	if best == nil || best.Score < minScore {
		return nil
	}

	if len(l) > 1 && l[0].Score-l[1].Score < minGap {
		return nil
	}

	return best
}
