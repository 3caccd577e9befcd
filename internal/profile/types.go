package profile

import (
	"strings"

	"ontology-mapper/internal/common"
)

// ValueType is the inferred primitive type of a value or field.
type ValueType string

const (
	TypeNumber  ValueType = "number"
	TypeTime    ValueType = "time"
	TypeDate    ValueType = "date"
	TypeBoolean ValueType = "boolean"
	TypeString  ValueType = "string"
	// TypeMixed is assigned to fields whose values infer to several types.
	TypeMixed ValueType = "mixed"
)

// Pattern is a structural pattern recognized in sample values.
type Pattern int

const (
	PatternTime Pattern = iota + 1
	PatternMachineID
	PatternMaterialCode
	PatternDepartment
	PatternNumericRange
)

// String returns a human-readable pattern name.
func (p Pattern) String() string {
	switch p {
	case PatternTime:
		return "time"
	case PatternMachineID:
		return "machine ID"
	case PatternMaterialCode:
		return "material code"
	case PatternDepartment:
		return "department code"
	case PatternNumericRange:
		return "numeric range"
	default:
		return common.UnknownStr
	}
}

// Patterns holds the structural flags of a profile.
type Patterns struct {
	Time         bool `json:"hasTimePattern"`
	MachineID    bool `json:"hasMachineIdPattern"`
	MaterialCode bool `json:"hasMaterialCodePattern"`
	Department   bool `json:"hasDepartmentPattern"`
	NumericRange bool `json:"hasNumericRange"`
}

// Has reports whether the flag for p is set.
func (ps Patterns) Has(p Pattern) bool {
	switch p {
	case PatternTime:
		return ps.Time
	case PatternMachineID:
		return ps.MachineID
	case PatternMaterialCode:
		return ps.MaterialCode
	case PatternDepartment:
		return ps.Department
	case PatternNumericRange:
		return ps.NumericRange
	default:
		return false
	}
}

// List returns the set flags in declaration order.
func (ps Patterns) List() []Pattern {
	var out []Pattern

	for _, p := range []Pattern{PatternTime, PatternMachineID, PatternMaterialCode, PatternDepartment, PatternNumericRange} {
		if ps.Has(p) {
			out = append(out, p)
		}
	}

	return out
}

// FieldProfile summarizes one column's sample values.
type FieldProfile struct {
	FieldName string `json:"fieldName"`
	// UniqueValues lists distinct values in first-appearance order.
	UniqueValues []string `json:"uniqueValues"`
	UniqueCount  int      `json:"uniqueCount"`
	// TotalCount counts non-empty values.
	TotalCount int       `json:"totalCount"`
	Type       ValueType `json:"type"`
	// ValueTypes lists the distinct per-value types, first-appearance order.
	ValueTypes []ValueType `json:"valueTypes"`
	Patterns   Patterns    `json:"patterns"`
	// Frequencies counts occurrences per distinct value.
	Frequencies map[string]int `json:"frequencies"`
	// Numbers holds every value that parses as a finite number.
	Numbers []float64 `json:"-"`
}

// CardinalityRatio returns UniqueCount / TotalCount, or 0 for empty profiles.
func (p *FieldProfile) CardinalityRatio() float64 {
	if p.TotalCount == 0 {
		return 0
	}

	return float64(p.UniqueCount) / float64(p.TotalCount)
}

// Mean returns the arithmetic mean of the numeric values and false if there are none.
func (p *FieldProfile) Mean() (float64, bool) {
	if len(p.Numbers) == 0 {
		return 0, false
	}

	var sum float64
	for _, n := range p.Numbers {
		sum += n
	}

	return sum / float64(len(p.Numbers)), true
}

// Summary renders a one-line description of the profile.
func (p *FieldProfile) Summary() string {
	var b strings.Builder

	b.WriteString(p.FieldName)
	b.WriteString(": ")
	b.WriteString(pluralize(p.UniqueCount, "unique value"))
	b.WriteString(" in ")
	b.WriteString(pluralize(p.TotalCount, "sample"))
	b.WriteString(", type ")
	b.WriteString(string(p.Type))

	if pats := p.Patterns.List(); len(pats) > 0 {
		names := make([]string, len(pats))
		for i, pat := range pats {
			names[i] = pat.String()
		}

		b.WriteString(", patterns: ")
		b.WriteString(strings.Join(names, ", "))
	}

	return b.String()
}
