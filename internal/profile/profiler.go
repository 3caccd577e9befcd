package profile

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	timeValuePattern = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?$`)
	datePrefix       = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	timePrefix       = regexp.MustCompile(`^\d{1,2}:\d{2}`)

	// Identifier patterns are case-sensitive so lowercase words such as
	// "monday" or "maintenance" do not read as codes.
	machinePrefixed = regexp.MustCompile(`^(MACHINE|MACH|MCH|M)-?[A-Z0-9]+$`)
	lettersDigits   = regexp.MustCompile(`^[A-Z]+-\d+$`)

	materialPrefixed = regexp.MustCompile(`^(PREM|STD|ECON|MAT|MATL)-?[A-Z0-9]+$`)
	materialShort    = regexp.MustCompile(`^[A-Z]{3,4}-\d+$`)
)

// departmentCodes is the recognized department vocabulary.
var departmentCodes = map[string]struct{}{
	"PROD": {}, "ASSY": {}, "QC": {}, "SHIP": {}, "MFG": {}, "ENG": {}, "MAINT": {},
}

// Profile computes the profile of a column's sample values. Empty values are
// dropped before analysis.
func Profile(fieldName string, values []string) *FieldProfile {
	p := &FieldProfile{
		FieldName:    fieldName,
		UniqueValues: []string{},
		ValueTypes:   []ValueType{},
		Frequencies:  make(map[string]int),
	}

	seenTypes := make(map[ValueType]bool)

	for _, raw := range values {
		v := strings.TrimSpace(raw)
		if v == "" {
			continue
		}

		p.TotalCount++

		if p.Frequencies[v] == 0 {
			p.UniqueValues = append(p.UniqueValues, v)
		}

		p.Frequencies[v]++

		t := InferType(v)
		if !seenTypes[t] {
			seenTypes[t] = true
			p.ValueTypes = append(p.ValueTypes, t)
		}

		if n, ok := parseNumber(v); ok {
			p.Numbers = append(p.Numbers, n)
		}

		p.Patterns.Time = p.Patterns.Time || timePrefix.MatchString(v)
		p.Patterns.MachineID = p.Patterns.MachineID || isMachineID(v)
		p.Patterns.MaterialCode = p.Patterns.MaterialCode || isMaterialCode(v)
		p.Patterns.Department = p.Patterns.Department || isDepartmentCode(v)
	}

	p.UniqueCount = len(p.UniqueValues)

	switch len(p.ValueTypes) {
	case 0:
		p.Type = TypeString
		return p
	case 1:
		p.Type = p.ValueTypes[0]
	default:
		p.Type = TypeMixed
	}

	if strings.Contains(strings.ToLower(fieldName), "dept") {
		p.Patterns.Department = true
	}

	p.Patterns.NumericRange = p.Type == TypeNumber && len(p.Numbers) > 0

	return p
}

// InferType infers the primitive type of a single trimmed value.
func InferType(v string) ValueType {
	if _, ok := parseNumber(v); ok {
		return TypeNumber
	}

	if timeValuePattern.MatchString(v) {
		return TypeTime
	}

	if datePrefix.MatchString(v) {
		return TypeDate
	}

	if lv := strings.ToLower(v); lv == "true" || lv == "false" {
		return TypeBoolean
	}

	return TypeString
}

// parseNumber parses v as a finite decimal number.
func parseNumber(v string) (float64, bool) {
	if v == "" || strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
		return 0, false
	}

	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}

	return n, true
}

func isMachineID(v string) bool {
	return machinePrefixed.MatchString(v) || lettersDigits.MatchString(v)
}

func isMaterialCode(v string) bool {
	return materialPrefixed.MatchString(v) || materialShort.MatchString(v)
}

func isDepartmentCode(v string) bool {
	_, ok := departmentCodes[strings.ToUpper(v)]
	return ok
}

// TopValues returns up to n distinct values by descending frequency; ties keep
// first-appearance order.
func (p *FieldProfile) TopValues(n int) []string {
	vals := append([]string(nil), p.UniqueValues...)

	sort.SliceStable(vals, func(i, j int) bool {
		return p.Frequencies[vals[i]] > p.Frequencies[vals[j]]
	})

	if n >= 0 && n < len(vals) {
		vals = vals[:n]
	}

	return vals
}
