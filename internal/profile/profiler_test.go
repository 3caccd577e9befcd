package profile

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferType(t *testing.T) {
	tests := []struct {
		value    string
		expected ValueType
	}{
		{"42", TypeNumber},
		{"-3.5", TypeNumber},
		{"1e3", TypeNumber},
		{"08:00", TypeTime},
		{"8:05", TypeTime},
		{"14:30:15", TypeTime},
		{"123:00", TypeString},
		{"2024-03-01", TypeDate},
		{"2024-03-01T08:00:00Z", TypeDate},
		{"true", TypeBoolean},
		{"FALSE", TypeBoolean},
		{"MACHINE-A", TypeString},
		{"NaN", TypeString},
		{"Inf", TypeString},
		{"0x1p-2", TypeString},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferType(tt.value))
		})
	}
}

func TestProfile_Empty(t *testing.T) {
	for _, values := range [][]string{nil, {}, {"", "  ", "\t"}} {
		p := Profile("dept_code", values)

		assert.Equal(t, TypeString, p.Type)
		assert.Zero(t, p.TotalCount)
		assert.Zero(t, p.UniqueCount)
		assert.Equal(t, Patterns{}, p.Patterns, "no flags without values, even for a dept field")
		assert.Zero(t, p.CardinalityRatio())
	}
}

func TestProfile_TimeValues(t *testing.T) {
	p := Profile("shift_start", []string{"08:00", "14:30", "20:15"})

	assert.Equal(t, TypeTime, p.Type)
	assert.Equal(t, []ValueType{TypeTime}, p.ValueTypes)
	assert.True(t, p.Patterns.Time)
	assert.False(t, p.Patterns.NumericRange)
	assert.Equal(t, 3, p.UniqueCount)
	assert.Equal(t, 3, p.TotalCount)
}

func TestProfile_MachineIDs(t *testing.T) {
	p := Profile("machine", []string{"MACHINE-A", "MACHINE-B", "MACHINE-A", "MACHINE-C"})

	assert.Equal(t, TypeString, p.Type)
	assert.True(t, p.Patterns.MachineID)
	assert.Equal(t, 3, p.UniqueCount)
	assert.Equal(t, 4, p.TotalCount)
	assert.InDelta(t, 0.75, p.CardinalityRatio(), 1e-9)
	assert.Equal(t, []string{"MACHINE-A", "MACHINE-B", "MACHINE-C"}, p.UniqueValues)
	assert.Equal(t, 2, p.Frequencies["MACHINE-A"])
}

func TestProfile_Patterns(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		values []string
		want   Patterns
	}{
		{
			name:   "machine short prefix",
			field:  "asset",
			values: []string{"MCH7"},
			want:   Patterns{MachineID: true},
		},
		{
			name:   "lowercase words are not machine ids",
			field:  "note",
			values: []string{"maintenance", "monday", "mch7"},
			want:   Patterns{},
		},
		{
			name:   "lowercase codes are not material codes",
			field:  "note",
			values: []string{"premium", "std-12", "matl"},
			want:   Patterns{},
		},
		{
			name:   "generic letters-digits",
			field:  "asset",
			values: []string{"CONVEYOR-12"},
			want:   Patterns{MachineID: true},
		},
		{
			name:   "material prefix",
			field:  "material",
			values: []string{"PREM42"},
			want:   Patterns{MaterialCode: true},
		},
		{
			name:   "material short code also reads as letters-digits",
			field:  "material",
			values: []string{"ALU-100"},
			want:   Patterns{MaterialCode: true, MachineID: true},
		},
		{
			name:   "department vocabulary",
			field:  "area",
			values: []string{"qc", "Assy"},
			want:   Patterns{Department: true},
		},
		{
			name:   "department vocabulary ignores case but identifiers do not",
			field:  "area",
			values: []string{"maint"},
			want:   Patterns{Department: true},
		},
		{
			name:   "department by field name",
			field:  "Home_DEPT",
			values: []string{"north wing"},
			want:   Patterns{Department: true},
		},
		{
			name:   "numeric range",
			field:  "qty",
			values: []string{"10", "12.5", "7"},
			want:   Patterns{NumericRange: true},
		},
		{
			name:   "mixed numbers are not a range",
			field:  "qty",
			values: []string{"10", "n/a"},
			want:   Patterns{},
		},
		{
			name:   "leading time prefix",
			field:  "stamp",
			values: []string{"7:45 AM"},
			want:   Patterns{Time: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Profile(tt.field, tt.values).Patterns)
		})
	}
}

func TestProfile_MixedType(t *testing.T) {
	p := Profile("misc", []string{"1", "08:00", "abc", "2"})

	assert.Equal(t, TypeMixed, p.Type)
	assert.Equal(t, []ValueType{TypeNumber, TypeTime, TypeString}, p.ValueTypes)
	assert.Equal(t, []float64{1, 2}, p.Numbers)
}

func TestProfile_TrimsValues(t *testing.T) {
	p := Profile("code", []string{" A-1", "A-1 ", "B-2"})

	assert.Equal(t, 2, p.UniqueCount)
	assert.Equal(t, 3, p.TotalCount)
	assert.Equal(t, 2, p.Frequencies["A-1"])
}

func TestProfile_Mean(t *testing.T) {
	p := Profile("qty", []string{"10", "20", "30", "41"})

	mean, ok := p.Mean()
	require.True(t, ok)
	assert.InDelta(t, 25.25, mean, 1e-9)

	_, ok = Profile("name", []string{"x"}).Mean()
	assert.False(t, ok)
}

func TestTopValues(t *testing.T) {
	p := Profile("m", []string{"c", "a", "b", "a", "b", "a", "d"})

	assert.Equal(t, []string{"a", "b", "c", "d"}, p.TopValues(10))
	assert.Equal(t, []string{"a", "b"}, p.TopValues(2))
	assert.Empty(t, p.TopValues(0))

	var many []string
	for i := range 15 {
		many = append(many, fmt.Sprintf("v%02d", i))
	}

	assert.Len(t, Profile("m", many).TopValues(10), 10)
}

func TestSummary(t *testing.T) {
	p := Profile("machine", []string{"MACHINE-A", "MACHINE-B", "MACHINE-A"})
	assert.Equal(t, "machine: 2 unique values in 3 samples, type string, patterns: machine ID", p.Summary())

	p = Profile("qty", []string{"5"})
	assert.Equal(t, "qty: 1 unique value in 1 sample, type number, patterns: numeric range", p.Summary())
}

func TestPattern_String(t *testing.T) {
	assert.Equal(t, "time", PatternTime.String())
	assert.Equal(t, "department code", PatternDepartment.String())
	assert.Equal(t, "unknown", Pattern(0).String())
	assert.False(t, Patterns{}.Has(Pattern(0)))
}
