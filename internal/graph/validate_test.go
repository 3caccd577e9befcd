package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ontology-mapper/internal/diagnostic"
	"ontology-mapper/internal/mapping"
)

func TestValidate_Clean(t *testing.T) {
	res := Validate(linearChain())

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestValidate_CycleIsError(t *testing.T) {
	res := Validate([]mapping.FieldMapping{
		field("a", "col_a", lookupOn("col_b")),
		field("b", "col_b", lookupOn("col_a")),
	})

	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Circular dependency detected: Plant.a → Plant.b → Plant.a", res.Errors[0])
}

func TestValidate_DeepChainIsWarning(t *testing.T) {
	mappings := []mapping.FieldMapping{
		field("a", "col_a", nil),
		field("b", "col_b", lookupOn("col_a")),
		field("c", "col_c", lookupOn("col_b")),
		field("d", "col_d", lookupOn("col_c")),
	}

	res := Validate(mappings)

	assert.True(t, res.Valid, "warnings never affect validity")
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "Deep dependency chain (4 levels): Plant.a → Plant.b → Plant.c → Plant.d", res.Warnings[0])

	assert.Empty(t, Validate(mappings[:3]).Warnings, "depth 3 is below the threshold")
	assert.Len(t, NewValidator(3, zap.NewNop()).Validate(mappings[:3]).Warnings, 1)
}

func TestValidate_NeverFails(t *testing.T) {
	inputs := [][]mapping.FieldMapping{
		nil,
		{},
		{{}},
		{field("a", "", nil)},
		{field("a", "col_a", lookupOn("col_a"))},
		{field("a", "col_a", &mapping.ConditionalConfig{Conditions: []mapping.Condition{{}}})},
		{{OntologyEntity: "X", BusinessRule: lookupOn("col_a")}},
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() {
			res := Validate(in)
			assert.Equal(t, len(res.Errors) == 0, res.Valid)
		})
	}
}

func TestValidateDetailed(t *testing.T) {
	mappings := []mapping.FieldMapping{
		field("a", "shared", nil),
		field("b", "shared", nil),
		field("c", "col_c", lookupOn("ghost")),
		field("a", "col_dup", nil),
		field("self", "col_self", lookupOn("col_self")),
	}

	g, diags := NewValidator(0, nil).ValidateDetailed(mappings)
	require.NotNil(t, g)

	cycles := diags.ByCode(diagnostic.CodeDependencyCycle)
	require.Len(t, cycles, 1)
	assert.Equal(t, "Plant.self", cycles[0].FieldID)
	assert.Equal(t, []string{"Plant.self"}, cycles[0].Related)

	assert.Len(t, diags.ByCode(diagnostic.CodeDuplicateField), 1)

	shared := diags.ByCode(diagnostic.CodeDuplicateColumn)
	require.Len(t, shared, 1)
	assert.Contains(t, shared[0].Message, `"shared"`)
	assert.Equal(t, []string{"Plant.a", "Plant.b"}, shared[0].Related)

	unresolved := diags.ByCode(diagnostic.CodeUnresolvedColumn)
	require.Len(t, unresolved, 1)
	assert.Contains(t, unresolved[0].Message, `"ghost"`)

	orphans := diags.ByCode(diagnostic.CodeOrphanField)
	assert.Len(t, orphans, 2)

	assert.False(t, diags.IsValid())
}

func TestValidateDetailed_UnknownOperator(t *testing.T) {
	rule := &mapping.ConditionalConfig{
		Conditions: []mapping.Condition{
			{Field: "col_a", Operator: mapping.OpGreater, Value: "1", Result: "2"},
			{Field: "col_a", Operator: "~", Value: "x", Result: "3"},
		},
		DefaultValue: "1",
	}

	mappings := []mapping.FieldMapping{
		field("a", "col_a", nil),
		field("b", "col_b", rule),
	}

	g, diags := NewValidator(0, nil).ValidateDetailed(mappings)

	b, ok := g.Field("Plant.b")
	require.True(t, ok)
	assert.Equal(t, []string{"Plant.a"}, b.DependsOn, "the condition still reads its column")

	warns := diags.ByCode(diagnostic.CodeInvalidOperator)
	require.Len(t, warns, 1)
	assert.Equal(t, diagnostic.SeverityWarning, warns[0].Severity)
	assert.Equal(t, "Plant.b", warns[0].FieldID)
	assert.Equal(t, `Condition 2 on Plant.b uses unknown operator "~" and never matches`, warns[0].Message)

	assert.True(t, diags.IsValid())
	assert.True(t, Validate(mappings).Valid)
}
