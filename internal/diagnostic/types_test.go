package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndValidity(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning(CodeDeepChain, "deep chain", "line.cost")
	assert.True(t, d.IsValid(), "warnings never affect validity")

	d.AddError(CodeDependencyCycle, "cycle", "a.x", "a.x", "b.y")
	assert.False(t, d.IsValid())
	assert.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "a.x: [dependency_cycle] cycle", err.Error())
	assert.Equal(t, []string{"a.x", "b.y"}, d.Errors[0].Related)
}

func TestDiagnostics_ByCode(t *testing.T) {
	var a Diagnostics

	a.AddInfo(CodeUnresolvedColumn, "missing column", "a.x")
	a.AddInfo(CodeUnresolvedColumn, "missing column too", "b.y")
	a.AddWarning(CodeDuplicateColumn, "dup", "")

	assert.Len(t, a.ByCode(CodeUnresolvedColumn), 2)
	assert.Len(t, a.ByCode(CodeDuplicateColumn), 1)
	assert.Empty(t, a.ByCode(CodeDependencyCycle))
	assert.Equal(t, []string{"missing column", "missing column too"}, Messages(a.Infos))
	assert.Equal(t, []string{}, Messages(a.ByCode(CodeDependencyCycle)))
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
