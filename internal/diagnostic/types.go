package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"ontology-mapper/internal/common"
)

// Stable diagnostic codes.
const (
	CodeDependencyCycle  = "dependency_cycle"
	CodeDeepChain        = "deep_chain"
	CodeUnresolvedColumn = "unresolved_column"
	CodeDuplicateField   = "duplicate_field"
	CodeDuplicateColumn  = "duplicate_column"
	CodeOrphanField      = "orphan_field"
	CodeInvalidOperator  = "invalid_operator"
)

// Diagnostics holds all diagnostic information from an analysis run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// FieldID identifies which field this relates to (if any).
	FieldID string
	// Related lists other field ids involved, e.g. the members of a cycle.
	Related []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, fieldID string, related ...string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, fieldID, related))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, fieldID string, related ...string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, fieldID, related))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, fieldID string, related ...string) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, fieldID, related))
}

func newDiagnostic(sev Severity, code, message, fieldID string, related []string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		FieldID:  fieldID,
		Related:  related,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// ByCode returns every diagnostic, of any severity, carrying the given code.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var out []Diagnostic

	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if diag.Code == code {
				out = append(out, diag)
			}
		}
	}

	return out
}

// Messages returns the bare messages of the given diagnostics in order.
func Messages(diags []Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Message)
	}

	return out
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.FieldID != "" {
		return d.FieldID + ": " + msg
	}

	return msg
}
