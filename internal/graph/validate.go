package graph

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"ontology-mapper/internal/common"
	"ontology-mapper/internal/diagnostic"
	"ontology-mapper/internal/mapping"
)

// DefaultDeepChainDepth is the chain depth from which a warning is raised.
const DefaultDeepChainDepth = 4

// arrow separates field ids in rendered cycles and chains.
const arrow = " → "

// ValidationResult is the flattened outcome of dependency validation.
type ValidationResult struct {
	Valid    bool     `json:"valid" yaml:"valid"`
	Errors   []string `json:"errors" yaml:"errors"`
	Warnings []string `json:"warnings" yaml:"warnings"`
}

// Validator checks a mapping snapshot for dependency problems.
type Validator struct {
	builder        *Builder
	deepChainDepth int
	logger         *zap.Logger
}

// NewValidator returns a Validator. deepChainDepth <= 0 selects the default.
func NewValidator(deepChainDepth int, logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}

	if deepChainDepth <= 0 {
		deepChainDepth = DefaultDeepChainDepth
	}

	return &Validator{
		builder:        NewBuilder(logger),
		deepChainDepth: deepChainDepth,
		logger:         logger.Named("validator"),
	}
}

// Validate checks mappings with the default settings.
func Validate(mappings []mapping.FieldMapping) ValidationResult {
	return NewValidator(DefaultDeepChainDepth, nil).Validate(mappings)
}

// Validate reports one error per cycle and one warning per deep chain.
// Warnings never affect validity.
func (v *Validator) Validate(mappings []mapping.FieldMapping) ValidationResult {
	_, diags := v.ValidateDetailed(mappings)

	errs := diagnostic.Messages(diags.ByCode(diagnostic.CodeDependencyCycle))
	warns := diagnostic.Messages(diags.ByCode(diagnostic.CodeDeepChain))

	return ValidationResult{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
	}
}

// ValidateDetailed builds the graph and returns it with the full diagnostics,
// including unresolved rule columns, shared column bindings and orphans.
func (v *Validator) ValidateDetailed(mappings []mapping.FieldMapping) (*DependencyGraph, *diagnostic.Diagnostics) {
	g := v.builder.Build(mappings)
	diags := &diagnostic.Diagnostics{}

	for _, c := range g.Cycles {
		first, _ := common.First(c.Cycle)
		diags.AddError(diagnostic.CodeDependencyCycle,
			"Circular dependency detected: "+strings.Join(c.Cycle, arrow),
			first, c.Members()...)
	}

	for _, ch := range g.Chains {
		if ch.Depth < v.deepChainDepth {
			continue
		}

		diags.AddWarning(diagnostic.CodeDeepChain,
			fmt.Sprintf("Deep dependency chain (%d levels): %s", ch.Depth, strings.Join(ch.Chain, arrow)),
			ch.Chain[len(ch.Chain)-1], ch.Chain...)
	}

	for _, id := range g.DuplicateFields {
		diags.AddWarning(diagnostic.CodeDuplicateField,
			fmt.Sprintf("Field %s is mapped more than once; only the first mapping is used", id), id)
	}

	for _, col := range common.SortedKeys(g.SharedColumns) {
		owners := g.SharedColumns[col]
		diags.AddWarning(diagnostic.CodeDuplicateColumn,
			fmt.Sprintf("Column %q is bound to %d fields; rules referencing it resolve to %s",
				col, len(owners), owners[0]),
			owners[0], owners...)
	}

	for _, u := range g.Unresolved {
		diags.AddInfo(diagnostic.CodeUnresolvedColumn,
			fmt.Sprintf("Rule on %s references column %q, which no field is mapped to", u.FieldID, u.Column),
			u.FieldID)
	}

	for _, m := range mappings {
		invalidOperators(diags, m)
	}

	for _, id := range g.Orphans {
		diags.AddInfo(diagnostic.CodeOrphanField,
			fmt.Sprintf("Field %s has no rule and no dependencies", id), id)
	}

	v.logger.Debug("Validated dependencies",
		zap.Int("errors", len(diags.Errors)),
		zap.Int("warnings", len(diags.Warnings)),
		zap.Int("infos", len(diags.Infos)))

	return g, diags
}

// invalidOperators warns about conditions whose operator is unknown. Such a
// condition still contributes its dependency but can never match.
func invalidOperators(diags *diagnostic.Diagnostics, m mapping.FieldMapping) {
	cfg, ok := m.BusinessRule.(*mapping.ConditionalConfig)
	if !ok || !m.HasIdentity() {
		return
	}

	for i, c := range cfg.Conditions {
		if c.Operator.IsValid() {
			continue
		}

		diags.AddWarning(diagnostic.CodeInvalidOperator,
			fmt.Sprintf("Condition %d on %s uses unknown operator %q and never matches", i+1, m.FieldID(), c.Operator),
			m.FieldID())
	}
}
