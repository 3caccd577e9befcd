package mapping

import (
	"strings"

	"ontology-mapper/internal/common"
)

// MappingFile is the root structure of a mapping profile file.
type MappingFile struct {
	// Version of the mapping schema.
	Version string `yaml:"version"`
	// Profile is an optional human-readable profile name.
	Profile string `yaml:"profile,omitempty"`
	// Mappings lists the field bindings in declaration order.
	Mappings []FieldMapping `yaml:"mappings"`
}

// FieldMapping binds one ontology field to a source column and an optional rule.
type FieldMapping struct {
	OntologyEntity   string
	OntologyProperty string
	DisplayName      string
	// CSVColumn is the bound spreadsheet column; empty means unbound.
	CSVColumn string
	// BusinessRule computes the field value; nil means a plain column copy.
	BusinessRule BusinessRule
}

// FieldID joins an entity and property into a field id.
func FieldID(entity, property string) string {
	return entity + "." + property
}

// SplitFieldID splits a field id at its first dot.
func SplitFieldID(id string) (entity, property string, ok bool) {
	entity, property, ok = strings.Cut(id, ".")
	if !ok || entity == "" || property == "" {
		return "", "", false
	}

	return entity, property, true
}

// HasIdentity reports whether both entity and property are set.
// Mappings without identity are ignored by analysis.
func (m FieldMapping) HasIdentity() bool {
	return m.OntologyEntity != "" && m.OntologyProperty != ""
}

// FieldID returns the mapping's field id.
func (m FieldMapping) FieldID() string {
	return FieldID(m.OntologyEntity, m.OntologyProperty)
}

// Name returns the display name, falling back to the field id.
func (m FieldMapping) Name() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}

	return m.FieldID()
}

// HasRule reports whether a business rule is attached.
func (m FieldMapping) HasRule() bool {
	return m.BusinessRule != nil
}

// RuleKind identifies a business rule variant.
type RuleKind string

const (
	RuleLookup      RuleKind = "lookup"
	RuleConditional RuleKind = "conditional"
)

// IsValid reports whether k names a known variant.
func (k RuleKind) IsValid() bool {
	return k == RuleLookup || k == RuleConditional
}

// BusinessRule describes how a field value is computed. It is a closed union:
// the only implementations are *LookupConfig and *ConditionalConfig.
type BusinessRule interface {
	// Kind returns the variant tag.
	Kind() RuleKind
	// ReferencedColumns returns the distinct, non-empty CSV columns the rule
	// reads, in declaration order.
	ReferencedColumns() []string

	businessRule()
}

// LookupConfig maps values of a source column through a table.
type LookupConfig struct {
	SourceField  string            `yaml:"source_field"`
	LookupTable  map[string]string `yaml:"lookup_table,omitempty"`
	DefaultValue string            `yaml:"default_value"`
}

func (*LookupConfig) businessRule() {}

// Kind implements BusinessRule.
func (*LookupConfig) Kind() RuleKind { return RuleLookup }

// ReferencedColumns implements BusinessRule.
func (c *LookupConfig) ReferencedColumns() []string {
	if c == nil || c.SourceField == "" {
		return nil
	}

	return []string{c.SourceField}
}

// ConditionalConfig evaluates ordered conditions; the first match wins.
type ConditionalConfig struct {
	Conditions   []Condition `yaml:"conditions"`
	DefaultValue string      `yaml:"default_value"`
}

func (*ConditionalConfig) businessRule() {}

// Kind implements BusinessRule.
func (*ConditionalConfig) Kind() RuleKind { return RuleConditional }

// ReferencedColumns implements BusinessRule.
func (c *ConditionalConfig) ReferencedColumns() []string {
	if c == nil {
		return nil
	}

	cols := make([]string, 0, len(c.Conditions))
	for _, cond := range c.Conditions {
		if cond.Field != "" {
			cols = append(cols, cond.Field)
		}
	}

	return common.Dedupe(cols)
}

// Condition is one branch of a conditional rule.
type Condition struct {
	Field    string   `yaml:"field"`
	Operator Operator `yaml:"operator"`
	Value    string   `yaml:"value"`
	Result   string   `yaml:"result"`
	Label    string   `yaml:"label,omitempty"`
}

// Operator is a comparison operator used in conditions.
type Operator string

const (
	OpEqual        Operator = "=="
	OpNotEqual     Operator = "!="
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	OpContains     Operator = "contains"
	OpIn           Operator = "in"
)

// IsValid reports whether o is a known operator.
func (o Operator) IsValid() bool {
	switch o {
	case OpEqual, OpNotEqual, OpGreater, OpGreaterEqual, OpLess, OpLessEqual, OpContains, OpIn:
		return true
	default:
		return false
	}
}
