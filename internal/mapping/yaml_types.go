package mapping

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// fieldMappingDoc is the on-disk shape of a FieldMapping.
type fieldMappingDoc struct {
	Entity       string   `yaml:"entity"`
	Property     string   `yaml:"property"`
	DisplayName  string   `yaml:"display_name,omitempty"`
	CSVColumn    string   `yaml:"csv_column,omitempty"`
	BusinessRule *ruleDoc `yaml:"business_rule,omitempty"`
}

// ruleDoc is the tagged on-disk shape of a BusinessRule.
type ruleDoc struct {
	Type   RuleKind  `yaml:"type"`
	Config yaml.Node `yaml:"config,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for FieldMapping.
// The business rule is dispatched on its type tag; a rule with a known
// type and no config decodes to an empty config of that variant.
func (m *FieldMapping) UnmarshalYAML(node *yaml.Node) error {
	var doc fieldMappingDoc

	err := node.Decode(&doc)
	if err != nil {
		return err
	}

	*m = FieldMapping{
		OntologyEntity:   doc.Entity,
		OntologyProperty: doc.Property,
		DisplayName:      doc.DisplayName,
		CSVColumn:        doc.CSVColumn,
	}

	if doc.BusinessRule == nil {
		return nil
	}

	rule, err := decodeRule(doc.BusinessRule)
	if err != nil {
		return fmt.Errorf("field %s: %w", m.FieldID(), err)
	}

	m.BusinessRule = rule

	return nil
}

func decodeRule(doc *ruleDoc) (BusinessRule, error) {
	hasConfig := doc.Config.Kind != 0

	switch doc.Type {
	case RuleLookup:
		cfg := &LookupConfig{}
		if hasConfig {
			if err := doc.Config.Decode(cfg); err != nil {
				return nil, fmt.Errorf("invalid lookup config: %w", err)
			}
		}

		return cfg, nil

	case RuleConditional:
		cfg := &ConditionalConfig{}
		if hasConfig {
			if err := doc.Config.Decode(cfg); err != nil {
				return nil, fmt.Errorf("invalid conditional config: %w", err)
			}
		}

		return cfg, nil

	case "":
		return nil, errors.New("business rule is missing its type")

	default:
		return nil, fmt.Errorf("unknown business rule type %q (expected 'lookup' or 'conditional')", doc.Type)
	}
}

// MarshalYAML implements custom YAML marshaling for FieldMapping.
func (m FieldMapping) MarshalYAML() (any, error) {
	doc := fieldMappingDoc{
		Entity:      m.OntologyEntity,
		Property:    m.OntologyProperty,
		DisplayName: m.DisplayName,
		CSVColumn:   m.CSVColumn,
	}

	if m.BusinessRule != nil {
		rd := &ruleDoc{Type: m.BusinessRule.Kind()}
		if err := rd.Config.Encode(m.BusinessRule); err != nil {
			return nil, fmt.Errorf("field %s: failed to encode rule: %w", m.FieldID(), err)
		}

		doc.BusinessRule = rd
	}

	return doc, nil
}
