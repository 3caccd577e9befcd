package graph

import "ontology-mapper/internal/mapping"

// field builds a mapping for entity "Plant" bound to column.
func field(property, column string, rule mapping.BusinessRule) mapping.FieldMapping {
	return mapping.FieldMapping{
		OntologyEntity:   "Plant",
		OntologyProperty: property,
		CSVColumn:        column,
		BusinessRule:     rule,
	}
}

func lookupOn(column string) mapping.BusinessRule {
	return &mapping.LookupConfig{SourceField: column, DefaultValue: "0"}
}

func conditionalOn(columns ...string) mapping.BusinessRule {
	cfg := &mapping.ConditionalConfig{DefaultValue: "1.0"}
	for _, c := range columns {
		cfg.Conditions = append(cfg.Conditions, mapping.Condition{
			Field: c, Operator: mapping.OpGreater, Value: "0", Result: "1.5",
		})
	}

	return cfg
}

// linearChain returns A (plain) <- B <- C.
func linearChain() []mapping.FieldMapping {
	return []mapping.FieldMapping{
		field("a", "col_a", nil),
		field("b", "col_b", lookupOn("col_a")),
		field("c", "col_c", conditionalOn("col_b")),
	}
}
