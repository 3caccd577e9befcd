package graph

import (
	"slices"

	"ontology-mapper/internal/common"
)

// SeverityError is the only severity assigned to cycles.
const SeverityError = "error"

// FieldDependency is one node of the dependency graph.
type FieldDependency struct {
	FieldID   string `json:"fieldId" yaml:"field_id"`
	FieldName string `json:"fieldName" yaml:"field_name"`
	// DependsOn lists fields this field reads, in discovery order, without duplicates.
	DependsOn []string `json:"dependsOn" yaml:"depends_on"`
	// DependedOnBy lists fields reading this field, in discovery order, without duplicates.
	DependedOnBy    []string `json:"dependedOnBy" yaml:"depended_on_by"`
	HasBusinessRule bool     `json:"hasBusinessRule" yaml:"has_business_rule"`
	CSVColumn       string   `json:"csvColumn,omitempty" yaml:"csv_column,omitempty"`
}

// IsRoot reports whether nothing depends on the field but it depends on something.
func (f *FieldDependency) IsRoot() bool {
	return len(f.DependedOnBy) == 0 && len(f.DependsOn) > 0
}

// IsOrphan reports whether the field has no rule and no edges.
func (f *FieldDependency) IsOrphan() bool {
	return !f.HasBusinessRule && len(f.DependsOn) == 0 && len(f.DependedOnBy) == 0
}

// CircularDependency is one detected cycle. Cycle starts and ends with the
// same field id.
type CircularDependency struct {
	Cycle    []string `json:"cycle" yaml:"cycle"`
	Severity string   `json:"severity" yaml:"severity"`
}

// Members returns the distinct field ids of the cycle in sorted order.
func (c CircularDependency) Members() []string {
	ids := c.Cycle
	if len(ids) > 1 && ids[0] == ids[len(ids)-1] {
		ids = ids[:len(ids)-1]
	}

	members := common.Dedupe(slices.Clone(ids))
	slices.Sort(members)

	return members
}

// DependencyChain is a maximal lineage in dependency-first order: each field
// depends on the one before it.
type DependencyChain struct {
	Chain []string `json:"chain" yaml:"chain"`
	Depth int      `json:"depth" yaml:"depth"`
}

// UnresolvedReference records a rule column that no mapping is bound to.
type UnresolvedReference struct {
	FieldID string `json:"fieldId" yaml:"field_id"`
	Column  string `json:"column" yaml:"column"`
}

// DependencyGraph is an immutable snapshot of field dependencies.
type DependencyGraph struct {
	Fields  map[string]*FieldDependency `json:"fields" yaml:"fields"`
	Cycles  []CircularDependency        `json:"cycles" yaml:"cycles"`
	Chains  []DependencyChain           `json:"chains" yaml:"chains"`
	Orphans []string                    `json:"orphans" yaml:"orphans"`

	// Unresolved lists rule references dropped because no field binds the column.
	Unresolved []UnresolvedReference `json:"unresolved,omitempty" yaml:"unresolved,omitempty"`
	// DuplicateFields lists field ids declared more than once; the first declaration wins.
	DuplicateFields []string `json:"duplicateFields,omitempty" yaml:"duplicate_fields,omitempty"`
	// SharedColumns maps a CSV column bound by several fields to those fields,
	// in declaration order. References resolve to the first one.
	SharedColumns map[string][]string `json:"sharedColumns,omitempty" yaml:"shared_columns,omitempty"`
}

// Field returns the node for id.
func (g *DependencyGraph) Field(id string) (*FieldDependency, bool) {
	if g == nil {
		return nil, false
	}

	f, ok := g.Fields[id]

	return f, ok
}

// FieldIDs returns every field id in sorted order.
func (g *DependencyGraph) FieldIDs() []string {
	if g == nil {
		return nil
	}

	return common.SortedKeys(g.Fields)
}

// EdgeCount returns the number of dependency edges.
func (g *DependencyGraph) EdgeCount() int {
	if g == nil {
		return 0
	}

	n := 0
	for _, f := range g.Fields {
		n += len(f.DependsOn)
	}

	return n
}

// HasCycles reports whether any cycle was detected.
func (g *DependencyGraph) HasCycles() bool {
	return g != nil && len(g.Cycles) > 0
}
