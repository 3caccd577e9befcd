package graph

import (
	"go.uber.org/zap"

	"ontology-mapper/internal/common"
	"ontology-mapper/internal/mapping"
)

// Builder constructs dependency graphs from mapping snapshots.
type Builder struct {
	logger *zap.Logger
}

// NewBuilder returns a Builder. A nil logger disables logging.
func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Builder{logger: logger.Named("graph")}
}

// Build constructs a dependency graph without logging.
func Build(mappings []mapping.FieldMapping) *DependencyGraph {
	return NewBuilder(nil).Build(mappings)
}

// Build constructs the dependency graph for one mapping snapshot.
// It never fails: mappings without identity are skipped and rule references
// to unbound columns contribute no edge.
func (b *Builder) Build(mappings []mapping.FieldMapping) *DependencyGraph {
	g := &DependencyGraph{
		Fields: make(map[string]*FieldDependency, len(mappings)),
	}

	// owner records which mapping index created each node, so that duplicate
	// declarations do not contribute rules.
	owner := make(map[string]int, len(mappings))
	columnOwners := make(map[string][]string)
	// columns maps each CSV column to the first field bound to it.
	columns := make(map[string]string)

	for i := range mappings {
		m := &mappings[i]
		if !m.HasIdentity() {
			continue
		}

		id := m.FieldID()

		if m.CSVColumn != "" {
			columnOwners[m.CSVColumn] = append(columnOwners[m.CSVColumn], id)

			if _, ok := columns[m.CSVColumn]; !ok {
				columns[m.CSVColumn] = id
			}
		}

		if _, exists := g.Fields[id]; exists {
			g.DuplicateFields, _ = common.AppendUnique(g.DuplicateFields, id)
			continue
		}

		owner[id] = i
		g.Fields[id] = &FieldDependency{
			FieldID:         id,
			FieldName:       m.Name(),
			DependsOn:       []string{},
			DependedOnBy:    []string{},
			HasBusinessRule: m.HasRule(),
			CSVColumn:       m.CSVColumn,
		}
	}

	for col, ids := range columnOwners {
		owners := common.Dedupe(ids)
		if len(owners) < 2 {
			continue
		}

		if g.SharedColumns == nil {
			g.SharedColumns = make(map[string][]string)
		}

		g.SharedColumns[col] = owners
	}

	for i := range mappings {
		m := &mappings[i]
		if !m.HasIdentity() || m.BusinessRule == nil {
			continue
		}

		id := m.FieldID()
		if owner[id] != i {
			continue
		}

		for _, col := range m.BusinessRule.ReferencedColumns() {
			target, ok := columns[col]
			if !ok {
				g.Unresolved = append(g.Unresolved, UnresolvedReference{FieldID: id, Column: col})
				continue
			}

			g.addEdge(id, target)
		}
	}

	g.Cycles = DetectCycles(g.Fields)
	g.Chains = FindChains(g.Fields)

	g.Orphans = []string{}
	for _, id := range g.FieldIDs() {
		if g.Fields[id].IsOrphan() {
			g.Orphans = append(g.Orphans, id)
		}
	}

	b.logger.Debug("Built dependency graph",
		zap.Int("fields", len(g.Fields)),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("cycles", len(g.Cycles)),
		zap.Int("chains", len(g.Chains)),
		zap.Int("orphans", len(g.Orphans)),
		zap.Int("unresolved", len(g.Unresolved)))

	return g
}

// addEdge records from -> to in both directions, at most once.
func (g *DependencyGraph) addEdge(from, to string) {
	src, ok := g.Fields[from]
	if !ok {
		return
	}

	dst, ok := g.Fields[to]
	if !ok {
		return
	}

	src.DependsOn, _ = common.AppendUnique(src.DependsOn, to)
	dst.DependedOnBy, _ = common.AppendUnique(dst.DependedOnBy, from)
}
