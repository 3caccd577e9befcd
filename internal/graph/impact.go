package graph

import "slices"

// ImpactedBy returns every field that transitively depends on fieldID, in
// sorted order. Unknown ids yield an empty result. The field itself is only
// included when it depends on itself through a cycle.
func (g *DependencyGraph) ImpactedBy(fieldID string) []string {
	impacted := []string{}

	start, ok := g.Field(fieldID)
	if !ok {
		return impacted
	}

	visited := make(map[string]bool)
	queue := slices.Clone(start.DependedOnBy)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		if visited[id] {
			continue
		}

		visited[id] = true
		impacted = append(impacted, id)

		if f, ok := g.Fields[id]; ok {
			queue = append(queue, f.DependedOnBy...)
		}
	}

	slices.Sort(impacted)

	return impacted
}

// DependenciesOf returns every field that fieldID transitively depends on,
// in sorted order.
func (g *DependencyGraph) DependenciesOf(fieldID string) []string {
	deps := []string{}

	start, ok := g.Field(fieldID)
	if !ok {
		return deps
	}

	visited := make(map[string]bool)
	stack := slices.Clone(start.DependsOn)

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[id] {
			continue
		}

		visited[id] = true
		deps = append(deps, id)

		if f, ok := g.Fields[id]; ok {
			stack = append(stack, f.DependsOn...)
		}
	}

	slices.Sort(deps)

	return deps
}
