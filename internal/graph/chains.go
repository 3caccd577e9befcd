package graph

import (
	"sort"

	"ontology-mapper/internal/common"
)

// FindChains returns the longest dependency chain ending at each root field
// (one nothing depends on), deepest first. Chains shorter than two are dropped.
//
// Longest paths are memoized for every field outside a dependency cycle: such
// a field can never reach a field already on the current path, so its longest
// path does not depend on how it was reached. Only fields inside a cycle are
// walked path by path.
func FindChains(nodes map[string]*FieldDependency) []DependencyChain {
	cyclic := cyclicFields(nodes)
	memo := make(map[string][]string)

	chains := []DependencyChain{}

	for _, id := range common.SortedKeys(nodes) {
		if !nodes[id].IsRoot() {
			continue
		}

		path := longestPath(nodes, id, cyclic, memo)
		if len(path) < 2 {
			continue
		}

		chains = append(chains, DependencyChain{Chain: path, Depth: len(path)})
	}

	sort.SliceStable(chains, func(i, j int) bool {
		return chains[i].Depth > chains[j].Depth
	})

	return chains
}

type chainFrame struct {
	id   string
	next int
	best []string
}

// longestPath returns the longest dependency-first path ending at root,
// never visiting a field twice on one path.
func longestPath(nodes map[string]*FieldDependency, root string, cyclic map[string]bool, memo map[string][]string) []string {
	onPath := map[string]bool{root: true}
	stack := []*chainFrame{{id: root}}

	for {
		top := stack[len(stack)-1]
		deps := nodes[top.id].DependsOn

		if top.next < len(deps) {
			dep := deps[top.next]
			top.next++

			if onPath[dep] || nodes[dep] == nil {
				continue
			}

			if p, ok := memo[dep]; ok {
				if len(p) > len(top.best) {
					top.best = p
				}

				continue
			}

			onPath[dep] = true
			stack = append(stack, &chainFrame{id: dep})

			continue
		}

		path := make([]string, 0, len(top.best)+1)
		path = append(path, top.best...)
		path = append(path, top.id)

		if !cyclic[top.id] {
			memo[top.id] = path
		}

		onPath[top.id] = false
		stack = stack[:len(stack)-1]

		if len(stack) == 0 {
			return path
		}

		parent := stack[len(stack)-1]
		if len(path) > len(parent.best) {
			parent.best = path
		}
	}
}

// cyclicFields returns the fields that sit on a dependency cycle: members of a
// strongly connected component with more than one field, plus fields that
// depend on themselves. It runs Tarjan's algorithm on an explicit stack.
func cyclicFields(nodes map[string]*FieldDependency) map[string]bool {
	cyclic := make(map[string]bool)

	index := make(map[string]int, len(nodes))
	low := make(map[string]int, len(nodes))
	onStack := make(map[string]bool)

	var pending []string

	visit := func(id string) {
		index[id] = len(index)
		low[id] = index[id]
		onStack[id] = true
		pending = append(pending, id)
	}

	for _, start := range common.SortedKeys(nodes) {
		if _, seen := index[start]; seen {
			continue
		}

		visit(start)
		stack := []dfsFrame{{id: start}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			deps := nodes[top.id].DependsOn

			if top.next < len(deps) {
				dep := deps[top.next]
				top.next++

				if _, ok := nodes[dep]; !ok {
					continue
				}

				if dep == top.id {
					cyclic[dep] = true
					continue
				}

				if _, seen := index[dep]; !seen {
					visit(dep)
					stack = append(stack, dfsFrame{id: dep})
				} else if onStack[dep] {
					low[top.id] = min(low[top.id], index[dep])
				}

				continue
			}

			id := top.id
			stack = stack[:len(stack)-1]

			if len(stack) > 0 {
				parent := stack[len(stack)-1].id
				low[parent] = min(low[parent], low[id])
			}

			if low[id] != index[id] {
				continue
			}

			// id is the root of a component: pop its members.
			i := len(pending) - 1
			for pending[i] != id {
				i--
			}

			members := pending[i:]
			for _, m := range members {
				onStack[m] = false

				if len(members) > 1 {
					cyclic[m] = true
				}
			}

			pending = pending[:i]
		}
	}

	return cyclic
}
