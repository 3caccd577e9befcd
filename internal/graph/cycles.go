package graph

import (
	"slices"
	"strings"

	"ontology-mapper/internal/common"
)

// dfsFrame is one entry of an explicit depth-first stack.
type dfsFrame struct {
	id   string
	next int
}

// DetectCycles finds dependency cycles with a depth-first walk from every
// unvisited node, in sorted id order. Each back edge to a node on the current
// path yields the path suffix from that node, closed by the node again.
// Cycles with the same member set are reported once.
func DetectCycles(nodes map[string]*FieldDependency) []CircularDependency {
	cycles := []CircularDependency{}
	seen := make(map[string]struct{})

	visited := make(map[string]bool, len(nodes))
	onPath := make(map[string]bool)

	for _, start := range common.SortedKeys(nodes) {
		if visited[start] {
			continue
		}

		visited[start] = true
		onPath[start] = true
		stack := []dfsFrame{{id: start}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			deps := nodes[top.id].DependsOn

			if top.next >= len(deps) {
				onPath[top.id] = false
				stack = stack[:len(stack)-1]

				continue
			}

			dep := deps[top.next]
			top.next++

			if _, ok := nodes[dep]; !ok {
				continue
			}

			if onPath[dep] {
				cycle := closeCycle(stack, dep)

				key := cycleKey(cycle)
				if _, dup := seen[key]; !dup {
					seen[key] = struct{}{}
					cycles = append(cycles, CircularDependency{Cycle: cycle, Severity: SeverityError})
				}

				continue
			}

			if visited[dep] {
				continue
			}

			visited[dep] = true
			onPath[dep] = true
			stack = append(stack, dfsFrame{id: dep})
		}
	}

	return cycles
}

// closeCycle returns the stack suffix starting at id, followed by id.
func closeCycle(stack []dfsFrame, id string) []string {
	start := 0

	for i := range stack {
		if stack[i].id == id {
			start = i
			break
		}
	}

	cycle := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		cycle = append(cycle, f.id)
	}

	return append(cycle, id)
}

// cycleKey identifies a cycle by its sorted member set.
func cycleKey(cycle []string) string {
	members := common.Dedupe(slices.Clone(cycle))
	slices.Sort(members)

	return strings.Join(members, "\x00")
}
