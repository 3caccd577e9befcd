package graph

import (
	"errors"
	"fmt"
	"sort"
)

// ErrCyclicDependencies is returned by EvaluationOrder when the graph has cycles.
var ErrCyclicDependencies = errors.New("cyclic field dependencies")

// EvaluationOrder returns field ids so that every field comes after the fields
// it depends on. When several fields are ready, the smallest id goes first.
func (g *DependencyGraph) EvaluationOrder() ([]string, error) {
	ids := g.FieldIDs()

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	order, err := topoSort(len(ids), func(i int) []int {
		deps := g.Fields[ids[i]].DependsOn

		out := make([]int, 0, len(deps))
		for _, d := range deps {
			if j, ok := index[d]; ok {
				out = append(out, j)
			}
		}

		return out
	})
	if err != nil {
		return nil, err
	}

	result := make([]string, len(order))
	for k, i := range order {
		result[k] = ids[i]
	}

	return result, nil
}

// topoSort returns node indices in execution order. depsFn(i) yields indices
// that must come before i. Ties are broken by smallest index.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return []int{}, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)

		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		return nil, fmt.Errorf("%w: %d of %d fields cannot be ordered", ErrCyclicDependencies, n-len(order), n)
	}

	return order, nil
}
