// Package graph builds the field dependency graph implied by business rules
// and answers questions about it.
//
// An edge A -> B means A's computed value depends on B's value: A's rule reads
// the CSV column bound to B. Nodes live in an arena keyed by field id, and
// every edge is recorded both as A.DependsOn and B.DependedOnBy.
//
// Key operations:
//   - Build: construct the graph from a mapping snapshot
//   - DetectCycles: closed loops, deduplicated by member set
//   - FindChains: longest root-to-leaf lineages, deepest first
//   - ImpactedBy: transitive dependents of a field
//   - EvaluationOrder: dependency-first order for acyclic graphs
//   - Validator: cycles as errors, deep chains as warnings
//
// All traversals use explicit stacks, so input size rather than goroutine
// stack depth bounds them.
package graph
