// Package suggest proposes business rules for a field from sample data.
//
// Each candidate column is profiled, then two independent heuristics run:
//   - lookup: low-cardinality columns get a value table seeded with
//     placeholder results chosen by the detected pattern
//   - conditional: time columns get a night-shift premium, numeric columns
//     an above-average premium
//
// Suggestions from all candidates are ranked by confidence, highest first.
// Confidence only orders suggestions; it makes no correctness claim.
package suggest
