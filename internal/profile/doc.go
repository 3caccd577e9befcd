// Package profile computes statistical profiles of a column's sample values:
// cardinality, value frequencies, inferred primitive type and structural
// pattern flags used by rule suggestion.
package profile
