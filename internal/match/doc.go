// Package match ranks sample columns against ontology fields by name.
//
// Headers and property names are normalized (case-folded, CamelCase split,
// punctuation removed, trailing noise tokens such as "id" or "code" optionally
// stripped) and compared with a rune-based Levenshtein similarity blended with
// token overlap.
package match
