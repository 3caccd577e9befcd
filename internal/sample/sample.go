// Package sample holds already-tokenized preview rows and loads them from YAML.
//
// A sample file is a list of rows, each a map from column name to scalar:
//
//	rows:
//	  - machine_id: MACHINE-A
//	    shift_start: "08:00"
//	    qty: 12
//
// Scalars keep their literal text; nulls and nested values are dropped.
package sample

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ontology-mapper/internal/common"
)

// Row maps a column name to its raw cell value.
type Row map[string]string

type fileDoc struct {
	Rows []map[string]yaml.Node `yaml:"rows"`
}

// LoadFile reads a sample file, keeping at most limit rows (limit <= 0 keeps all).
func LoadFile(path string, limit int) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample file %s: %w", path, err)
	}

	return Parse(data, limit)
}

// Parse parses YAML sample rows, keeping at most limit rows (limit <= 0 keeps all).
func Parse(data []byte, limit int) ([]Row, error) {
	var doc fileDoc

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sample YAML: %w", err)
	}

	raw := doc.Rows
	if limit > 0 && len(raw) > limit {
		raw = raw[:limit]
	}

	rows := make([]Row, 0, len(raw))

	for _, r := range raw {
		row := make(Row, len(r))

		for col, node := range r {
			if node.Kind != yaml.ScalarNode || node.ShortTag() == "!!null" {
				continue
			}

			row[col] = node.Value
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// Values returns the column's values across rows in row order.
// Rows missing the column are skipped.
func Values(rows []Row, column string) []string {
	out := make([]string, 0, len(rows))

	for _, r := range rows {
		if v, ok := r[column]; ok {
			out = append(out, v)
		}
	}

	return out
}

// Columns returns every column seen in rows, sorted per row by name and
// ordered by first appearance across rows.
func Columns(rows []Row) []string {
	seen := make(map[string]struct{})

	var cols []string

	for _, r := range rows {
		for _, c := range common.SortedKeys(r) {
			if _, ok := seen[c]; ok {
				continue
			}

			seen[c] = struct{}{}
			cols = append(cols, c)
		}
	}

	return cols
}
