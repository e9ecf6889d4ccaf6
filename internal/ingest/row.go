// Package ingest turns raw spreadsheet rows into merged student records. It
// owns the column-alias tables, the per-source normalizers and the merge
// reducer; it never classifies anything.
package ingest

import (
	"strconv"
	"strings"
)

// Row is one spreadsheet row as produced by a tabular reader: column name to
// cell text. Multiple sheets are pre-concatenated by the caller.
type Row map[string]string

// lookup resolves the first matching column from an ordered alias list.
// Matching is case-sensitive and exact; declaration order is the precedence.
func lookup(row Row, aliases []string) (string, bool) {
	for _, alias := range aliases {
		if v, ok := row[alias]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// parseNumber parses a cell permissively. Unparsable or missing values become
// 0, the engine-wide "absent" sentinel.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
