package domain

import "strings"

// Row is a single feed row keyed by column name
type Row map[string]string

// Get returns the value of a column and whether it carries usable data.
// Absent, blank and "nan" values are all reported as missing.
func (r Row) Get(column string) (string, bool) {
	v, ok := r[column]
	if !ok {
		return "", false
	}
	if IsMissing(v) {
		return "", false
	}
	return v, true
}

// Has reports whether the column exists in the row at all
func (r Row) Has(column string) bool {
	_, ok := r[column]
	return ok
}

// IsMissing reports whether a raw cell value should be treated as empty
func IsMissing(v string) bool {
	t := strings.TrimSpace(v)
	return t == "" || strings.EqualFold(t, "nan")
}

// Table is a materialized spreadsheet: ordered header plus rows
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the header contains the column
func (t *Table) HasColumn(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// RenameColumn renames a header and moves the value in every row
func (t *Table) RenameColumn(from, to string) {
	if from == to {
		return
	}
	for i, c := range t.Columns {
		if c == from {
			t.Columns[i] = to
		}
	}
	for _, row := range t.Rows {
		if v, ok := row[from]; ok {
			row[to] = v
			delete(row, from)
		}
	}
}
