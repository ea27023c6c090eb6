package types

import (
	"reflect"
	"sort"
)

// Table is the tabular projection of a query result: one row per loaded
// record, columns the union of the rows' keys. Rows keep the record
// enumeration order; filtering removes rows but never reorders them, so
// a record list and its table stay index-aligned until Select re-indexes.
type Table struct {
	columns []string
	seen    map[string]bool
	rows    []map[string]any
}

// NewTable returns an empty table with no columns.
func NewTable() *Table {
	return &Table{seen: make(map[string]bool)}
}

// AddRow appends one row. Keys not yet part of the table become new
// columns, appended in sorted order so the column union is deterministic.
func (t *Table) AddRow(row map[string]any) {
	var added []string
	for k := range row {
		if !t.seen[k] {
			added = append(added, k)
		}
	}
	sort.Strings(added)
	for _, k := range added {
		t.seen[k] = true
		t.columns = append(t.columns, k)
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns the column names in table order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Row returns the row at index i.
func (t *Table) Row(i int) map[string]any { return t.rows[i] }

// Value returns the cell at (i, column). ok is false when the row has no
// value for that column.
func (t *Table) Value(i int, column string) (any, bool) {
	v, ok := t.rows[i][column]
	return v, ok
}

// MatchIndices returns the indices of rows whose value for every filter
// field is a member of that field's accepted set, in row order. A row
// missing a filtered field fails the filter. An empty filter keeps every
// row, and filtering an empty table yields no indices regardless of the
// field names given.
func (t *Table) MatchIndices(filters map[string][]any) []int {
	kept := make([]int, 0, len(t.rows))
	for i, row := range t.rows {
		if matchRow(row, filters) {
			kept = append(kept, i)
		}
	}
	return kept
}

// Select returns a fresh table holding the rows at the given indices,
// re-indexed from zero. The column set and order are preserved.
func (t *Table) Select(indices []int) *Table {
	out := NewTable()
	out.columns = append(out.columns, t.columns...)
	for _, c := range t.columns {
		out.seen[c] = true
	}
	for _, i := range indices {
		out.rows = append(out.rows, t.rows[i])
	}
	return out
}

func matchRow(row map[string]any, filters map[string][]any) bool {
	for field, accepted := range filters {
		v, ok := row[field]
		if !ok {
			return false
		}
		if !containsValue(accepted, v) {
			return false
		}
	}
	return true
}

func containsValue(accepted []any, v any) bool {
	for _, a := range accepted {
		if valueEqual(a, v) {
			return true
		}
	}
	return false
}

// valueEqual compares two cell values. Numeric values compare by value
// across int, uint, and float kinds, since JSON decoding yields float64
// while record projections may carry ints. Everything else compares with
// reflect.DeepEqual.
func valueEqual(a, b any) bool {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		return ok && af == bf
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
