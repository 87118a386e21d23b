package record

import "sort"

// Table is a read-only lookup of enrichment payloads keyed by entity id or
// name. Payloads never leave the table by reference.
type Table struct {
	rows map[string]Record
}

// NewTable builds a table from rows. The rows are deep-copied so later changes
// to the argument do not leak into the table.
func NewTable(rows map[string]Record) *Table {
	t := &Table{rows: make(map[string]Record, len(rows))}
	for k, v := range rows {
		t.rows[k] = Clone(v)
	}
	return t
}

// Lookup returns a private copy of the payload stored under key.
func (t *Table) Lookup(key string) (Record, bool) {
	if t == nil {
		return nil, false
	}
	row, ok := t.rows[key]
	if !ok {
		return nil, false
	}
	return Clone(row), true
}

// Enrich merges the payload stored under key into target. A missing key is not
// an error; target is left untouched and Enrich reports false.
func (t *Table) Enrich(target Record, key string) bool {
	extra, ok := t.Lookup(key)
	if !ok {
		return false
	}
	DeepMerge(target, extra)
	return true
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Keys returns the row keys in sorted order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.rows))
	for k := range t.rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
