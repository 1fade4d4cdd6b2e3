// Package table holds the in-memory candidate/job-event table the pipeline
// stages pass between each other, plus its CSV input and output.
package table

// Row is a single candidate/job event keyed by column name. Absent columns
// read as Missing.
type Row map[string]Value

// Get returns the cell for the named column, or Missing when the column is
// not set on this row.
func (r Row) Get(column string) Value {
	v, ok := r[column]
	if !ok {
		return Missing
	}
	return v
}

// Set stores a cell on the row.
func (r Row) Set(column string, v Value) {
	r[column] = v
}

// Table is an ordered collection of rows sharing one header.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given header.
func New(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the header contains the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column to the header if it is not already present.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := New(t.Columns)
	out.Rows = make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		cp := make(Row, len(r))
		for k, v := range r {
			cp[k] = v
		}
		out.Rows = append(out.Rows, cp)
	}
	return out
}

// KeepColumns drops every column not listed. Requested columns absent from
// the header are ignored.
func (t *Table) KeepColumns(keep []string) {
	wanted := make(map[string]bool, len(keep))
	for _, c := range keep {
		wanted[c] = true
	}

	kept := make([]string, 0, len(keep))
	for _, c := range t.Columns {
		if wanted[c] {
			kept = append(kept, c)
		}
	}
	t.Columns = kept

	keepSet := make(map[string]bool, len(kept))
	for _, c := range kept {
		keepSet[c] = true
	}
	for _, r := range t.Rows {
		for k := range r {
			if !keepSet[k] {
				delete(r, k)
			}
		}
	}
}

// Group is a set of row indices sharing one key value.
type Group struct {
	Key  string
	Rows []int
}

// GroupBy buckets row indices by the raw value of the given column, in
// first-encounter order. Missing cells group under the empty key.
func (t *Table) GroupBy(column string) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)
	for i, r := range t.Rows {
		key := r.Get(column).String()
		gi, ok := index[key]
		if !ok {
			gi = len(groups)
			index[key] = gi
			groups = append(groups, Group{Key: key})
		}
		groups[gi].Rows = append(groups[gi].Rows, i)
	}
	return groups
}
