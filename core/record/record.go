package record

// Row holds one record as a column-name -> value map.
// A missing key and a nil value both mean "no data in this column".
type Row map[string]any

// Table is an ordered collection of rows. Columns preserves the column order
// of the originating source (SELECT column list, first-seen API field order).
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable creates an empty table with the given column order.
func NewTable(columns ...string) *Table {
	return &Table{Columns: columns, Rows: []Row{}}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Empty reports whether the table holds no rows.
func (t *Table) Empty() bool {
	return t.Len() == 0
}

// Append adds a row to the table.
func (t *Table) Append(r Row) {
	t.Rows = append(t.Rows, r)
}

// HasColumn reports whether the column is part of the table schema.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column to the schema unless it is already present.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// Copy returns a shallow copy of the table: the column slice and the row slice
// are fresh, the row maps are shared with the original.
func (t *Table) Copy() *Table {
	out := &Table{
		Columns: append([]string{}, t.Columns...),
		Rows:    append([]Row{}, t.Rows...),
	}
	return out
}
