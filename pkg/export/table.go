package export

// Table defines tabular export content with a fixed column order.
type Table struct {
	Columns []string
	Rows    [][]string
}

// AddRow appends one record. Rows shorter than the column set are
// padded so renderers never index past the slice.
func (t *Table) AddRow(values ...string) {
	for len(values) < len(t.Columns) {
		values = append(values, "")
	}
	t.Rows = append(t.Rows, values[:len(t.Columns)])
}
