package table

import (
	"fmt"
	"strings"
)

// Table is an ordered set of named columns plus an ordered list of rows.
// Every row has exactly one cell per header.
//
// A Table exclusively owns its headers and cells. Operations that derive a
// new table from an old one copy every cell they retain, so two tables never
// share storage and a half-built table can be dropped without affecting its
// input.
type Table struct {
	headers []string
	rows    [][]Cell
}

// New creates an empty table with the given column headers.
func New(headers ...string) *Table {
	t := &Table{headers: make([]string, len(headers))}
	copy(t.headers, headers)
	return t
}

// Headers returns a copy of the column names in order.
func (t *Table) Headers() []string {
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out
}

// Header returns the name of column i.
func (t *Table) Header(i int) string {
	return t.headers[i]
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.headers)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// At returns the cell at the given row and column.
func (t *Table) At(row, col int) Cell {
	return t.rows[row][col]
}

// AddRow appends a row. The cell count must match the header count.
func (t *Table) AddRow(cells ...Cell) error {
	if len(cells) != len(t.headers) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.headers))
	}
	row := make([]Cell, len(cells))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return nil
}

// MustAddRow is AddRow for rows whose shape is known statically.
func (t *Table) MustAddRow(cells ...Cell) {
	if err := t.AddRow(cells...); err != nil {
		panic(err)
	}
}

// Column resolves a field name to a column index. Names match
// case-insensitively; "Size" and "size" name the same column. Resolution
// happens per call, headers are never assumed stable across tables.
func (t *Table) Column(name string) (int, bool) {
	for i, h := range t.headers {
		if strings.EqualFold(h, name) {
			return i, true
		}
	}
	return 0, false
}

// CloneEmpty returns a new table with copied headers and no rows.
func (t *Table) CloneEmpty() *Table {
	return New(t.headers...)
}

// Clone returns a full value copy of the table.
func (t *Table) Clone() *Table {
	out := t.CloneEmpty()
	out.rows = make([][]Cell, 0, len(t.rows))
	for _, row := range t.rows {
		cp := make([]Cell, len(row))
		copy(cp, row)
		out.rows = append(out.rows, cp)
	}
	return out
}

// AppendRowFrom copies row i of src into t. Both tables must have the same
// column count.
func (t *Table) AppendRowFrom(src *Table, i int) error {
	return t.AddRow(src.rows[i]...)
}
