package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tablesh/tablesh/core/table"
)

// compareCells orders two cells from the named column. Size-designated
// columns compare by parsed byte count, numeric cells numerically, and
// everything else case-insensitively as text.
func compareCells(column string, a, b table.Cell) int {
	if table.IsSizeColumn(column) {
		return compareInt64(a.Bytes(), b.Bytes())
	}

	switch {
	case a.Kind() == table.KindInt && b.Kind() == table.KindInt:
		return compareInt64(a.Int64(), b.Int64())
	case a.Kind() == table.KindFloat && b.Kind() == table.KindFloat:
		return compareFloat64(a.Float64(), b.Float64())
	default:
		return compareFold(a.Text(), b.Text())
	}
}

// compareLiteral orders a cell from the named column against a user-supplied
// literal, using the same type rules as compareCells.
func compareLiteral(column string, cell table.Cell, literal string) int {
	if table.IsSizeColumn(column) {
		return compareInt64(cell.Bytes(), table.ParseSize(literal))
	}

	switch cell.Kind() {
	case table.KindInt:
		if v, err := strconv.ParseInt(literal, 10, 64); err == nil {
			return compareInt64(cell.Int64(), v)
		}
	case table.KindFloat:
		if v, err := strconv.ParseFloat(literal, 64); err == nil {
			return compareFloat64(cell.Float64(), v)
		}
	}

	return compareFold(cell.Text(), literal)
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// errUnknownField builds the diagnostic for a field that doesn't resolve,
// naming the fields that would have.
func errUnknownField(t *table.Table, name string) error {
	return fmt.Errorf("unknown field %q (available fields: %s)", name, strings.Join(t.Headers(), ", "))
}
