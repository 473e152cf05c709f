package pipeline

import (
	"fmt"
	"sort"

	"github.com/tablesh/tablesh/core/table"
)

// SortBy orders rows by the given field, ascending unless the optional
// direction token is "desc" or "descending".
//
// The sort is stable: rows with equal keys keep their input order. Descending
// negates the comparator instead of reversing the input, so ties keep their
// original relative order in both directions.
//
// Usage: sort-by <field> [asc|desc]
func SortBy(t *table.Table, args []string) (*table.Table, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, fmt.Errorf("usage: sort-by <field> [asc|desc]")
	}

	direction := 1
	if len(args) == 2 {
		switch args[1] {
		case "desc", "descending":
			direction = -1
		}
	}

	col, ok := t.Column(args[0])
	if !ok {
		return nil, errUnknownField(t, args[0])
	}
	header := t.Header(col)

	out := t.Clone()
	rows := make([]int, out.NumRows())
	for i := range rows {
		rows[i] = i
	}
	sort.SliceStable(rows, func(i, j int) bool {
		cmp := compareCells(header, out.At(rows[i], col), out.At(rows[j], col))
		return direction*cmp < 0
	})

	sorted := t.CloneEmpty()
	for _, i := range rows {
		if err := sorted.AppendRowFrom(out, i); err != nil {
			return nil, err
		}
	}
	return sorted, nil
}
