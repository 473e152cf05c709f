package pipeline

import (
	"fmt"
	"strings"

	"github.com/tablesh/tablesh/core/table"
)

// Contains keeps the rows whose cell in the given field contains the
// substring, case-insensitively. Only text-like cells (plain strings and
// sizes) participate; a row with a numeric cell at the field is excluded
// without error, so contains over a purely numeric column yields an empty
// table.
//
// Usage: contains <field> <substring>
func Contains(t *table.Table, args []string) (*table.Table, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("usage: contains <field> <substring>")
	}

	col, ok := t.Column(args[0])
	if !ok {
		return nil, errUnknownField(t, args[0])
	}
	needle := strings.ToLower(args[1])

	out := t.CloneEmpty()
	for i := 0; i < t.NumRows(); i++ {
		cell := t.At(i, col)
		if !cell.IsText() {
			continue
		}
		if strings.Contains(strings.ToLower(cell.Text()), needle) {
			if err := out.AppendRowFrom(t, i); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
