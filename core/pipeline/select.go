package pipeline

import (
	"fmt"
	"strings"

	"github.com/tablesh/tablesh/core/table"
)

// Select projects the table down to the requested fields, in the requested
// order. Fields may be given as separate arguments, as one comma-separated
// argument, or any mixture; tokens are trimmed before lookup. Selecting the
// same source column twice yields two output columns.
//
// Resolution is fail-fast: the first unknown field aborts the projection and
// no partial table escapes.
//
// Usage: select <field>[,<field>...] | <field> <field> ...
func Select(t *table.Table, args []string) (*table.Table, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("usage: select <field>[,<field>...]")
	}

	var fields []string
	for _, arg := range args {
		for _, tok := range strings.Split(arg, ",") {
			tok = strings.TrimSpace(tok)
			if tok != "" {
				fields = append(fields, tok)
			}
		}
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("usage: select <field>[,<field>...]")
	}

	cols := make([]int, len(fields))
	for i, field := range fields {
		col, ok := t.Column(field)
		if !ok {
			return nil, errUnknownField(t, field)
		}
		cols[i] = col
	}

	out := table.New(fields...)
	for i := 0; i < t.NumRows(); i++ {
		row := make([]table.Cell, len(cols))
		for j, col := range cols {
			row[j] = t.At(i, col)
		}
		if err := out.AddRow(row...); err != nil {
			return nil, err
		}
	}
	return out, nil
}
