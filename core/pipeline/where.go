package pipeline

import (
	"fmt"

	"github.com/tablesh/tablesh/core/table"
)

// whereOps maps comparison operators to predicates over a three-way
// comparison result. The set is closed: != is intentionally not an operator
// here and must not be added without a grammar revision.
var whereOps = map[string]func(cmp int) bool{
	">":  func(cmp int) bool { return cmp > 0 },
	"<":  func(cmp int) bool { return cmp < 0 },
	"==": func(cmp int) bool { return cmp == 0 },
	">=": func(cmp int) bool { return cmp >= 0 },
	"<=": func(cmp int) bool { return cmp <= 0 },
}

// Where keeps the rows whose cell in the given field compares true against a
// literal value. Row order is preserved; an empty result is not an error.
//
// Usage: where <field> <op> <value>
func Where(t *table.Table, args []string) (*table.Table, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("usage: where <field> <op> <value>")
	}
	field, op, literal := args[0], args[1], args[2]

	pred, ok := whereOps[op]
	if !ok {
		return nil, fmt.Errorf("unknown operator %q (expected one of >, <, ==, >=, <=)", op)
	}

	col, ok := t.Column(field)
	if !ok {
		return nil, errUnknownField(t, field)
	}
	header := t.Header(col)

	out := t.CloneEmpty()
	for i := 0; i < t.NumRows(); i++ {
		if pred(compareLiteral(header, t.At(i, col), literal)) {
			if err := out.AppendRowFrom(t, i); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
