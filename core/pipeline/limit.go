package pipeline

import (
	"fmt"
	"strconv"

	"github.com/tablesh/tablesh/core/table"
)

// Limit keeps the first N rows in order. N must be a positive integer.
// Limit never reorders; put it after sort-by for a top-N result.
//
// Usage: limit <n>
func Limit(t *table.Table, args []string) (*table.Table, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("usage: limit <n>")
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("limit: %q is not a positive integer", args[0])
	}

	out := t.CloneEmpty()
	for i := 0; i < t.NumRows() && i < n; i++ {
		if err := out.AppendRowFrom(t, i); err != nil {
			return nil, err
		}
	}
	return out, nil
}
