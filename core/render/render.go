// Package render prints finished tables to a terminal.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/tablesh/tablesh/core/table"
)

var headerColor = color.New(color.FgCyan, color.Bold)

// Printer writes tables in aligned columns. When Color is set the header row
// is highlighted.
type Printer struct {
	Out   io.Writer
	Color bool
}

// Print renders the table. An empty table still shows its headers followed
// by an "(empty)" notice.
func (p *Printer) Print(t *table.Table) error {
	tw := tabwriter.NewWriter(p.Out, 0, 0, 2, ' ', 0)

	headers := t.Headers()
	if p.Color {
		for i, h := range headers {
			headers[i] = headerColor.Sprint(h)
		}
	}
	if _, err := fmt.Fprintln(tw, strings.Join(headers, "\t")); err != nil {
		return err
	}

	for i := 0; i < t.NumRows(); i++ {
		cells := make([]string, t.NumCols())
		for j := range cells {
			cells[j] = t.At(i, j).Text()
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if t.NumRows() == 0 {
		_, err := fmt.Fprintln(p.Out, "(empty)")
		return err
	}
	return nil
}
