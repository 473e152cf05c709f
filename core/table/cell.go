package table

import (
	"fmt"
	"strconv"
)

// Kind is the variant tag of a Cell. It never changes after the cell is
// created.
type Kind int

const (
	// KindString holds arbitrary text.
	KindString Kind = iota
	// KindInt holds a 64-bit signed integer.
	KindInt
	// KindFloat holds a double-precision float.
	KindFloat
	// KindSize holds text that also denotes a byte quantity, e.g. "10kb".
	// The original string form is kept verbatim.
	KindSize
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindSize:
		return "size"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Cell is a single typed value in a table row. Cells are immutable values;
// assigning one is a full copy, so rows never alias storage.
type Cell struct {
	kind Kind
	s    string
	i    int64
	f    float64
}

// String creates a text cell.
func String(s string) Cell {
	return Cell{kind: KindString, s: s}
}

// Int creates an integer cell.
func Int(i int64) Cell {
	return Cell{kind: KindInt, i: i}
}

// Float creates a floating point cell.
func Float(f float64) Cell {
	return Cell{kind: KindFloat, f: f}
}

// Size creates a size cell, keeping the human-written form verbatim.
func Size(s string) Cell {
	return Cell{kind: KindSize, s: s}
}

// Kind returns the cell's variant tag.
func (c Cell) Kind() Kind {
	return c.kind
}

// IsText reports whether the cell holds text, either plain or size form.
func (c Cell) IsText() bool {
	return c.kind == KindString || c.kind == KindSize
}

// Text returns the display form of the cell.
func (c Cell) Text() string {
	switch c.kind {
	case KindInt:
		return strconv.FormatInt(c.i, 10)
	case KindFloat:
		return strconv.FormatFloat(c.f, 'f', -1, 64)
	default:
		return c.s
	}
}

// Int64 returns the integer payload. Zero for non-integer cells.
func (c Cell) Int64() int64 {
	return c.i
}

// Float64 returns the float payload. Zero for non-float cells.
func (c Cell) Float64() float64 {
	return c.f
}

// Bytes returns the byte quantity a size cell denotes. Malformed size text
// parses as 0, see ParseSize.
func (c Cell) Bytes() int64 {
	return ParseSize(c.s)
}
