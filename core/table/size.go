package table

import (
	"strconv"
	"strings"
)

var sizeUnits = map[string]int64{
	"":   1,
	"b":  1,
	"kb": 1 << 10,
	"mb": 1 << 20,
	"gb": 1 << 30,
	"tb": 1 << 40,
}

// ParseSize converts a human-written size like "10kb" or "3.5MB" to a byte
// count. The number may be signed and fractional, whitespace may separate it
// from the unit, and units are case-insensitive ({b, kb, mb, gb, tb},
// missing unit means bytes).
//
// Malformed input parses as 0 rather than failing. Callers relying on size
// ordering must tolerate this: a garbage size sorts as zero bytes.
func ParseSize(text string) int64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	split := len(text)
	for split > 0 {
		ch := text[split-1]
		if ch >= '0' && ch <= '9' || ch == '.' {
			break
		}
		split--
	}

	number := strings.TrimSpace(text[:split])
	unit := strings.ToLower(strings.TrimSpace(text[split:]))

	multiplier, ok := sizeUnits[unit]
	if !ok {
		return 0
	}

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0
	}

	return int64(value * float64(multiplier))
}

// IsSizeColumn reports whether a column holds byte quantities by the naming
// convention shared between producers and filters.
func IsSizeColumn(name string) bool {
	switch strings.ToLower(name) {
	case "size", "memory":
		return true
	default:
		return false
	}
}
