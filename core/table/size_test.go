package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSize(t *testing.T) {
	cases := map[string]struct {
		text string
		want int64
	}{
		"bare-bytes":       {"512", 512},
		"byte-unit":        {"512b", 512},
		"kilobytes":        {"10kb", 10 * 1024},
		"megabytes":        {"2mb", 2 * 1024 * 1024},
		"gigabytes":        {"1gb", 1024 * 1024 * 1024},
		"terabytes":        {"1tb", 1024 * 1024 * 1024 * 1024},
		"uppercase":        {"3MB", 3 * 1024 * 1024},
		"mixed-case":       {"4Kb", 4 * 1024},
		"fractional":       {"3.5kb", 3584},
		"signed-positive":  {"+2kb", 2 * 1024},
		"signed-negative":  {"-1kb", -1024},
		"inner-whitespace": {"10 kb", 10 * 1024},
		"outer-whitespace": {"  10kb  ", 10 * 1024},

		// Malformed input degrades to zero, never an error.
		"empty":        {"", 0},
		"letters-only": {"banana", 0},
		"bad-unit":     {"10xb", 0},
		"bad-number":   {"1.2.3kb", 0},
		"unit-only":    {"kb", 0},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseSize(tc.text))
		})
	}
}

func TestIsSizeColumn(t *testing.T) {
	assert.True(t, IsSizeColumn("Size"))
	assert.True(t, IsSizeColumn("size"))
	assert.True(t, IsSizeColumn("Memory"))
	assert.True(t, IsSizeColumn("MEMORY"))
	assert.False(t, IsSizeColumn("Name"))
	assert.False(t, IsSizeColumn("Sized"))
}
