package diff

import (
	"math"
	"strconv"
	"strings"

	"github.com/bgeun31/nettools/internal/table"
)

// epsilon is the largest numeric difference still treated as equal.
const epsilon = 1e-9

// Equal reports whether two cells hold the same value under the tolerant
// rule: two empty cells are equal; two numeric cells (numbers, or text that
// parses as a number once all whitespace is removed) are equal within
// 1e-9; otherwise their string forms are compared with all whitespace
// removed. Equal is symmetric.
func Equal(a, b table.Cell) bool {
	if a.IsEmpty() && b.IsEmpty() {
		return true
	}
	if x, ok := numeric(a); ok {
		if y, ok := numeric(b); ok {
			return math.Abs(x-y) < epsilon
		}
	}
	return squash(a.String()) == squash(b.String())
}

func numeric(c table.Cell) (float64, bool) {
	switch c.Kind {
	case table.Number:
		if math.IsNaN(c.Num) {
			return 0, false
		}
		return c.Num, true
	case table.Text:
		s := squash(c.Str)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// squash removes every whitespace rune.
func squash(s string) string {
	return strings.Join(strings.Fields(s), "")
}
