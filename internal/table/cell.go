package table

import (
	"strconv"
	"strings"
)

// Kind classifies a cell value.
type Kind int

const (
	Absent Kind = iota
	Number
	Text
)

// Cell is one grid value. Number cells keep the text they were read from so
// they render the way the source wrote them.
type Cell struct {
	Kind Kind
	Num  float64
	Str  string
}

// TextCell returns a text cell.
func TextCell(s string) Cell { return Cell{Kind: Text, Str: s} }

// NumberCell returns a number cell.
func NumberCell(f float64) Cell {
	return Cell{Kind: Number, Num: f, Str: strconv.FormatFloat(f, 'f', -1, 64)}
}

// ParseCell classifies raw container text: "" is absent, anything
// strconv.ParseFloat accepts is a number, everything else is text.
func ParseCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Cell{Kind: Number, Num: f, Str: s}
	}
	return TextCell(s)
}

// String renders the cell; absent cells render as "".
func (c Cell) String() string {
	switch c.Kind {
	case Number:
		if c.Str != "" {
			return c.Str
		}
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case Text:
		return c.Str
	}
	return ""
}

// Label is the trimmed string form used for header matching.
func (c Cell) Label() string {
	return strings.TrimSpace(c.String())
}

// IsEmpty reports whether the cell is absent or blank text.
func (c Cell) IsEmpty() bool {
	return c.Kind == Absent || (c.Kind == Text && strings.TrimSpace(c.Str) == "")
}
