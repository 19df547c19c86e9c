// Package table turns a spreadsheet grid into a labelled two-dimensional
// lookup, inferring which row and column hold the headers.
package table

// headerScanLimit bounds the window searched for a header row or column.
const headerScanLimit = 50

// Grid is a 1-indexed cell grid. Cells outside 1..MaxRow, 1..MaxCol are
// absent.
type Grid interface {
	MaxRow() int
	MaxCol() int
	Cell(row, col int) Cell
}

// Rows is an in-memory Grid where Rows[r-1][c-1] is cell (r, c).
// Rows may be ragged.
type Rows [][]Cell

func (g Rows) MaxRow() int { return len(g) }

func (g Rows) MaxCol() int {
	n := 0
	for _, row := range g {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

func (g Rows) Cell(row, col int) Cell {
	if row < 1 || row > len(g) || col < 1 || col > len(g[row-1]) {
		return Cell{}
	}
	return g[row-1][col-1]
}

// FromStrings classifies raw string rows with ParseCell.
func FromStrings(rows [][]string) Rows {
	out := make(Rows, len(rows))
	for i, row := range rows {
		out[i] = make([]Cell, len(row))
		for j, s := range row {
			out[i][j] = ParseCell(s)
		}
	}
	return out
}

// Key addresses one value by its labels.
type Key struct {
	Row string
	Col string
}

// Table is a grid re-indexed by header labels.
type Table struct {
	// RowLabels and ColLabels are in sheet order; a label repeated in the
	// header keeps its first position.
	RowLabels []string
	ColLabels []string
	Values    map[Key]Cell

	// HeaderRow and HeaderCol are the 1-based header positions chosen.
	HeaderRow int
	HeaderCol int

	rowSet map[string]struct{}
	colSet map[string]struct{}
}

// HasRow reports whether label is a row label.
func (t *Table) HasRow(label string) bool {
	_, ok := t.rowSet[label]
	return ok
}

// HasCol reports whether label is a column label.
func (t *Table) HasCol(label string) bool {
	_, ok := t.colSet[label]
	return ok
}

// Value returns the cell at (row, col), absent if either label is unknown.
func (t *Table) Value(row, col string) Cell {
	return t.Values[Key{Row: row, Col: col}]
}

// Extract builds a Table from g. Row 1 and column 1 are tried as headers
// first; if either yields no labels, the row and the column with the most
// distinct labels inside the first 50x50 window are used instead, the
// earliest winning ties.
func Extract(g Grid) *Table {
	t := build(g, 1, 1)
	if len(t.RowLabels) > 0 && len(t.ColLabels) > 0 {
		return t
	}
	hr, hc := detectHeaders(g)
	return build(g, hr, hc)
}

func build(g Grid, headerRow, headerCol int) *Table {
	t := &Table{
		HeaderRow: headerRow,
		HeaderCol: headerCol,
		Values:    make(map[Key]Cell),
		rowSet:    make(map[string]struct{}),
		colSet:    make(map[string]struct{}),
	}

	var rowIdx, colIdx []int
	for r := headerRow + 1; r <= g.MaxRow(); r++ {
		label := g.Cell(r, headerCol).Label()
		if label == "" {
			continue
		}
		if _, dup := t.rowSet[label]; dup {
			continue
		}
		t.rowSet[label] = struct{}{}
		t.RowLabels = append(t.RowLabels, label)
		rowIdx = append(rowIdx, r)
	}
	for c := headerCol + 1; c <= g.MaxCol(); c++ {
		label := g.Cell(headerRow, c).Label()
		if label == "" {
			continue
		}
		if _, dup := t.colSet[label]; dup {
			continue
		}
		t.colSet[label] = struct{}{}
		t.ColLabels = append(t.ColLabels, label)
		colIdx = append(colIdx, c)
	}

	for i, rl := range t.RowLabels {
		for j, cl := range t.ColLabels {
			t.Values[Key{Row: rl, Col: cl}] = g.Cell(rowIdx[i], colIdx[j])
		}
	}
	return t
}

func detectHeaders(g Grid) (headerRow, headerCol int) {
	maxR := min(g.MaxRow(), headerScanLimit)
	maxC := min(g.MaxCol(), headerScanLimit)

	headerRow, best := 1, -1
	for r := 1; r <= maxR; r++ {
		seen := make(map[string]struct{})
		for c := 1; c <= maxC; c++ {
			if label := g.Cell(r, c).Label(); label != "" {
				seen[label] = struct{}{}
			}
		}
		if len(seen) > best {
			headerRow, best = r, len(seen)
		}
	}

	headerCol, best = 1, -1
	for c := 1; c <= maxC; c++ {
		seen := make(map[string]struct{})
		for r := 1; r <= maxR; r++ {
			if label := g.Cell(r, c).Label(); label != "" {
				seen[label] = struct{}{}
			}
		}
		if len(seen) > best {
			headerCol, best = c, len(seen)
		}
	}
	return headerRow, headerCol
}
