// Package sheet provides an immutable in-memory grid of typed cells,
// decoded from one worksheet tab of an xlsx workbook.
//
// The grid is the seam between workbook decoding (excelize, workbook.go)
// and control parsing: the parser only ever sees a rectangle of cells
// addressable by (row, column), so tests can build fixtures with
// GridFromRows and never touch a real workbook.
package sheet

// CellKind distinguishes blank cells from cells carrying a value.
type CellKind int

const (
	Empty CellKind = iota
	Text
)

// Cell is a single grid cell. Numeric and formula results arrive from the
// workbook adapter already formatted as text, so Text covers every
// non-blank value.
type Cell struct {
	Kind  CellKind
	Value string
}

// Text returns the cell's value and whether the cell carries one.
// Empty cells report ("", false).
func (c Cell) Text() (string, bool) {
	if c.Kind == Empty {
		return "", false
	}
	return c.Value, true
}

// Grid is an immutable rectangle of cells. Row and column indices are
// zero-based; reads outside the stored data return an Empty cell, so
// ragged source rows behave as if padded with blanks.
type Grid struct {
	rows  [][]Cell
	width int
}

// GridFromRows builds a grid from raw string rows. An empty string becomes
// an Empty cell; the declared width is the widest row.
func GridFromRows(rows [][]string) *Grid {
	g := &Grid{rows: make([][]Cell, len(rows))}
	for i, r := range rows {
		if len(r) > g.width {
			g.width = len(r)
		}
		cells := make([]Cell, len(r))
		for j, v := range r {
			if v == "" {
				cells[j] = Cell{Kind: Empty}
			} else {
				cells[j] = Cell{Kind: Text, Value: v}
			}
		}
		g.rows[i] = cells
	}
	return g
}

// Width returns the declared width (widest row) of the grid.
func (g *Grid) Width() int { return g.width }

// NumRows returns the number of rows in the grid.
func (g *Grid) NumRows() int { return len(g.rows) }

// Cell returns the cell at (row, col), or an Empty cell when the address
// is outside the stored data.
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= len(g.rows) {
		return Cell{Kind: Empty}
	}
	r := g.rows[row]
	if col < 0 || col >= len(r) {
		return Cell{Kind: Empty}
	}
	return r[col]
}

// Row returns the cells of row i as stored (possibly shorter than Width).
// Returns nil when i is out of range.
func (g *Grid) Row(i int) []Cell {
	if i < 0 || i >= len(g.rows) {
		return nil
	}
	return g.rows[i]
}

// Range returns the sub-rectangle spanning rows r0..r1 and columns c0..c1
// inclusive, clamped to the grid. The result shares no state with g.
func (g *Grid) Range(r0, c0, r1, c1 int) *Grid {
	out := &Grid{}
	for r := r0; r <= r1; r++ {
		if r < 0 || r >= len(g.rows) {
			continue
		}
		var cells []Cell
		for c := c0; c <= c1; c++ {
			cells = append(cells, g.Cell(r, c))
		}
		if len(cells) > out.width {
			out.width = len(cells)
		}
		out.rows = append(out.rows, cells)
	}
	return out
}
