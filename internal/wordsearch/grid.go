package wordsearch

import "strings"

// Grid is a rectangular matrix of letters stored in row-major order.
// A zero rune marks a cell that has not been written yet; after generation
// completes every cell holds an uppercase letter.
type Grid struct {
	rows  int
	cols  int
	cells []rune
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]rune, rows*cols),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the letter at c, or 0 if c is out of bounds or unwritten.
func (g *Grid) At(c Coord) rune {
	if !g.InBounds(c) {
		return 0
	}
	return g.cells[g.index(c)]
}

// IsEmpty reports whether the in-bounds cell at c has not been written.
func (g *Grid) IsEmpty(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c)] == 0
}

func (g *Grid) set(c Coord, r rune) {
	if g.InBounds(c) {
		g.cells[g.index(c)] = r
	}
}

// Read returns n letters starting at anchor and stepping along d.
// Reading stops early at the grid edge.
func (g *Grid) Read(anchor Coord, d Direction, n int) string {
	dr, dc := d.Step()
	var sb strings.Builder
	cur := anchor
	for i := 0; i < n && g.InBounds(cur); i++ {
		sb.WriteRune(g.At(cur))
		cur = cur.Add(dr, dc)
	}
	return sb.String()
}

// Complete reports whether every cell holds an uppercase letter A-Z.
func (g *Grid) Complete() bool {
	for _, r := range g.cells {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Row returns row r as a string. Unwritten cells render as '.'.
func (g *Grid) Row(r int) string {
	if r < 0 || r >= g.rows {
		return ""
	}
	var sb strings.Builder
	sb.Grow(g.cols)
	for c := 0; c < g.cols; c++ {
		ch := g.cells[r*g.cols+c]
		if ch == 0 {
			ch = '.'
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	lines := make([]string, g.rows)
	for r := range lines {
		lines[r] = g.Row(r)
	}
	return strings.Join(lines, "\n")
}
