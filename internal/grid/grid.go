package grid

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qgrid/internal/logger"
)

// Grid holds the contents of a terminal surface: rows of styled cells and
// nothing more. Cursor, scroll region and highlight state belong to the
// caller. A Grid is not safe for concurrent use.
type Grid struct {
	cells [][]Cell
}

// New allocates a rows x columns grid of default cells. A non-positive row
// count yields an empty grid.
func New(rows, columns int) *Grid {
	g := &Grid{}
	if rows <= 0 {
		return g
	}
	if columns < 0 {
		columns = 0
	}
	g.cells = make([][]Cell, rows)
	for i := range g.cells {
		g.cells[i] = make([]Cell, columns)
	}
	return g
}

func (g *Grid) Rows() int { return len(g.cells) }

func (g *Grid) Columns() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < g.Columns()
}

// Lookup returns the cell at (row, col) and whether it exists.
func (g *Grid) Lookup(row, col int) (Cell, bool) {
	if !g.inBounds(row, col) {
		return InvalidCell(), false
	}
	return g.cells[row][col], true
}

// Cell returns the cell at (row, col), or InvalidCell when out of range.
func (g *Grid) Cell(row, col int) Cell {
	c, _ := g.Lookup(row, col)
	return c
}

// Set stores c at (row, col). Out of range writes are dropped.
func (g *Grid) Set(row, col int, c Cell) bool {
	if !g.inBounds(row, col) {
		return false
	}
	c.invalid = false
	g.cells[row][col] = c
	return true
}

// Update calls fn with the addressed cell. fn is not called for
// coordinates outside the grid.
func (g *Grid) Update(row, col int, fn func(*Cell)) bool {
	if !g.inBounds(row, col) {
		return false
	}
	c := &g.cells[row][col]
	fn(c)
	c.invalid = false
	return true
}

// Put writes text at (row, col) left to right and returns the number of
// columns consumed. Wide glyphs take two columns, the second holding a
// continuation cell. Writing stops at the first glyph that does not fit.
func (g *Grid) Put(text string, row, col int, st Style) int {
	if !g.inBounds(row, col) {
		return 0
	}
	line := g.cells[row]
	cols := len(line)
	pos := col
	for _, r := range text {
		c := NewCell(r, st)
		width := 1
		if c.wide {
			width = 2
		}
		if pos+width > cols {
			break
		}
		// Overwriting the tail of a wide glyph orphans its head.
		if pos > 0 && line[pos-1].wide {
			line[pos-1] = continuation(line[pos-1])
		}
		line[pos] = c
		if c.wide {
			line[pos+1] = continuation(c)
		}
		pos += width
	}
	return pos - col
}

// ClearAll paints every cell as a blank with background bg.
func (g *Grid) ClearAll(bg tcell.Color) {
	blank := Blank(bg)
	for _, line := range g.cells {
		for j := range line {
			line[j] = blank
		}
	}
}

// ClearRow resets row from startCol to the end of the line.
func (g *Grid) ClearRow(row, startCol int) {
	if !g.inBounds(row, startCol) {
		return
	}
	line := g.cells[row]
	for j := startCol; j < len(line); j++ {
		line[j] = Cell{}
	}
}

// verifyRegion clamps the region end to the grid. The region start must lie
// inside the grid; false means the region is rejected. An end before the
// start collapses to an empty region.
func (g *Grid) verifyRegion(row0, row1, col0, col1 int) (int, int, int, int, bool) {
	rows, cols := g.Rows(), g.Columns()
	if row0 >= rows || col0 >= cols || row1 < 0 || col1 < 0 {
		return row0, row1, col0, col1, false
	}
	row0 = max(row0, 0)
	col0 = max(col0, 0)
	row1 = max(min(row1, rows), row0)
	col1 = max(min(col1, cols), col0)
	return row0, row1, col0, col1, true
}

// ClearRegion blanks the half-open rectangle [row0,row1) x [col0,col1).
func (g *Grid) ClearRegion(row0, col0, row1, col1 int, bg tcell.Color) {
	r0, r1, c0, c1, ok := g.verifyRegion(row0, row1, col0, col1)
	if !ok {
		logger.Debug("clear region is invalid", "row0", row0, "row1", row1, "col0", col0, "col1", col1)
		return
	}
	blank := Blank(bg)
	for i := r0; i < r1; i++ {
		line := g.cells[i]
		for j := c0; j < c1; j++ {
			line[j] = blank
		}
	}
}

// ScrollRegion shifts the contents of [row0,row1) x [col0,col1) by count
// rows. Positive counts move content up towards row0, negative counts move it
// down. Vacated rows are reset and content pushed past the region is lost.
func (g *Grid) ScrollRegion(row0, row1, col0, col1, count int) {
	if count == 0 {
		return
	}
	r0, r1, c0, c1, ok := g.verifyRegion(row0, row1, col0, col1)
	if !ok {
		logger.Debug("scroll region is invalid", "row0", row0, "row1", row1, "col0", col0, "col1", col1)
		return
	}
	if r0 == r1 || c0 == c1 {
		return
	}

	// Walk away from the destination so every source row is read before
	// anything is written over it.
	start, stop, inc := r0, r1, 1
	if count < 0 {
		start, stop, inc = r1-1, r0-1, -1
	}
	for i := start; i != stop; i += inc {
		src := g.cells[i][c0:c1]
		dest := i - count
		if dest >= r0 && dest < r1 {
			copy(g.cells[dest][c0:c1], src)
		}
		clear(src)
	}
}

// Scroll shifts the whole grid by count rows.
func (g *Grid) Scroll(count int) {
	g.ScrollRegion(0, g.Rows(), 0, g.Columns(), count)
}

// Resize changes the grid shape in place, keeping cells at their
// coordinates. Non-positive sizes are ignored.
func (g *Grid) Resize(rows, columns int) {
	if rows <= 0 || columns <= 0 {
		return
	}
	if rows <= len(g.cells) {
		clear(g.cells[rows:])
		g.cells = g.cells[:rows]
	} else {
		g.cells = append(g.cells, make([][]Cell, rows-len(g.cells))...)
	}
	for i, line := range g.cells {
		switch {
		case len(line) == columns:
		case len(line) > columns:
			line = line[:columns:columns]
			// The continuation of a wide glyph in the last column was cut off.
			if line[columns-1].wide {
				line[columns-1] = continuation(line[columns-1])
			}
			g.cells[i] = line
		default:
			grown := make([]Cell, columns)
			copy(grown, line)
			g.cells[i] = grown
		}
	}
}
