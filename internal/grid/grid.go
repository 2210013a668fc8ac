// Package grid holds the boolean cell matrix the sandbox edits and evolves.
package grid

import "strings"

// Grid is a rectangular cell matrix stored row-major. Dimensions are
// always at least 1×1 and every row has the same length.
type Grid struct {
	w, h  int
	cells [][]bool
}

// New returns an all-dead grid of the given dimensions, clamped to 1×1.
func New(w, h int) *Grid {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	cells := make([][]bool, h)
	for y := range cells {
		cells[y] = make([]bool, w)
	}
	return &Grid{w: w, h: h, cells: cells}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Get reports whether the cell at (x, y) is alive. Coordinates outside
// the grid read as dead, which gives the evolution rule its clamped
// non-wrapping boundary.
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return false
	}
	return g.cells[y][x]
}

// Set writes the cell at (x, y). The caller keeps coordinates in bounds.
func (g *Grid) Set(x, y int, alive bool) { g.cells[y][x] = alive }

// Toggle flips the cell at (x, y). The caller keeps coordinates in bounds.
func (g *Grid) Toggle(x, y int) { g.cells[y][x] = !g.cells[y][x] }

// Resize reallocates the grid to w×h. Cell values are preserved anchored
// at the top-left overlap; new cells start dead, truncated cells are
// discarded. Total for any dimensions (non-positive values clamp to 1).
func (g *Grid) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	cells := make([][]bool, h)
	for y := range cells {
		cells[y] = make([]bool, w)
		if y < g.h {
			copy(cells[y], g.cells[y])
		}
	}
	g.w, g.h, g.cells = w, h, cells
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = false
		}
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				n++
			}
		}
	}
	return n
}

// Render maps the grid to text: one line per row, live cells as fg and
// dead cells as bg, rows joined by newlines with no padding.
func (g *Grid) Render(fg, bg rune) string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, alive := range row {
			if alive {
				b.WriteRune(fg)
			} else {
				b.WriteRune(bg)
			}
		}
	}
	return b.String()
}
