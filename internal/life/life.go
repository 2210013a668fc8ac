// Package life computes generations of a generalized Game of Life.
//
// The rule takes two thresholds. A cell whose Moore-neighbor count equals
// birth becomes alive no matter its current state. Otherwise a live cell
// survives iff its count falls in the half-open band [live, birth); with
// live=2, birth=3 this reduces to the classic rule. A band with
// birth <= live is empty and simply never matches.
package life

import (
	"runtime"
	"sync"

	"github.com/lifepad/lifepad/internal/grid"
)

// Step returns the next generation of g. The input grid is never
// mutated, so repeated calls with the same arguments give identical
// results. Neighbors beyond the grid edge count as dead.
//
// Rows of the output are computed in parallel: every worker only reads g
// and writes a disjoint set of result rows, so no locking is needed and
// the result is ready once all workers finish.
func Step(g *grid.Grid, live, birth int) *grid.Grid {
	w, h := g.Width(), g.Height()
	next := grid.New(w, h)

	workers := runtime.NumCPU()
	if workers > h {
		workers = h
	}

	rows := make(chan int, h)
	for y := 0; y < h; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				stepRow(g, next, y, live, birth)
			}
		}()
	}
	wg.Wait()

	return next
}

func stepRow(g, next *grid.Grid, y, live, birth int) {
	for x := 0; x < g.Width(); x++ {
		n := neighbors(g, x, y)
		switch {
		case n == birth:
			next.Set(x, y, true)
		case g.Get(x, y) && live <= n && n < birth:
			next.Set(x, y, true)
		}
	}
}

func neighbors(g *grid.Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Get(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}
