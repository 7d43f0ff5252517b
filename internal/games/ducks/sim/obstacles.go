package sim

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/dutiful-ducks/internal/core"
)

// Obstacles is the blocking set the player collides against: one square per
// wall and tree cell. Cells can be suspended to let the player into a tree.
type Obstacles struct {
	grid   *Grid
	active []bool
	cells  []Cell
}

// NewObstacles collects every blocked cell of g in row-major order.
func NewObstacles(g *Grid) *Obstacles {
	o := &Obstacles{grid: g, active: make([]bool, g.rows*g.cols)}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := C(r, c)
			if g.Blocked(cell) {
				o.cells = append(o.cells, cell)
				o.active[g.index(cell)] = true
			}
		}
	}
	return o
}

// Active reports whether c currently blocks movement.
func (o *Obstacles) Active(c Cell) bool {
	return o.grid.InBounds(c) && o.active[o.grid.index(c)]
}

// Suspend removes c from the blocking set. Suspending twice is harmless.
func (o *Obstacles) Suspend(c Cell) {
	if o.grid.InBounds(c) {
		o.active[o.grid.index(c)] = false
	}
}

// Restore returns c to the blocking set if it is an obstacle cell.
// Restoring an already active cell leaves a single entry.
func (o *Obstacles) Restore(c Cell) {
	if o.grid.InBounds(c) && o.grid.Blocked(c) {
		o.active[o.grid.index(c)] = true
	}
}

// Nearest returns the obstacle cell whose center is closest to p and its
// distance. Ties keep the first cell in row-major order.
func (o *Obstacles) Nearest(p r2.Vec) (Cell, float64, bool) {
	var (
		best  Cell
		bestD float64
		found bool
	)
	for _, c := range o.cells {
		d := r2.Norm(r2.Sub(o.grid.ToWorld(c), p))
		if !found || d < bestD {
			best, bestD, found = c, d, true
		}
	}
	return best, bestD, found
}

// Hits reports whether b overlaps any active obstacle.
// Only the cells b spans are tested; cells outside the grid always block.
func (o *Obstacles) Hits(b core.Box) bool {
	lo := o.grid.ToCell(b.Min)
	hi := o.grid.ToCell(b.Max)
	for r := lo.Row; r <= hi.Row; r++ {
		for c := lo.Col; c <= hi.Col; c++ {
			cell := C(r, c)
			blocking := !o.grid.InBounds(cell) || o.active[o.grid.index(cell)]
			if blocking && b.Overlaps(o.grid.CellBox(cell)) {
				return true
			}
		}
	}
	return false
}
