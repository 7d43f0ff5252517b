// Package sim is the Dutiful Ducks world model: the grid index, the path
// graph over it, procedural layout, agent motion, the player interaction
// state machine and collision resolution. It has no terminal, audio or
// storage dependencies; the platform drives it through Sim.Advance.
package sim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/dutiful-ducks/internal/core"
)

// Cell addresses one grid square by row and column.
type Cell struct {
	Row int
	Col int
}

// C is a convenience constructor for Cell.
func C(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the cell offset by (dr, dc).
func (c Cell) Add(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Occupancy is the static state of a grid cell.
type Occupancy uint8

const (
	Empty Occupancy = iota
	Blocked
)

// Grid maps cells to occupancy and converts between grid and world coordinates.
// Cells are stored in row-major order: index = row*cols + col.
// The boundary ring is blocked on creation; layout marks trees blocked once
// during setup and the grid is never resized afterwards.
type Grid struct {
	rows int
	cols int
	tile float64
	occ  []Occupancy
}

// NewGrid creates a grid with its boundary ring already walled.
func NewGrid(rows, cols int, tile float64) *Grid {
	g := &Grid{
		rows: rows,
		cols: cols,
		tile: tile,
		occ:  make([]Occupancy, rows*cols),
	}
	for _, c := range g.BoundaryRing() {
		g.block(c)
	}
	return g
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// TileSize returns the world size of one cell edge.
func (g *Grid) TileSize() float64 { return g.tile }

func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// InBounds returns true if the cell lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsBoundary reports whether c is part of the outer wall ring.
func (g *Grid) IsBoundary(c Cell) bool {
	return g.InBounds(c) && (c.Row == 0 || c.Col == 0 || c.Row == g.rows-1 || c.Col == g.cols-1)
}

// Blocked reports whether c is a wall or tree.
// Out-of-range cells are treated as walls.
func (g *Grid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.occ[g.index(c)] == Blocked
}

// At returns the occupancy of c; out-of-range cells are Blocked.
func (g *Grid) At(c Cell) Occupancy {
	if g.Blocked(c) {
		return Blocked
	}
	return Empty
}

func (g *Grid) block(c Cell) {
	if g.InBounds(c) {
		g.occ[g.index(c)] = Blocked
	}
}

// BoundaryRing lists the outer wall cells in row-major order.
func (g *Grid) BoundaryRing() []Cell {
	var ring []Cell
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if r == 0 || c == 0 || r == g.rows-1 || c == g.cols-1 {
				ring = append(ring, C(r, c))
			}
		}
	}
	return ring
}

// Interior lists every non-boundary cell in row-major order.
func (g *Grid) Interior() []Cell {
	var cells []Cell
	for r := 1; r < g.rows-1; r++ {
		for c := 1; c < g.cols-1; c++ {
			cells = append(cells, C(r, c))
		}
	}
	return cells
}

// ToWorld returns the world position of the center of c.
func (g *Grid) ToWorld(c Cell) r2.Vec {
	return r2.Vec{
		X: float64(c.Col)*g.tile + g.tile/2,
		Y: float64(c.Row)*g.tile + g.tile/2,
	}
}

// ToCell returns the cell containing the world point p (floor division).
func (g *Grid) ToCell(p r2.Vec) Cell {
	return Cell{
		Row: int(math.Floor(p.Y / g.tile)),
		Col: int(math.Floor(p.X / g.tile)),
	}
}

// CellBox returns the world-space square covered by c.
func (g *Grid) CellBox(c Cell) core.Box {
	half := g.tile / 2
	return core.BoxAround(g.ToWorld(c), half, half)
}

// Bounds returns the world rectangle spanned by the whole grid.
func (g *Grid) Bounds() core.Box {
	return core.Box{
		Max: r2.Vec{X: float64(g.cols) * g.tile, Y: float64(g.rows) * g.tile},
	}
}
