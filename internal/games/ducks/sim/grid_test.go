package sim

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestGridRoundTrip(t *testing.T) {
	g := NewGrid(16, 16, 68)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := C(r, c)
			if got := g.ToCell(g.ToWorld(cell)); got != cell {
				t.Fatalf("ToCell(ToWorld(%v)) = %v", cell, got)
			}
		}
	}
}

func TestGridCellCenter(t *testing.T) {
	g := NewGrid(16, 16, 68)
	got := g.ToWorld(C(2, 3))
	want := r2.Vec{X: 3*68 + 34, Y: 2*68 + 34}
	if got != want {
		t.Errorf("ToWorld(2,3) = %v, want %v", got, want)
	}
	if c := g.ToCell(r2.Vec{X: 67.9, Y: 68}); c != C(1, 0) {
		t.Errorf("ToCell floor = %v, want (1,0)", c)
	}
	if c := g.ToCell(r2.Vec{X: -1, Y: -1}); c != C(-1, -1) {
		t.Errorf("ToCell negative = %v, want (-1,-1)", c)
	}
}

func TestGridBoundaryBlocked(t *testing.T) {
	g := NewGrid(16, 16, 68)
	ring := g.BoundaryRing()
	if len(ring) != 60 {
		t.Fatalf("ring has %d cells, want 60", len(ring))
	}
	for _, c := range ring {
		if !g.Blocked(c) {
			t.Errorf("boundary %v not blocked", c)
		}
		if !g.IsBoundary(c) {
			t.Errorf("IsBoundary(%v) = false", c)
		}
	}
	for _, c := range g.Interior() {
		if g.Blocked(c) {
			t.Errorf("interior %v blocked on a fresh grid", c)
		}
	}
}

func TestGridOutOfRangeIsBlocked(t *testing.T) {
	g := NewGrid(16, 16, 68)
	for _, c := range []Cell{C(-1, 3), C(3, -1), C(16, 0), C(0, 16), C(100, 100)} {
		if !g.Blocked(c) {
			t.Errorf("Blocked(%v) = false, want true", c)
		}
		if g.At(c) != Blocked {
			t.Errorf("At(%v) = %v, want Blocked", c, g.At(c))
		}
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(16, 12, 10)
	b := g.Bounds()
	if b.Min != (r2.Vec{}) || b.Max != (r2.Vec{X: 120, Y: 160}) {
		t.Errorf("Bounds = %+v", b)
	}
}
