// Package core provides fundamental types and utilities shared by the game
// simulation and the terminal platform. It contains no terminal dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "gonum.org/v1/gonum/spatial/r2"

// Rect is an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in continuous world units.
type Box struct {
	Min, Max r2.Vec
}

// BoxAround returns the box of the given half extents centered on c.
func BoxAround(c r2.Vec, halfW, halfH float64) Box {
	return Box{
		Min: r2.Vec{X: c.X - halfW, Y: c.Y - halfH},
		Max: r2.Vec{X: c.X + halfW, Y: c.Y + halfH},
	}
}

// Overlaps reports whether two boxes share interior area.
// Boxes that only touch along an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	if b.Min.X >= o.Max.X || o.Min.X >= b.Max.X {
		return false
	}
	if b.Min.Y >= o.Max.Y || o.Min.Y >= b.Max.Y {
		return false
	}
	return true
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
