package sim

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/dutiful-ducks/internal/core"
)

// Mode is the player's interaction state. Exactly one holds at a time.
type Mode uint8

const (
	Roaming Mode = iota
	SelectingTree
	InTree
	SelectingDescent
)

func (m Mode) String() string {
	switch m {
	case Roaming:
		return "roaming"
	case SelectingTree:
		return "selecting_tree"
	case InTree:
		return "in_tree"
	case SelectingDescent:
		return "selecting_descent"
	default:
		return "unknown"
	}
}

// Marker is a selectable descent target next to the player's tree.
type Marker struct {
	Cell Cell
	Dir  core.Action
}

// directionTo names the axis step from a to an adjacent cell b.
func directionTo(a, b Cell) core.Action {
	switch {
	case b.Row > a.Row:
		return core.ActionDown
	case b.Row < a.Row:
		return core.ActionUp
	case b.Col > a.Col:
		return core.ActionRight
	case b.Col < a.Col:
		return core.ActionLeft
	default:
		return core.ActionNone
	}
}

// applyEvent performs one input event as an atomic transition.
// Events with no meaning in the current mode are ignored.
func (s *Sim) applyEvent(ev core.KeyEvent) {
	switch {
	case ev.Action.IsDirection():
		s.onDirection(ev)
	case ev.Action == core.ActionSelect && ev.Down:
		s.onSelectDown()
	case ev.Action == core.ActionSelect:
		s.onSelectUp()
	case ev.Action == core.ActionDescend && ev.Down:
		s.onDescendDown()
	case ev.Action == core.ActionDescend:
		s.onDescendUp()
	}
}

func (s *Sim) onDirection(ev core.KeyEvent) {
	switch s.mode {
	case Roaming:
		s.steer(ev)
	case SelectingDescent:
		if ev.Down {
			s.descend(ev.Action)
		}
	}
}

// steer sets or clears one velocity axis. A release only stops the axis if
// the player is still moving in the released direction.
func (s *Sim) steer(ev core.KeyEvent) {
	v := &s.player.Vel
	speed := s.player.Speed
	switch ev.Action {
	case core.ActionUp:
		if ev.Down {
			v.Y = -speed
		} else if v.Y < 0 {
			v.Y = 0
		}
	case core.ActionDown:
		if ev.Down {
			v.Y = speed
		} else if v.Y > 0 {
			v.Y = 0
		}
	case core.ActionLeft:
		if ev.Down {
			v.X = -speed
		} else if v.X < 0 {
			v.X = 0
		}
	case core.ActionRight:
		if ev.Down {
			v.X = speed
		} else if v.X > 0 {
			v.X = 0
		}
	}
}

func (s *Sim) onSelectDown() {
	switch s.mode {
	case Roaming:
		s.beginTreeSelection(s.treesInRange(nil))
	case InTree:
		current := s.tree
		s.beginTreeSelection(s.treesInRange(&current))
	case SelectingTree:
		s.selected = (s.selected + 1) % len(s.inRange)
	}
}

func (s *Sim) beginTreeSelection(trees []Cell) {
	if len(trees) == 0 {
		return
	}
	s.inRange = trees
	s.selected = 0
	s.mode = SelectingTree
	s.hasTree = false
	s.player.Vel = r2.Vec{}

	if c, d, ok := s.obstacles.Nearest(s.player.Pos); ok && d < s.params.ProximityRadius {
		s.obstacles.Suspend(c)
		s.suspended, s.hasSuspended = c, true
	}
}

func (s *Sim) onSelectUp() {
	if s.mode != SelectingTree {
		return
	}
	tree := s.inRange[s.selected]
	s.player.Pos = s.grid.ToWorld(tree)
	s.tree, s.hasTree = tree, true
	s.mode = InTree
	s.selected = -1
	s.inRange = nil

	if s.hasSuspended {
		s.obstacles.Restore(s.suspended)
		s.hasSuspended = false
	}
}

func (s *Sim) onDescendDown() {
	if s.mode != InTree {
		return
	}
	s.markers = s.markers[:0]
	for _, c := range s.graph.Neighbors(s.tree) {
		s.markers = append(s.markers, Marker{Cell: c, Dir: directionTo(s.tree, c)})
	}
	s.mode = SelectingDescent
}

func (s *Sim) onDescendUp() {
	if s.mode != SelectingDescent {
		return
	}
	s.markers = s.markers[:0]
	s.mode = InTree
}

// descend leaves the tree on any direction. The player lands on the marker
// lying in dir, or stays on the tree cell when that side has none.
func (s *Sim) descend(dir core.Action) {
	if i := slices.IndexFunc(s.markers, func(m Marker) bool { return m.Dir == dir }); i >= 0 {
		s.player.Pos = s.grid.ToWorld(s.markers[i].Cell)
	}
	s.player.Vel = r2.Vec{}
	s.markers = s.markers[:0]
	s.hasTree = false
	s.mode = Roaming
}

// treesInRange lists tree cells whose centers lie strictly within the
// proximity radius of the player, nearest first, ties in row-major order.
func (s *Sim) treesInRange(exclude *Cell) []Cell {
	type hit struct {
		cell Cell
		dist float64
	}
	var hits []hit
	for _, t := range s.layout.Trees {
		if exclude != nil && t == *exclude {
			continue
		}
		d := r2.Norm(r2.Sub(s.grid.ToWorld(t), s.player.Pos))
		if d < s.params.ProximityRadius {
			hits = append(hits, hit{cell: t, dist: d})
		}
	}
	slices.SortFunc(hits, func(a, b hit) int {
		if c := cmp.Compare(a.dist, b.dist); c != 0 {
			return c
		}
		if c := cmp.Compare(a.cell.Row, b.cell.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.cell.Col, b.cell.Col)
	})
	out := make([]Cell, len(hits))
	for i, h := range hits {
		out[i] = h.cell
	}
	return out
}
