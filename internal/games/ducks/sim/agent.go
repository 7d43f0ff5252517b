package sim

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/dutiful-ducks/internal/core"
)

// Kind tags the agent variant.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindRogueDuck
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindRogueDuck:
		return "rogue_duck"
	default:
		return "unknown"
	}
}

// Agent is a continuously positioned entity. Player and rogue ducks share
// this record; motion dispatches on Kind.
type Agent struct {
	Kind  Kind
	Pos   r2.Vec
	Vel   r2.Vec
	Half  float64
	Speed float64 // player only; zeroed on game over
}

// Box returns the agent's bounding box.
func (a *Agent) Box() core.Box {
	return core.BoxAround(a.Pos, a.Half, a.Half)
}

// Cell returns the grid cell holding the agent's center.
func (a *Agent) Cell(g *Grid) Cell {
	return g.ToCell(a.Pos)
}

func newPlayer(pos r2.Vec, p Params) Agent {
	return Agent{Kind: KindPlayer, Pos: pos, Half: p.PlayerHalf, Speed: p.PlayerSpeed}
}

// newRogueDuck rolls a fixed velocity with each component in
// [-maxSpeed, maxSpeed]. A zero vector is replaced with (1, -1).
func newRogueDuck(pos r2.Vec, p Params, rng *rand.Rand) Agent {
	span := 2*p.RogueMaxSpeed + 1
	vel := r2.Vec{
		X: float64(rng.Intn(span) - p.RogueMaxSpeed),
		Y: float64(rng.Intn(span) - p.RogueMaxSpeed),
	}
	if vel.X == 0 && vel.Y == 0 {
		vel = r2.Vec{X: 1, Y: -1}
	}
	return Agent{Kind: KindRogueDuck, Pos: pos, Vel: vel, Half: p.RogueHalf}
}

// move advances one agent by frames worth of its velocity.
func move(a *Agent, frames float64, bounds core.Box, obs *Obstacles) {
	switch a.Kind {
	case KindPlayer:
		movePlayer(a, frames, obs)
	case KindRogueDuck:
		moveRogue(a, frames, bounds)
	}
}

// movePlayer integrates one axis at a time and stops an axis at its first
// sub-step that would overlap a blocking obstacle. Sub-steps are at most the
// player's half size, so a fast player cannot pass through a tree.
func movePlayer(a *Agent, frames float64, obs *Obstacles) {
	step := r2.Scale(frames, a.Vel)
	longest := max(math.Abs(step.X), math.Abs(step.Y))
	if longest == 0 {
		return
	}
	n := 1
	if a.Half > 0 {
		n = int(math.Ceil(longest / a.Half))
	}
	sub := r2.Scale(1/float64(n), step)

	blockedX, blockedY := sub.X == 0, sub.Y == 0
	for range n {
		if !blockedX {
			next := r2.Vec{X: a.Pos.X + sub.X, Y: a.Pos.Y}
			if obs.Hits(core.BoxAround(next, a.Half, a.Half)) {
				blockedX = true
			} else {
				a.Pos = next
			}
		}
		if !blockedY {
			next := r2.Vec{X: a.Pos.X, Y: a.Pos.Y + sub.Y}
			if obs.Hits(core.BoxAround(next, a.Half, a.Half)) {
				blockedY = true
			} else {
				a.Pos = next
			}
		}
	}
}

// moveRogue integrates position and reflects each axis off the world edge.
// A component only flips while it still points outward, so a box that stays
// past the edge for several ticks is reflected exactly once.
func moveRogue(a *Agent, frames float64, bounds core.Box) {
	a.Pos = r2.Add(a.Pos, r2.Scale(frames, a.Vel))
	b := a.Box()
	if (b.Max.X >= bounds.Max.X && a.Vel.X > 0) || (b.Min.X <= bounds.Min.X && a.Vel.X < 0) {
		a.Vel.X = -a.Vel.X
	}
	if (b.Max.Y >= bounds.Max.Y && a.Vel.Y > 0) || (b.Min.Y <= bounds.Min.Y && a.Vel.Y < 0) {
		a.Vel.Y = -a.Vel.Y
	}
}
