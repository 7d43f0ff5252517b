package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/dutiful-ducks/internal/core"
)

// FrameDuration is the reference frame; velocities are in world units per frame.
const FrameDuration = time.Second / 60

// maxFramesPerTick caps catch-up after a stalled tick.
const maxFramesPerTick = 4

// StepResult summarizes one Advance call.
type StepResult struct {
	Events  []Event
	Score   int
	Outcome Outcome
}

// Sim is the simulation context for one game. It is not safe for concurrent
// use; the caller serializes every Advance.
type Sim struct {
	params    Params
	grid      *Grid
	layout    *Layout
	graph     *PathGraph
	obstacles *Obstacles

	player Agent
	rogues []Agent
	babies []BabyDuck

	mode     Mode
	inRange  []Cell
	selected int
	markers  []Marker
	tree     Cell
	hasTree  bool

	suspended    Cell
	hasSuspended bool

	score   int
	outcome Outcome
	ticks   uint64
	events  []Event
}

// New builds the grid, runs the layout and spawns every agent.
// A ConfigError is returned before anything is exposed if the layout cannot
// be satisfied.
func New(p Params, rng *rand.Rand) (*Sim, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g := NewGrid(p.Rows, p.Cols, p.TileSize)
	layout, err := BuildLayout(g, p.Layout(), rng)
	if err != nil {
		return nil, fmt.Errorf("build layout: %w", err)
	}

	s := &Sim{
		params:    p,
		grid:      g,
		layout:    layout,
		graph:     NewPathGraph(g),
		obstacles: NewObstacles(g),
		player:    newPlayer(g.ToWorld(layout.Player), p),
		selected:  -1,
	}
	for _, c := range layout.RogueDucks {
		s.rogues = append(s.rogues, newRogueDuck(g.ToWorld(c), p, rng))
	}
	for _, c := range layout.BabyDucks {
		s.babies = append(s.babies, BabyDuck{Cell: c, Pos: g.ToWorld(c), Half: p.BabyHalf})
	}
	s.inRange = s.treesInRange(nil)
	return s, nil
}

// Advance applies events in order, then runs one tick of motion and
// collision scaled by dt. Once the game is over only the tick counter moves.
func (s *Sim) Advance(dt time.Duration, events []core.KeyEvent) StepResult {
	s.ticks++
	s.events = s.events[:0]

	if !s.outcome.Terminal() {
		for _, ev := range events {
			s.applyEvent(ev)
		}
		s.tick(frames(dt))
	}

	return StepResult{
		Events:  append([]Event(nil), s.events...),
		Score:   s.score,
		Outcome: s.outcome,
	}
}

func (s *Sim) tick(n float64) {
	bounds := s.grid.Bounds()
	switch s.mode {
	case Roaming:
		move(&s.player, n, bounds, s.obstacles)
		s.inRange = s.treesInRange(nil)
	case InTree:
		// hop targets
		if s.hasTree {
			current := s.tree
			s.inRange = s.treesInRange(&current)
		}
	}
	for i := range s.rogues {
		move(&s.rogues[i], n, bounds, s.obstacles)
	}
	s.resolveCollisions()
}

func frames(dt time.Duration) float64 {
	f := float64(dt) / float64(FrameDuration)
	return core.ClampF(f, 0, maxFramesPerTick)
}

// Params returns the parameters the world was built with.
func (s *Sim) Params() Params { return s.params }

// Grid returns the occupancy grid.
func (s *Sim) Grid() *Grid { return s.grid }

// Layout returns the placement result.
func (s *Sim) Layout() *Layout { return s.layout }

// Graph returns the path graph over the grid.
func (s *Sim) Graph() *PathGraph { return s.graph }

// Player returns a copy of the player agent.
func (s *Sim) Player() Agent { return s.player }

// RogueDucks returns a copy of the rogue agents.
func (s *Sim) RogueDucks() []Agent { return append([]Agent(nil), s.rogues...) }

// BabyDucks returns a copy of the objectives with their captured flags.
func (s *Sim) BabyDucks() []BabyDuck { return append([]BabyDuck(nil), s.babies...) }

// Mode returns the current interaction mode.
func (s *Sim) Mode() Mode { return s.mode }

// TreesInRange returns the selectable trees, nearest first.
func (s *Sim) TreesInRange() []Cell { return append([]Cell(nil), s.inRange...) }

// Selected returns the highlighted index into TreesInRange, or -1.
func (s *Sim) Selected() int { return s.selected }

// Markers returns the descent candidates while SelectingDescent.
func (s *Sim) Markers() []Marker { return append([]Marker(nil), s.markers...) }

// CurrentTree returns the tree the player occupies, if any.
func (s *Sim) CurrentTree() (Cell, bool) { return s.tree, s.hasTree }

// Suspended returns the obstacle currently lifted from the blocking set.
func (s *Sim) Suspended() (Cell, bool) { return s.suspended, s.hasSuspended }

// Score returns the number of captured baby ducks.
func (s *Sim) Score() int { return s.score }

// Outcome returns the game result so far.
func (s *Sim) Outcome() Outcome { return s.outcome }

// Ticks returns the number of Advance calls.
func (s *Sim) Ticks() uint64 { return s.ticks }
