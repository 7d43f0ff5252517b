package sim

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/dutiful-ducks/internal/core"
)

// Outcome is the game result.
type Outcome uint8

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game has ended.
func (o Outcome) Terminal() bool {
	return o != InProgress
}

// EventKind classifies simulation side effects.
type EventKind uint8

const (
	EventCapture EventKind = iota
	EventWon
	EventLost
)

func (k EventKind) String() string {
	switch k {
	case EventCapture:
		return "capture"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Event is one side effect produced by a tick. Cell is set for captures.
type Event struct {
	Kind EventKind
	Cell Cell
}

// BabyDuck is a stationary objective hidden in a tree.
type BabyDuck struct {
	Cell     Cell
	Pos      r2.Vec
	Half     float64
	Captured bool
}

// Box returns the baby duck's bounding box.
func (b *BabyDuck) Box() core.Box {
	return core.BoxAround(b.Pos, b.Half, b.Half)
}

// resolveCollisions runs after motion. A rogue contact ends the game before
// any capture on the same tick is counted.
func (s *Sim) resolveCollisions() {
	pb := s.player.Box()

	for i := range s.rogues {
		if pb.Overlaps(s.rogues[i].Box()) {
			s.finish(Lost)
			s.emit(Event{Kind: EventLost})
			return
		}
	}

	for i := range s.babies {
		b := &s.babies[i]
		if b.Captured || !pb.Overlaps(b.Box()) {
			continue
		}
		b.Captured = true
		s.score++
		s.emit(Event{Kind: EventCapture, Cell: b.Cell})
	}

	if len(s.babies) > 0 && s.score == len(s.babies) {
		s.finish(Won)
		s.emit(Event{Kind: EventWon})
	}
}

func (s *Sim) finish(o Outcome) {
	s.outcome = o
	s.player.Speed = 0
	s.player.Vel = r2.Vec{}
}

func (s *Sim) emit(ev Event) {
	s.events = append(s.events, ev)
}
