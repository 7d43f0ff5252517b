package ducks

import "github.com/vovakirdan/dutiful-ducks/internal/games/ducks/sim"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Seed       int64
	Score      int
	Mode       string
	Outcome    string
	PlayerCell sim.Cell
	PlayerX    float64
	PlayerY    float64
	RogueCells []sim.Cell
	Paused     bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	grid := w.Grid()
	p := w.Player()

	rogues := w.RogueDucks()
	cells := make([]sim.Cell, len(rogues))
	for i, r := range rogues {
		cells[i] = r.Cell(grid)
	}

	return Snapshot{
		Tick:       g.tick,
		Seed:       g.seed,
		Score:      w.Score(),
		Mode:       w.Mode().String(),
		Outcome:    w.Outcome().String(),
		PlayerCell: p.Cell(grid),
		PlayerX:    p.Pos.X,
		PlayerY:    p.Pos.Y,
		RogueCells: cells,
		Paused:     g.paused,
	}
}
