// Package ducks adapts the Dutiful Ducks simulation to the arcade platform:
// fixed-tick stepping, pause and restart, audio cues and screen rendering.
package ducks

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dutiful-ducks/internal/audio"
	"github.com/vovakirdan/dutiful-ducks/internal/config"
	"github.com/vovakirdan/dutiful-ducks/internal/core"
	"github.com/vovakirdan/dutiful-ducks/internal/games/ducks/sim"
)

// ID is the storage and CLI identifier of the game.
const ID = "ducks"

// Settings configures a game instance.
type Settings struct {
	Config     config.DucksConfig
	Difficulty config.DifficultyPreset
	Audio      audio.Player // nil plays nothing
	Logger     *log.Logger  // nil discards
}

// Summary describes a finished run for the score history.
type Summary struct {
	Difficulty string
	Score      int
	Outcome    string
	Ticks      uint64
	Seed       int64
}

// Game implements Dutiful Ducks on top of a sim.Sim.
type Game struct {
	params     sim.Params
	difficulty config.DifficultyPreset
	audio      audio.Player
	logger     *log.Logger

	world   *sim.Sim
	rng     *rand.Rand
	seed    int64
	tick    uint64
	tickDur time.Duration

	screenW int
	screenH int

	paused  bool
	pending []core.KeyEvent // releases held back while paused
}

// New validates the settings and prepares a game. Reset must be called
// before the first Step.
func New(s Settings) (*Game, error) {
	if err := s.Config.Validate(); err != nil {
		return nil, err
	}
	params := ParamsFromConfig(s.Config)
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("ducks: %w", err)
	}

	g := &Game{
		params:     params,
		difficulty: s.Difficulty,
		audio:      s.Audio,
		logger:     s.Logger,
	}
	if g.difficulty == "" {
		g.difficulty = config.DifficultyNormal
	}
	if g.audio == nil {
		g.audio = audio.Nop{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Dutiful Ducks" }

// Difficulty returns the preset the game was built with.
func (g *Game) Difficulty() config.DifficultyPreset { return g.difficulty }

// Reset builds a fresh world from cfg.Seed.
// A layout that cannot fit the grid is returned as a sim.ConfigError.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	world, err := sim.New(g.params, rng)
	if err != nil {
		return fmt.Errorf("ducks: %w", err)
	}

	g.world = world
	g.rng = rng
	g.seed = cfg.Seed
	g.tick = 0
	g.tickDur = cfg.TickDuration()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.pending = nil

	l := world.Layout()
	g.logger.Debug("world generated",
		"seed", cfg.Seed,
		"difficulty", g.difficulty,
		"trees", len(l.Trees),
		"baby_ducks", len(l.BabyDucks),
		"rogue_ducks", len(l.RogueDucks),
		"player", l.Player,
	)
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	over := g.world.Outcome().Terminal()

	// Handle restart
	if input.Has(core.ActionRestart) && over {
		if err := g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(time.Second / g.tickDur),
		}); err != nil {
			g.logger.Error("restart failed", "err", err)
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !over {
		g.paused = !g.paused
	}

	events := simEvents(input)
	if g.paused {
		for _, ev := range events {
			if !ev.Down {
				g.pending = append(g.pending, ev)
			}
		}
		return core.StepResult{State: g.State()}
	}
	if len(g.pending) > 0 {
		events = append(g.pending, events...)
		g.pending = nil
	}

	res := g.world.Advance(g.tickDur, events)
	for _, ev := range res.Events {
		g.handleEvent(ev)
	}

	return core.StepResult{State: g.State()}
}

// simEvents keeps the key events the simulation understands.
func simEvents(input core.InputFrame) []core.KeyEvent {
	var out []core.KeyEvent
	for _, ev := range input.Events {
		if ev.Action.IsDirection() || ev.Action == core.ActionSelect || ev.Action == core.ActionDescend {
			out = append(out, ev)
		}
	}
	return out
}

func (g *Game) handleEvent(ev sim.Event) {
	switch ev.Kind {
	case sim.EventCapture:
		g.audio.Play(audio.CueCapture)
		g.logger.Debug("baby duck captured", "cell", ev.Cell, "score", g.world.Score())
	case sim.EventWon:
		g.audio.Play(audio.CueWon)
		g.logger.Info("game won", "score", g.world.Score(), "ticks", g.world.Ticks(), "seed", g.seed)
	case sim.EventLost:
		g.audio.Play(audio.CueLost)
		g.logger.Info("game lost", "score", g.world.Score(), "ticks", g.world.Ticks(), "seed", g.seed)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	o := g.world.Outcome()
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: o.Terminal(),
		Won:      o == sim.Won,
		Paused:   g.paused,
	}
}

// Sim exposes the underlying world for rendering and inspection.
func (g *Game) Sim() *sim.Sim { return g.world }

// Seed returns the seed of the current world.
func (g *Game) Seed() int64 { return g.seed }

// Summary describes the current run. It is only meaningful once the game is over.
func (g *Game) Summary() Summary {
	return Summary{
		Difficulty: string(g.difficulty),
		Score:      g.world.Score(),
		Outcome:    g.world.Outcome().String(),
		Ticks:      g.world.Ticks(),
		Seed:       g.seed,
	}
}
