package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dutiful-ducks/internal/audio"
	"github.com/vovakirdan/dutiful-ducks/internal/config"
	"github.com/vovakirdan/dutiful-ducks/internal/games/ducks"
)

// GameFactory builds a fresh game for a difficulty.
type GameFactory func(difficulty config.DifficultyPreset) (*ducks.Game, error)

// NewGameFactory returns a factory that applies each preset on top of base.
// A nil player is silent.
func NewGameFactory(base config.DucksConfig, player audio.Player, logger *log.Logger) GameFactory {
	return func(difficulty config.DifficultyPreset) (*ducks.Game, error) {
		cfg := base
		config.ApplyPreset(&cfg, difficulty)
		return ducks.New(ducks.Settings{
			Config:     cfg,
			Difficulty: difficulty,
			Audio:      player,
			Logger:     logger,
		})
	}
}
