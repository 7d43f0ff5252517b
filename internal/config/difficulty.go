package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset maps a flag value to a preset. Empty selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Title returns the display name of the preset.
func (p DifficultyPreset) Title() string {
	switch p {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return "Normal"
	}
}

// Description returns a one-line summary for menus.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "One slow rogue duck"
	case DifficultyHard:
		return "Four fast rogue ducks"
	default:
		return "Two rogue ducks"
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyPreset(cfg *DucksConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Layout.RogueDucks = 1
		cfg.RogueDuck.MaxSpeed = 2
	case DifficultyHard:
		cfg.Layout.RogueDucks = 4
		cfg.RogueDuck.MaxSpeed = 4
	}
}
