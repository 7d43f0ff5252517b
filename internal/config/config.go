// Package config provides YAML-based game configuration loading and
// difficulty presets for Dutiful Ducks.
package config

import "fmt"

// DucksConfig contains all configuration for a Dutiful Ducks game.
type DucksConfig struct {
	World       WorldConfig       `yaml:"world"`
	Layout      LayoutConfig      `yaml:"layout"`
	Player      PlayerConfig      `yaml:"player"`
	RogueDuck   RogueDuckConfig   `yaml:"rogue_duck"`
	BabyDuck    BabyDuckConfig    `yaml:"baby_duck"`
	Interaction InteractionConfig `yaml:"interaction"`
	Controls    ControlsConfig    `yaml:"controls"`
}

// WorldConfig defines the grid dimensions.
type WorldConfig struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	TileSize float64 `yaml:"tile_size"`
}

// LayoutConfig defines how many entities are placed at setup.
type LayoutConfig struct {
	Trees      int `yaml:"trees"`
	BabyDucks  int `yaml:"baby_ducks"`
	RogueDucks int `yaml:"rogue_ducks"`
}

// PlayerConfig defines player motion and size.
type PlayerConfig struct {
	Speed float64 `yaml:"speed"` // World units per frame
	Size  float64 `yaml:"size"`  // Bounding box edge
}

// RogueDuckConfig defines rogue duck motion and size.
type RogueDuckConfig struct {
	MaxSpeed int     `yaml:"max_speed"` // Each velocity component is drawn from [-max, max]
	Size     float64 `yaml:"size"`
}

// BabyDuckConfig defines the objective size.
type BabyDuckConfig struct {
	Size float64 `yaml:"size"`
}

// InteractionConfig defines tree selection.
type InteractionConfig struct {
	ProximityRadius float64 `yaml:"proximity_radius"`
}

// ControlsConfig defines terminal input handling.
type ControlsConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks without key repeat before a direction is released
}

// ValidationError reports an impossible configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks numeric sanity. Whether the layout fits the grid is
// decided when the world is built.
func (c DucksConfig) Validate() error {
	switch {
	case c.World.Rows < 3:
		return ValidationError{Field: "world.rows", Message: "must be at least 3"}
	case c.World.Cols < 3:
		return ValidationError{Field: "world.cols", Message: "must be at least 3"}
	case c.World.TileSize <= 0:
		return ValidationError{Field: "world.tile_size", Message: "must be positive"}
	case c.Layout.Trees < 0:
		return ValidationError{Field: "layout.trees", Message: "must not be negative"}
	case c.Layout.BabyDucks < 0:
		return ValidationError{Field: "layout.baby_ducks", Message: "must not be negative"}
	case c.Layout.RogueDucks < 0:
		return ValidationError{Field: "layout.rogue_ducks", Message: "must not be negative"}
	case c.Player.Speed < 0:
		return ValidationError{Field: "player.speed", Message: "must not be negative"}
	case c.Player.Size <= 0:
		return ValidationError{Field: "player.size", Message: "must be positive"}
	case c.RogueDuck.MaxSpeed < 0:
		return ValidationError{Field: "rogue_duck.max_speed", Message: "must not be negative"}
	case c.RogueDuck.Size <= 0:
		return ValidationError{Field: "rogue_duck.size", Message: "must be positive"}
	case c.BabyDuck.Size <= 0:
		return ValidationError{Field: "baby_duck.size", Message: "must be positive"}
	case c.Interaction.ProximityRadius < 0:
		return ValidationError{Field: "interaction.proximity_radius", Message: "must not be negative"}
	case c.Controls.HoldTicks < 1:
		return ValidationError{Field: "controls.hold_ticks", Message: "must be at least 1"}
	}
	return nil
}
