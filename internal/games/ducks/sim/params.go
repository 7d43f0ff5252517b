package sim

import "fmt"

// Params fixes the world dimensions and entity tuning for one game.
type Params struct {
	Rows     int
	Cols     int
	TileSize float64

	Trees      int
	BabyDucks  int
	RogueDucks int

	PlayerSpeed float64
	PlayerHalf  float64

	// RogueMaxSpeed bounds each rogue velocity component to [-max, max].
	RogueMaxSpeed int
	RogueHalf     float64

	BabyHalf float64

	// ProximityRadius is the tree-selection distance in world units.
	ProximityRadius float64
}

// DefaultParams returns the classic 16x16 world.
func DefaultParams() Params {
	return Params{
		Rows:            16,
		Cols:            16,
		TileSize:        68,
		Trees:           80,
		BabyDucks:       10,
		RogueDucks:      2,
		PlayerSpeed:     10,
		PlayerHalf:      20,
		RogueMaxSpeed:   3,
		RogueHalf:       20,
		BabyHalf:        17,
		ProximityRadius: 100,
	}
}

// Layout returns the counts used by BuildLayout.
func (p Params) Layout() LayoutParams {
	return LayoutParams{Trees: p.Trees, BabyDucks: p.BabyDucks, RogueDucks: p.RogueDucks}
}

// Validate checks dimensional sanity. Pool sizes are checked by BuildLayout.
func (p Params) Validate() error {
	switch {
	case p.Rows < 3 || p.Cols < 3:
		return &ConfigError{Field: "grid", Requested: 3, Available: min(p.Rows, p.Cols)}
	case p.TileSize <= 0:
		return fmt.Errorf("%w: tile size must be positive, got %v", ErrConfig, p.TileSize)
	case p.PlayerSpeed < 0:
		return fmt.Errorf("%w: player speed must not be negative, got %v", ErrConfig, p.PlayerSpeed)
	case p.RogueMaxSpeed < 0:
		return fmt.Errorf("%w: rogue max speed must not be negative, got %d", ErrConfig, p.RogueMaxSpeed)
	case p.PlayerHalf <= 0 || p.RogueHalf <= 0 || p.BabyHalf <= 0:
		return fmt.Errorf("%w: entity sizes must be positive", ErrConfig)
	case p.ProximityRadius < 0:
		return fmt.Errorf("%w: proximity radius must not be negative", ErrConfig)
	}
	return nil
}
