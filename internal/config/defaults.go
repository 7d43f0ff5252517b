package config

import (
	_ "embed"
)

//go:embed defaults/ducks.yaml
var defaultDucksYAML []byte

// DefaultDucksConfig returns the built-in configuration. It matches the
// embedded defaults/ducks.yaml.
func DefaultDucksConfig() DucksConfig {
	return DucksConfig{
		World: WorldConfig{
			Rows:     16,
			Cols:     16,
			TileSize: 68,
		},
		Layout: LayoutConfig{
			Trees:      80,
			BabyDucks:  10,
			RogueDucks: 2,
		},
		Player: PlayerConfig{
			Speed: 10,
			Size:  40,
		},
		RogueDuck: RogueDuckConfig{
			MaxSpeed: 3,
			Size:     40,
		},
		BabyDuck: BabyDuckConfig{
			Size: 34,
		},
		Interaction: InteractionConfig{
			ProximityRadius: 100,
		},
		Controls: ControlsConfig{
			HoldTicks: 8,
		},
	}
}
