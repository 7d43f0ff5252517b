package ducks

import (
	"github.com/vovakirdan/dutiful-ducks/internal/config"
	"github.com/vovakirdan/dutiful-ducks/internal/games/ducks/sim"
)

// ParamsFromConfig converts the YAML config into simulation parameters.
// Config sizes are full box edges; the simulation works with half extents.
func ParamsFromConfig(c config.DucksConfig) sim.Params {
	return sim.Params{
		Rows:            c.World.Rows,
		Cols:            c.World.Cols,
		TileSize:        c.World.TileSize,
		Trees:           c.Layout.Trees,
		BabyDucks:       c.Layout.BabyDucks,
		RogueDucks:      c.Layout.RogueDucks,
		PlayerSpeed:     c.Player.Speed,
		PlayerHalf:      c.Player.Size / 2,
		RogueMaxSpeed:   c.RogueDuck.MaxSpeed,
		RogueHalf:       c.RogueDuck.Size / 2,
		BabyHalf:        c.BabyDuck.Size / 2,
		ProximityRadius: c.Interaction.ProximityRadius,
	}
}
