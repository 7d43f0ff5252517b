package core

// Color is the role of a screen cell. Games paint roles; the platform
// decides how each role looks on the terminal.
type Color uint8

// Roles used by the ducks renderer.
const (
	ColorDefault     Color = iota
	ColorWall              // boundary ring
	ColorTree              // tree out of reach
	ColorTreeInRange       // tree the player can pick
	ColorHighlight         // selected tree, HUD score
	ColorMarker            // descent cell
	ColorPlayer
	ColorCaught // player after losing
	ColorRogue
	ColorHint // footer and secondary text
)

// String returns the role name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorWall:
		return "wall"
	case ColorTree:
		return "tree"
	case ColorTreeInRange:
		return "tree_in_range"
	case ColorHighlight:
		return "highlight"
	case ColorMarker:
		return "marker"
	case ColorPlayer:
		return "player"
	case ColorCaught:
		return "caught"
	case ColorRogue:
		return "rogue"
	case ColorHint:
		return "hint"
	default:
		return "unknown"
	}
}
