package ducks

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dutiful-ducks/internal/core"
	"github.com/vovakirdan/dutiful-ducks/internal/games/ducks/sim"
)

// Each grid cell is drawn two characters wide so the map stays square.
const cellW = 2

const (
	hudRows    = 2
	footerRows = 1
)

// Glyphs for map elements.
const (
	GlyphWall     = '▓'
	GlyphTree     = '♣'
	GlyphPlayer   = '@'
	GlyphRogue    = 'D'
	GlyphMarker   = '+'
	GlyphSelected = '>'
)

// MinScreen returns the smallest screen that fits the map.
func (g *Game) MinScreen() (w, h int) {
	w = g.params.Cols*cellW + 2
	h = g.params.Rows + hudRows + footerRows
	return w, h
}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := g.MinScreen()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	ox := (dst.Width() - g.params.Cols*cellW) / 2
	oy := hudRows

	g.renderHUD(dst)
	g.renderMap(dst, ox, oy)
	g.renderAgents(dst, ox, oy)
	g.renderFooter(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the score, mode and difficulty.
func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world
	dst.DrawTextColor(1, 0, fmt.Sprintf("Ducklings: %d/%d", w.Score(), len(w.BabyDucks())), core.ColorHighlight)
	dst.DrawTextCentered(0, modeLabel(w.Mode()))
	diff := g.difficulty.Title()
	dst.DrawText(dst.Width()-len(diff)-1, 0, diff)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func modeLabel(m sim.Mode) string {
	switch m {
	case sim.SelectingTree:
		return "Choose a tree"
	case sim.InTree:
		return "In a tree"
	case sim.SelectingDescent:
		return "Choose where to land"
	default:
		return "Roaming"
	}
}

// renderMap draws walls, trees, the selection highlight and descent markers.
func (g *Game) renderMap(dst *core.Screen, ox, oy int) {
	w := g.world
	grid := w.Grid()
	layout := w.Layout()

	inRange := make(map[sim.Cell]bool)
	for _, c := range w.TreesInRange() {
		inRange[c] = true
	}
	var selected sim.Cell
	hasSelected := w.Mode() == sim.SelectingTree && w.Selected() >= 0
	if hasSelected {
		selected = w.TreesInRange()[w.Selected()]
	}

	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			cell := sim.C(r, c)
			x, y := ox+c*cellW, oy+r
			switch {
			case grid.IsBoundary(cell):
				dst.SetColor(x, y, GlyphWall, core.ColorWall)
				dst.SetColor(x+1, y, GlyphWall, core.ColorWall)
			case layout.IsTree(cell):
				color := core.ColorTree
				if inRange[cell] {
					color = core.ColorTreeInRange
				}
				if hasSelected && cell == selected {
					dst.SetColor(x, y, GlyphSelected, core.ColorHighlight)
					dst.SetColor(x+1, y, GlyphTree, core.ColorHighlight)
					continue
				}
				dst.SetColor(x, y, GlyphTree, color)
				dst.SetColor(x+1, y, GlyphTree, color)
			}
		}
	}

	for _, m := range w.Markers() {
		x, y := ox+m.Cell.Col*cellW, oy+m.Cell.Row
		dst.SetColor(x, y, GlyphMarker, core.ColorMarker)
		dst.SetColor(x+1, y, GlyphMarker, core.ColorMarker)
	}
}

// renderAgents draws rogue ducks and the player at half-cell horizontal
// resolution.
func (g *Game) renderAgents(dst *core.Screen, ox, oy int) {
	w := g.world
	tile := w.Grid().TileSize()

	for _, a := range w.RogueDucks() {
		x, y := agentScreenPos(a, tile)
		dst.SetColor(ox+x, oy+y, GlyphRogue, core.ColorRogue)
	}

	p := w.Player()
	x, y := agentScreenPos(p, tile)
	color := core.ColorPlayer
	if w.Outcome() == sim.Lost {
		color = core.ColorCaught
	}
	dst.SetColor(ox+x, oy+y, GlyphPlayer, color)
}

func agentScreenPos(a sim.Agent, tile float64) (x, y int) {
	x = int(math.Floor(a.Pos.X * cellW / tile))
	y = int(math.Floor(a.Pos.Y / tile))
	return x, y
}

// renderFooter shows the controls that apply to the current mode.
func (g *Game) renderFooter(dst *core.Screen) {
	var hint string
	switch g.world.Mode() {
	case sim.SelectingTree:
		hint = "SPACE next tree  ENTER climb"
	case sim.InTree:
		hint = "1/E descend  SPACE hop  P pause"
	case sim.SelectingDescent:
		hint = "ARROWS land  ENTER stay"
	default:
		hint = "ARROWS/WASD move  SPACE climb  P pause  Q quit"
	}
	dst.DrawTextColor(1, dst.Height()-1, hint, core.ColorHint)
}

// renderOverlay draws pause and game over messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.world.Outcome() == sim.Won:
		subtitle := fmt.Sprintf("All %d ducklings found  |  R restart  B menu", g.world.Score())
		drawCenteredBox(dst, "YOU WIN!", subtitle)
	case g.world.Outcome() == sim.Lost:
		subtitle := fmt.Sprintf("Ducklings: %d  |  R restart  B menu", g.world.Score())
		drawCenteredBox(dst, "CAUGHT BY A ROGUE DUCK", subtitle)
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
