package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dutiful-ducks/internal/core"
)

// roleColors maps each screen role to a 256-color terminal code.
var roleColors = map[core.Color]string{
	core.ColorWall:        "245",
	core.ColorTree:        "28",
	core.ColorTreeInRange: "46",
	core.ColorHighlight:   "11",
	core.ColorMarker:      "14",
	core.ColorPlayer:      "15",
	core.ColorCaught:      "1",
	core.ColorRogue:       "208",
	core.ColorHint:        "241",
}

// Palette holds one style per screen color, bound to a renderer so each SSH
// session is styled for its own terminal profile.
type Palette struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewPalette builds a palette for r. A nil renderer uses the default one.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := Palette{
		styles: make(map[core.Color]lipgloss.Style, len(roleColors)),
		plain:  r.NewStyle(),
	}
	for c, code := range roleColors {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

func (p Palette) style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.plain
}

// Render converts a Screen buffer to a styled string.
// Adjacent cells sharing a color are emitted as a single styled run.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s with the default renderer.
func RenderScreen(s *core.Screen) string {
	return NewPalette(nil).Render(s)
}
