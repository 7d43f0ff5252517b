package tui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dutiful-ducks/internal/core"
)

func TestPaletteRenderPlainProfile(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorTree)
	s.DrawText(2, 0, "cd")
	s.SetColor(5, 1, '@', core.ColorPlayer)

	// A renderer writing to a buffer has no color profile
	p := NewPalette(lipgloss.NewRenderer(&bytes.Buffer{}))
	got := p.Render(s)
	if want := s.String(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestPaletteUnknownColorFallsBack(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColor(0, 0, 'x', core.Color(200))

	p := NewPalette(lipgloss.NewRenderer(&bytes.Buffer{}))
	if got := p.Render(s); got != "x  " {
		t.Errorf("Render() = %q, want %q", got, "x  ")
	}
}
