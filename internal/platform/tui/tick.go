// Package tui runs the ducks game in a terminal through Bubble Tea, locally
// or over SSH, together with the difficulty menu and the run history screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dutiful-ducks/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after the
// configured tick duration.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.TickDuration(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
