package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dutiful-ducks/internal/core"
)

// KeyMap holds the in-game key bindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	Confirm    key.Binding
	Descend    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Confirm, k.Descend, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Confirm, k.Descend},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the default game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Select:     key.NewBinding(key.WithKeys(" ", "tab"), key.WithHelp("space", "pick tree")),
		Confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Descend:    key.NewBinding(key.WithKeys("1", "e"), key.WithHelp("1/e", "descend")),
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Back:       key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b/esc", "menu")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
	}
}

// KeyMapper translates Bubble Tea key messages into press and release events.
// Terminals only report presses, so a held direction is released once no
// repeat has arrived for holdTicks ticks.
type KeyMapper struct {
	keys      KeyMap
	holdTicks int
	held      map[core.Action]int // remaining ticks per held direction
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper(holdTicks int) *KeyMapper {
	return &KeyMapper{
		keys:      DefaultKeyMap(),
		holdTicks: max(holdTicks, 1),
		held:      make(map[core.Action]int, 4),
	}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// direction returns the movement action bound to msg.
func (km *KeyMapper) direction(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight
	}
	return core.ActionNone
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// MapKeyToFrame appends the events for msg to frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if key.Matches(msg, km.keys.Quit) {
		return true
	}

	if dir := km.direction(msg); dir != core.ActionNone {
		if _, ok := km.held[dir]; ok {
			// Key repeat keeps the direction alive
			km.held[dir] = km.holdTicks
			return false
		}
		if opp := opposite(dir); km.isHeld(opp) {
			delete(km.held, opp)
			frame.Release(opp)
		}
		// The first press also waits out the terminal's repeat delay
		km.held[dir] = 4 * km.holdTicks
		frame.Press(dir)
		return false
	}

	switch {
	case key.Matches(msg, km.keys.Select):
		frame.Press(core.ActionSelect)
	case key.Matches(msg, km.keys.Confirm):
		frame.Release(core.ActionSelect)
		frame.Release(core.ActionDescend)
	case key.Matches(msg, km.keys.Descend):
		frame.Press(core.ActionDescend)
	case key.Matches(msg, km.keys.Pause):
		frame.Press(core.ActionPause)
	case key.Matches(msg, km.keys.Restart):
		frame.Press(core.ActionRestart)
	case key.Matches(msg, km.keys.Back):
		frame.Press(core.ActionBack)
	}
	return false
}

func (km *KeyMapper) isHeld(a core.Action) bool {
	_, ok := km.held[a]
	return ok
}

// Tick ages held directions by one tick and appends a release for each one
// that expired. Call it once per tick before the frame is stepped.
func (km *KeyMapper) Tick(frame *core.InputFrame) {
	for _, dir := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		left, ok := km.held[dir]
		if !ok {
			continue
		}
		left--
		if left <= 0 {
			delete(km.held, dir)
			frame.Release(dir)
			continue
		}
		km.held[dir] = left
	}
}

// ReleaseAll releases every held direction.
func (km *KeyMapper) ReleaseAll(frame *core.InputFrame) {
	for _, dir := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if km.isHeld(dir) {
			delete(km.held, dir)
			frame.Release(dir)
		}
	}
}

// IsScreenshot reports whether msg requests a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
