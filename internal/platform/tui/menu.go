package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dutiful-ducks/internal/config"
	"github.com/vovakirdan/dutiful-ducks/internal/core"
	"github.com/vovakirdan/dutiful-ducks/internal/storage"
)

// MenuItem represents a selectable difficulty in the menu.
type MenuItem struct {
	Difficulty config.DifficultyPreset
	Title      string
	Detail     string
	Best       int // best recorded score, -1 when unknown
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a new menu model with the cursor on current.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, current config.DifficultyPreset) MenuModel {
	presets := config.Presets()
	items := make([]MenuItem, 0, len(presets))
	cursor := 0

	for i, p := range presets {
		item := MenuItem{
			Difficulty: p,
			Title:      p.Title(),
			Detail:     p.Description(),
			Best:       -1,
		}
		if store != nil {
			if best, err := store.HighScore(string(p)); err == nil {
				item.Best = best
			}
		}
		if p == current {
			cursor = i
		}
		items = append(items, item)
	}

	return MenuModel{
		items:  items,
		cursor: cursor,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

const menuControls = "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		"",
		"  D U T I F U L   D U C K S  ",
		"",
		"Find the ducklings hiding in the trees",
		"",
	}
	for i, item := range m.items {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		line := fmt.Sprintf("%s%-7s", marker, item.Title)
		if item.Best > 0 {
			line += fmt.Sprintf("  (best %d)", item.Best)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "")
	if len(m.items) > 0 {
		lines = append(lines, m.items[m.cursor].Detail, "")
	}
	lines = append(lines, menuControls)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(centerText(line, m.width))
		b.WriteByte('\n')
	}
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, resized to the latest window.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText left-pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

func (m MenuModel) result() MenuResult {
	r := MenuResult{Config: m.config}
	switch {
	case m.openScoreboard:
		r.WantsScoreboard = true
	case !m.quitting && m.selected != nil:
		r.Difficulty = m.selected.Difficulty
	default:
		r.Quit = true
	}
	return r
}

// RunMenu shows the difficulty picker full screen.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, current config.DifficultyPreset) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg, current), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	if m, ok := final.(MenuModel); ok {
		return m.result(), nil
	}
	return MenuResult{Config: cfg, Quit: true}, nil
}
