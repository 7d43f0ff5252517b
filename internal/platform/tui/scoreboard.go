package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dutiful-ducks/internal/config"
	"github.com/vovakirdan/dutiful-ducks/internal/storage"
)

const (
	minWidthForSidebar = 90  // Minimum width to show the stats sidebar
	sidebarWidth       = 24  // Width of the stats sidebar
	maxRuns            = 100 // Max runs to load per difficulty
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	ShowHelp key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back, k.ShowHelp}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextTab, k.PrevTab, k.Left, k.Right},
		{k.Back, k.Quit, k.ShowHelp},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left/h", "easier")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right/l", "harder")),
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next difficulty")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-tab", "prev difficulty")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ShowHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

// ScoreboardModel is the Bubble Tea model for the run history screen.
type ScoreboardModel struct {
	tabs        []config.DifficultyPreset
	tab         int
	store       *storage.Store
	runs        []storage.Run
	stats       *storage.Stats
	tickRate    int
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard opened on the current difficulty.
// tickRate converts recorded ticks into seconds.
func NewScoreboardModel(store *storage.Store, width, height, tickRate int, current config.DifficultyPreset) ScoreboardModel {
	if tickRate <= 0 {
		tickRate = 60
	}
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		tabs:        config.Presets(),
		store:       store,
		tickRate:    tickRate,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, p := range m.tabs {
		if p == current {
			m.tab = i
		}
	}

	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table sized for the current window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Ducklings", Width: 10},
		{Title: "Outcome", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 14},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	fixed := 6 + 10 + 8 + 8
	if spare := tableWidth - fixed - 10; spare > 14 {
		columns[4].Width = min(spare, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("28")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads runs and stats for the selected difficulty.
func (m *ScoreboardModel) loadRuns() {
	m.runs = nil
	m.stats = nil
	if m.store != nil && len(m.tabs) > 0 {
		difficulty := string(m.tabs[m.tab])
		if runs, err := m.store.TopRuns(difficulty, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.Stats(difficulty); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			r.Outcome,
			m.duration(r.Ticks),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// duration formats a tick count as playing time.
func (m *ScoreboardModel) duration(ticks uint64) string {
	d := time.Duration(ticks) * time.Second / time.Duration(m.tickRate)
	return d.Round(100 * time.Millisecond).String()
}

// switchTab moves delta tabs along, wrapping, and reloads the runs.
func (m *ScoreboardModel) switchTab(delta int) {
	if len(m.tabs) == 0 {
		return
	}
	m.tab = (m.tab + delta + len(m.tabs)) % len(m.tabs)
	m.loadRuns()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.ShowHelp):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.Right):
			m.switchTab(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevTab), key.Matches(msg, m.keys.Left):
			m.switchTab(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var scoreStyles = struct {
	title, tab, activeTab, frame, empty, hint lipgloss.Style
}{
	title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
	tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
	activeTab: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("28")).Padding(0, 1),
	frame:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
	hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	body := scoreStyles.frame.Render(m.tableView())
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), "  ", body)
	} else if line := m.statsLine(); line != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		scoreStyles.title.Render(centerText("DUTIFUL DUCKS - RUN HISTORY", m.width)),
		"",
		centerText(m.tabsView(), m.width),
		"",
		body,
		scoreStyles.hint.Render(m.help.View(m.keys)),
	)
}

func (m ScoreboardModel) tabsView() string {
	tabs := make([]string, 0, len(m.tabs))
	for i, p := range m.tabs {
		style := scoreStyles.tab
		if i == m.tab {
			style = scoreStyles.activeTab
		}
		tabs = append(tabs, style.Render(p.Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// sidebarView lists the aggregate stats of the selected difficulty.
func (m ScoreboardModel) sidebarView() string {
	lines := []string{"Stats", strings.Repeat("-", sidebarWidth-4)}
	if s := m.stats; s == nil || s.Games == 0 {
		lines = append(lines, "No games yet")
	} else {
		lines = append(lines,
			fmt.Sprintf("Games:   %d", s.Games),
			fmt.Sprintf("Wins:    %d", s.Wins),
			fmt.Sprintf("Losses:  %d", s.Losses),
			fmt.Sprintf("Best:    %d", s.BestScore),
			fmt.Sprintf("Average: %.1f", s.AvgScore),
		)
		if s.FastestWin > 0 {
			lines = append(lines, "Fastest: "+m.duration(s.FastestWin))
		}
		if !s.LastPlayed.IsZero() {
			lines = append(lines, "Last:    "+s.LastPlayed.Format("Jan 02"))
		}
	}
	return scoreStyles.frame.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

func (m ScoreboardModel) statsLine() string {
	s := m.stats
	if s == nil || s.Games == 0 {
		return ""
	}
	return fmt.Sprintf(" %d games  %d won  %d lost  best %d", s.Games, s.Wins, s.Losses, s.BestScore)
}

func (m ScoreboardModel) tableView() string {
	if len(m.runs) == 0 {
		return scoreStyles.empty.Render("No runs recorded yet.\nGo find some ducklings!")
	}
	return m.table.View()
}

// IsGoingBack reports whether the player asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to leave the program.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the run history full screen. It reports whether the
// player went back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height, tickRate int, current config.DifficultyPreset) (bool, error) {
	final, err := tea.NewProgram(
		NewScoreboardModel(store, width, height, tickRate, current),
		tea.WithAltScreen(),
	).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
