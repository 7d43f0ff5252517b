package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dutiful-ducks/internal/config"
	"github.com/vovakirdan/dutiful-ducks/internal/core"
	"github.com/vovakirdan/dutiful-ducks/internal/storage"
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Store      *storage.Store
	Config     core.RuntimeConfig
	Username   string
	Difficulty config.DifficultyPreset
	HoldTicks  int
	Factory    GameFactory
	Renderer   *lipgloss.Renderer
	Logger     *log.Logger
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenScores
	screenGame
)

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// Every game gets its own world, so sessions share nothing but the store.
type SessionModel struct {
	opts       SessionOptions
	config     core.RuntimeConfig
	difficulty config.DifficultyPreset
	screen     sessionScreen
	menu       MenuModel
	scores     ScoreboardModel
	game       GameModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Difficulty == "" {
		opts.Difficulty = config.DifficultyNormal
	}
	return SessionModel{
		opts:       opts,
		config:     opts.Config,
		difficulty: opts.Difficulty,
		menu:       NewMenuModel(opts.Store, opts.Config, opts.Difficulty),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu forwards msg to the menu and follows the choice once it is made.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if cmd == nil {
		return m, nil
	}
	// The menu only returns a command once it is done
	switch r := m.menu.result(); {
	case r.WantsScoreboard:
		m.scores = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH, m.config.TickRate, m.difficulty)
		m.screen = screenScores
		return m, m.scores.Init()
	case r.Quit:
		m.quitting = true
		return m, tea.Quit
	default:
		m.difficulty = r.Difficulty
		return m.startGame()
	}
}

// startGame builds a new world for the selected difficulty.
func (m SessionModel) startGame() (tea.Model, tea.Cmd) {
	game, err := m.opts.Factory(m.difficulty)
	if err == nil {
		cfg := m.config
		cfg.Seed = time.Now().UnixNano()
		m.game, err = NewGameModel(game, GameOptions{
			Store:     m.opts.Store,
			Logger:    m.opts.Logger,
			Config:    cfg,
			HoldTicks: m.opts.HoldTicks,
			Renderer:  m.opts.Renderer,
		})
	}
	if err != nil {
		if m.opts.Logger != nil {
			m.opts.Logger.Error("cannot start game", "difficulty", m.difficulty, "err", err)
		}
		return m.showMenu()
	}

	m.screen = screenGame
	return m, m.game.Init()
}

func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.opts.Store, m.config, m.difficulty)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// updateScores handles updates when the run history is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if scores, ok := newScores.(ScoreboardModel); ok {
		m.scores = scores
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.showMenu()
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.showMenu()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}
