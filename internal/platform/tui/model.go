package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dutiful-ducks/internal/core"
	"github.com/vovakirdan/dutiful-ducks/internal/games/ducks"
	"github.com/vovakirdan/dutiful-ducks/internal/storage"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Store     *storage.Store // nil disables run history
	Logger    *log.Logger    // nil discards
	Config    core.RuntimeConfig
	HoldTicks int
	Renderer  *lipgloss.Renderer // nil uses the default renderer

	// Standalone models quit the program when the player goes back to the
	// menu, so the caller can show the menu again.
	Standalone bool
}

// GameModel is the Bubble Tea model that runs one ducks game.
type GameModel struct {
	game       *ducks.Game
	screen     *core.Screen
	palette    Palette
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	standalone bool
	quitting   bool
	backToMenu bool
	runSaved   bool // whether the current finished run is in the history
}

// NewGameModel resets game for opts.Config and wraps it in a model.
func NewGameModel(game *ducks.Game, opts GameOptions) (GameModel, error) {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	if err := game.Reset(cfg); err != nil {
		return GameModel{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		palette:    NewPalette(opts.Renderer),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(opts.HoldTicks),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		standalone: opts.Standalone,
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world does not depend on the screen size, so a resize keeps the run
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.keyMapper.IsScreenshot(msg) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	m.keyMapper.Tick(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}
	if !m.gameState.GameOver {
		// A restart starts a new run
		m.runSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config)
}

// saveRun records the finished run. Failures are logged and play continues.
func (m *GameModel) saveRun() {
	if m.store == nil {
		return
	}
	s := m.game.Summary()
	_, err := m.store.SaveRun(storage.Run{
		Difficulty: s.Difficulty,
		Score:      s.Score,
		Outcome:    s.Outcome,
		Ticks:      s.Ticks,
		Seed:       s.Seed,
	})
	if err != nil {
		m.logger.Warn("could not save run", "err", err)
	}
}

// saveScreenshot writes the current screen as plain text under ~/.ducks/screenshots.
func (m *GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".ducks", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%d_%s.txt", m.game.ID(), m.game.Seed(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return m.palette.Render(m.screen)
}

// State returns the last stepped game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// RunSaved reports whether the finished run has been handed to the store.
func (m GameModel) RunSaved() bool {
	return m.runSaved
}

// GameResult holds the result of running a standalone game.
type GameResult struct {
	BackToMenu bool
}

// RunGame runs game full screen until the player quits or goes back to the menu.
func RunGame(game *ducks.Game, opts GameOptions) (GameResult, error) {
	opts.Standalone = true
	model, err := NewGameModel(game, opts)
	if err != nil {
		return GameResult{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return GameResult{}, nil
	}
	return GameResult{BackToMenu: m.BackToMenu()}, nil
}
