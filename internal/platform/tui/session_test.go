package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dutiful-ducks/internal/config"
	"github.com/vovakirdan/dutiful-ducks/internal/core"
)

func newTestSession(t *testing.T, cfg config.DucksConfig) SessionModel {
	t.Helper()
	return NewSessionModel(SessionOptions{
		Store:      openTestStore(t),
		Config:     core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60},
		Username:   "tester",
		Difficulty: config.DifficultyNormal,
		HoldTicks:  8,
		Factory:    NewGameFactory(cfg, nil, nil),
	})
}

func sendSession(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = sm
	}
	return m
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t, tinyWorld())
	if m.screen != screenMenu {
		t.Fatalf("screen = %d, want menu", m.screen)
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %d, want game", m.screen)
	}
	if m.game.game.Difficulty() != config.DifficultyNormal {
		t.Errorf("difficulty = %s", m.game.game.Difficulty())
	}

	m = sendSession(t, m,
		tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
		tea.KeyMsg{Type: tea.KeyEnter},
		tick(),
	)
	if !m.game.State().Won {
		t.Fatalf("state = %+v, want won", m.game.State())
	}

	m = sendSession(t, m, runeKey('b'))
	if m.screen != screenMenu {
		t.Fatalf("screen = %d, want menu after back", m.screen)
	}
	if m.menu.items[m.menu.cursor].Best != 1 {
		t.Errorf("menu best = %d, want 1", m.menu.items[m.menu.cursor].Best)
	}
}

func TestSessionGamesDoNotShareWorlds(t *testing.T) {
	cfg := config.DefaultDucksConfig()
	a := sendSession(t, newTestSession(t, cfg), tea.KeyMsg{Type: tea.KeyEnter})
	b := sendSession(t, newTestSession(t, cfg), tea.KeyMsg{Type: tea.KeyEnter})

	a = sendSession(t, a, runeKey('d'), tick(), tick(), tick())
	if b.game.game.Sim().Ticks() != 0 {
		t.Errorf("second session advanced to %d ticks", b.game.game.Sim().Ticks())
	}
	if a.game.game.Sim() == b.game.game.Sim() {
		t.Error("sessions share a world")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := newTestSession(t, tinyWorld())
	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %d, want scores", m.screen)
	}
	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %d, want menu", m.screen)
	}
	if m.quitting {
		t.Error("back from scores quit the session")
	}
}

func TestSessionFactoryErrorStaysInMenu(t *testing.T) {
	// Easy adds a rogue duck that has no free cell in the tiny world
	m := newTestSession(t, tinyWorld())
	m = sendSession(t, m, runeKey('k'), tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenMenu {
		t.Errorf("screen = %d, want menu", m.screen)
	}
	if m.difficulty != config.DifficultyEasy {
		t.Errorf("difficulty = %s, want easy", m.difficulty)
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := newTestSession(t, tinyWorld())
	m = sendSession(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("q in menu should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}
