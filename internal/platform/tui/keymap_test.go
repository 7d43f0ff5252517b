package tui

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dutiful-ducks/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyToFrameBindings(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.KeyEvent
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, []core.KeyEvent{core.Press(core.ActionUp)}},
		{"w", runeKey('w'), []core.KeyEvent{core.Press(core.ActionUp)}},
		{"a", runeKey('a'), []core.KeyEvent{core.Press(core.ActionLeft)}},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, []core.KeyEvent{core.Press(core.ActionRight)}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.KeyEvent{core.Press(core.ActionSelect)}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []core.KeyEvent{core.Press(core.ActionSelect)}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []core.KeyEvent{
			core.Release(core.ActionSelect),
			core.Release(core.ActionDescend),
		}},
		{"1", runeKey('1'), []core.KeyEvent{core.Press(core.ActionDescend)}},
		{"e", runeKey('e'), []core.KeyEvent{core.Press(core.ActionDescend)}},
		{"p", runeKey('p'), []core.KeyEvent{core.Press(core.ActionPause)}},
		{"r", runeKey('r'), []core.KeyEvent{core.Press(core.ActionRestart)}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, []core.KeyEvent{core.Press(core.ActionBack)}},
		{"unbound", runeKey('x'), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := NewKeyMapper(8)
			frame := core.NewInputFrame()
			if km.MapKeyToFrame(tt.msg, &frame) {
				t.Fatal("unexpected quit")
			}
			if !slices.Equal(frame.Events, tt.want) {
				t.Errorf("events = %v, want %v", frame.Events, tt.want)
			}
		})
	}
}

func TestMapKeyToFrameQuit(t *testing.T) {
	km := NewKeyMapper(8)
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		frame := core.NewInputFrame()
		if !km.MapKeyToFrame(msg, &frame) {
			t.Errorf("%q should quit", msg.String())
		}
		if len(frame.Events) != 0 {
			t.Errorf("quit produced events %v", frame.Events)
		}
	}
}

func TestHeldDirectionReleases(t *testing.T) {
	km := NewKeyMapper(2)
	frame := core.NewInputFrame()
	km.MapKeyToFrame(runeKey('d'), &frame)
	frame.Clear()

	// First press holds for 4*holdTicks ticks
	for i := range 7 {
		km.Tick(&frame)
		if len(frame.Events) != 0 {
			t.Fatalf("tick %d: released early: %v", i, frame.Events)
		}
	}
	km.Tick(&frame)
	want := []core.KeyEvent{core.Release(core.ActionRight)}
	if !slices.Equal(frame.Events, want) {
		t.Fatalf("events = %v, want %v", frame.Events, want)
	}

	frame.Clear()
	km.Tick(&frame)
	if len(frame.Events) != 0 {
		t.Errorf("released twice: %v", frame.Events)
	}
}

func TestKeyRepeatExtendsHold(t *testing.T) {
	km := NewKeyMapper(2)
	frame := core.NewInputFrame()
	km.MapKeyToFrame(runeKey('d'), &frame)
	frame.Clear()

	km.MapKeyToFrame(runeKey('d'), &frame)
	if len(frame.Events) != 0 {
		t.Fatalf("repeat emitted %v", frame.Events)
	}

	km.Tick(&frame)
	if len(frame.Events) != 0 {
		t.Fatalf("released after one tick: %v", frame.Events)
	}
	km.Tick(&frame)
	want := []core.KeyEvent{core.Release(core.ActionRight)}
	if !slices.Equal(frame.Events, want) {
		t.Errorf("events = %v, want %v", frame.Events, want)
	}
}

func TestOppositeDirectionReleasesHeld(t *testing.T) {
	km := NewKeyMapper(8)
	frame := core.NewInputFrame()
	km.MapKeyToFrame(runeKey('a'), &frame)
	frame.Clear()

	km.MapKeyToFrame(runeKey('d'), &frame)
	want := []core.KeyEvent{core.Release(core.ActionLeft), core.Press(core.ActionRight)}
	if !slices.Equal(frame.Events, want) {
		t.Errorf("events = %v, want %v", frame.Events, want)
	}
}

func TestReleaseAll(t *testing.T) {
	km := NewKeyMapper(8)
	frame := core.NewInputFrame()
	km.MapKeyToFrame(runeKey('w'), &frame)
	km.MapKeyToFrame(runeKey('d'), &frame)
	frame.Clear()

	km.ReleaseAll(&frame)
	want := []core.KeyEvent{core.Release(core.ActionUp), core.Release(core.ActionRight)}
	if !slices.Equal(frame.Events, want) {
		t.Errorf("events = %v, want %v", frame.Events, want)
	}

	frame.Clear()
	km.Tick(&frame)
	if len(frame.Events) != 0 {
		t.Errorf("tick after ReleaseAll emitted %v", frame.Events)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, want %d", tt.msg.String(), got, tt.want)
		}
	}
}
