package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionSelect)
	f.Press(ActionSelect)
	f.Release(ActionSelect)

	if len(f.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(f.Events))
	}
	want := []KeyEvent{Press(ActionSelect), Press(ActionSelect), Release(ActionSelect)}
	for i, ev := range want {
		if f.Events[i] != ev {
			t.Errorf("event %d = %+v, expected %+v", i, f.Events[i], ev)
		}
	}
}

func TestInputFrameHas(t *testing.T) {
	f := NewInputFrame()
	f.Release(ActionPause)
	if f.Has(ActionPause) {
		t.Error("a key-up event should not count as Has")
	}

	f.Press(ActionRestart)
	if !f.Has(ActionRestart) {
		t.Error("expected Has(ActionRestart)")
	}

	f.Clear()
	if f.Has(ActionRestart) || len(f.Events) != 0 {
		t.Error("Clear should drop all events")
	}
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirection() {
			t.Errorf("%s should be a direction", a)
		}
	}
	for _, a := range []Action{ActionSelect, ActionDescend, ActionPause} {
		if a.IsDirection() {
			t.Errorf("%s should not be a direction", a)
		}
	}
}

func TestActionString(t *testing.T) {
	if got := ActionDescend.String(); got != "Descend" {
		t.Errorf("ActionDescend.String() = %q", got)
	}
	if got := Action(99).String(); got != "Unknown" {
		t.Errorf("Action(99).String() = %q", got)
	}
}
