package core

// Action is a symbolic key. The simulation only understands the first six
// (the four directions, Select and Descend); the rest drive the game shell.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionSelect         // Space/Tab pressed, Enter releases: pick and climb a tree
	ActionDescend        // 1/E pressed, Enter releases: show descent cells
	ActionConfirm        // Enter in menus
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionSelect:  "Select",
	ActionDescend: "Descend",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// IsDirection reports whether the action is one of the four movement keys.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// KeyEvent is a single discrete key transition.
type KeyEvent struct {
	Action Action
	Down   bool // true for key-down, false for key-up
}

// Press returns a key-down event for a.
func Press(a Action) KeyEvent {
	return KeyEvent{Action: a, Down: true}
}

// Release returns a key-up event for a.
func Release(a Action) KeyEvent {
	return KeyEvent{Action: a, Down: false}
}

// InputFrame holds the input collected between two simulation ticks.
// Events keep arrival order; the simulation applies them one at a time.
type InputFrame struct {
	Events []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Press appends a key-down event.
func (f *InputFrame) Press(a Action) {
	f.Events = append(f.Events, Press(a))
}

// Release appends a key-up event.
func (f *InputFrame) Release(a Action) {
	f.Events = append(f.Events, Release(a))
}

// Has returns true if a key-down event for a arrived this frame.
func (f InputFrame) Has(a Action) bool {
	for _, ev := range f.Events {
		if ev.Action == a && ev.Down {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next tick, keeping its backing storage.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
