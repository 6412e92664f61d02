package core

// Action is a semantic input, independent of the key that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// IsDirection reports whether the action is one of the four moves.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame collects the actions of one tick.
// Moves keep their arrival order and repeats, so two presses between ticks
// become two moves. Other actions are flags.
type InputFrame struct {
	flags uint32
	moves []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a > ActionPause {
		return
	}
	f.flags |= 1 << uint(a)
	if a.IsDirection() {
		f.moves = append(f.moves, a)
	}
}

// Has reports whether a was recorded this frame.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a > ActionPause {
		return false
	}
	return f.flags&(1<<uint(a)) != 0
}

// Directions returns the moves in the order they were set.
func (f InputFrame) Directions() []Action {
	return f.moves
}

// Clear empties the frame, keeping its storage.
func (f *InputFrame) Clear() {
	f.flags = 0
	f.moves = f.moves[:0]
}
