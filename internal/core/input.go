package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, H, Left arrow - move racket left
	ActionRight          // D, L, Right arrow - move racket right
	ActionServe          // Space - serve / skip the point pause
	ActionAnswer1        // 1 - first answer choice
	ActionAnswer2        // 2 - second answer choice
	ActionAnswer3        // 3 - third answer choice
	ActionAnswer4        // 4 - fourth answer choice
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - restart after match over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause

	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionServe:
		return "Serve"
	case ActionAnswer1:
		return "Answer1"
	case ActionAnswer2:
		return "Answer2"
	case ActionAnswer3:
		return "Answer3"
	case ActionAnswer4:
		return "Answer4"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// AnswerIndex returns the zero-based choice for an answer action.
func (a Action) AnswerIndex() (int, bool) {
	switch a {
	case ActionAnswer1, ActionAnswer2, ActionAnswer3, ActionAnswer4:
		return int(a - ActionAnswer1), true
	default:
		return 0, false
	}
}

// InputFrame is the set of actions triggered during one simulation tick.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << uint(a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return f.bits&(1<<uint(a)) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Answer returns the first answer choice present in the frame.
func (f InputFrame) Answer() (int, bool) {
	for a := ActionAnswer1; a <= ActionAnswer4; a++ {
		if f.Has(a) {
			return a.AnswerIndex()
		}
	}
	return 0, false
}
