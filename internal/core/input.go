package core

// Action represents a semantic game action, abstracted from physical
// key presses. Games consume high-level intents rather than raw keys.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - steer up / rotate (Tetris)
	ActionDown              // S, Down arrow - steer down / soft drop
	ActionLeft              // A, Left arrow - steer left
	ActionRight             // D, Right arrow - steer right
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - go back to menu
	ActionRestart           // R key - reset the current game
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P - pause/unpause game
	ActionAccelerate        // Space - speed boost / ball launch
	ActionHoldSwap          // H - swap active and stored piece (Tetris)
	ActionDrop              // Enter in-game - instant drop (Tetris)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
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
	case ActionAccelerate:
		return "Accelerate"
	case ActionHoldSwap:
		return "HoldSwap"
	case ActionDrop:
		return "Drop"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick: the
// set of actions triggered during that frame. Terminals deliver no
// key-up events, so held keys surface as repeated per-frame presses.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this
	// frame. A map allows checking multiple actions without order
	// dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
