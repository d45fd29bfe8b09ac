package core

// Action represents a semantic game intent, abstracted from physical key presses.
// The game never sees keys; the platform decodes them into actions first.
type Action int

const (
	ActionNone           Action = iota
	ActionUp                    // Up arrow, W - steer up
	ActionDown                  // Down arrow, S - steer down
	ActionLeft                  // Left arrow, A - steer left
	ActionRight                 // Right arrow, D - steer right
	ActionSelectSlow            // 1 - slow difficulty
	ActionSelectFast            // 2 - fast difficulty
	ActionSelectVeryFast        // 3 - very fast difficulty
	ActionStart                 // Space, Enter - start from the menu
	ActionRestart               // R - restart the round
	ActionToMenu                // Esc - return to the menu
	ActionQuit                  // Q, Ctrl+C - exit the program (platform only)
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
	case ActionSelectSlow:
		return "SelectSlow"
	case ActionSelectFast:
		return "SelectFast"
	case ActionSelectVeryFast:
		return "SelectVeryFast"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionToMenu:
		return "ToMenu"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two simulation ticks.
// Actions keep their arrival order: pressing Up then Left within one frame
// must be applied as Up followed by Left.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame. ActionNone is dropped.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, x := range f.actions {
		if x == a {
			return true
		}
	}
	return false
}

// Actions returns the frame's actions in arrival order.
func (f InputFrame) Actions() []Action {
	out := make([]Action, len(f.actions))
	copy(out, f.actions)
	return out
}

// Len returns the number of actions recorded.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets the frame for the next tick, keeping the backing array.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
