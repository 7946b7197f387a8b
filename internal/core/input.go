package core

// Action represents a semantic sandbox action, abstracted from physical
// key presses. The platform maps keys to actions; the sandbox only sees
// high-level intents.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Up arrow, K - move cursor up
	ActionDown              // Down arrow, J - move cursor down
	ActionLeft              // Left arrow, H - move cursor left
	ActionRight             // Right arrow, L - move cursor right
	ActionToggleWall        // Space, X - toggle wall under cursor
	ActionSetStart          // S - place start at cursor
	ActionSetGoal           // G - place goal at cursor
	ActionSolve             // Enter - solve instantly
	ActionAnimate           // A - solve with animated expansion
	ActionStep              // N - advance animation by one expansion
	ActionClear             // C - clear search state, keep edits
	ActionReset             // R - restore the loaded maze
	ActionPause             // P - pause/resume animation
	ActionCycleSolver       // Tab - switch solver
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - go back to menu
	ActionQuit              // Q, Ctrl+C - exit
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
	case ActionToggleWall:
		return "ToggleWall"
	case ActionSetStart:
		return "SetStart"
	case ActionSetGoal:
		return "SetGoal"
	case ActionSolve:
		return "Solve"
	case ActionAnimate:
		return "Animate"
	case ActionStep:
		return "Step"
	case ActionClear:
		return "Clear"
	case ActionReset:
		return "Reset"
	case ActionPause:
		return "Pause"
	case ActionCycleSolver:
		return "CycleSolver"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
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
