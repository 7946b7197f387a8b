package sandbox

import "github.com/gridlab/pathlab/internal/core"

// StateType describes what the session is currently showing.
type StateType string

const (
	StateEditing     StateType = "editing"
	StateAnimating   StateType = "animating"
	StateStepping    StateType = "stepping"
	StateDone        StateType = "done"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the session state for testing and debugging.
type Snapshot struct {
	Tick     uint64
	State    StateType
	Cursor   core.Coord
	Start    core.Coord
	Goal     core.Coord
	Walls    int
	SolverID string
	Expanded int
	PathLen  int
	Found    bool
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	state := StateEditing
	switch {
	case s.tooSmall:
		state = StatePausedSmall
	case s.mode == modeAnimating && s.paused:
		state = StateStepping
	case s.mode == modeAnimating:
		state = StateAnimating
	case s.mode == modeDone:
		state = StateDone
	}

	return Snapshot{
		Tick:     s.tick,
		State:    state,
		Cursor:   s.cursor,
		Start:    s.start,
		Goal:     s.goal,
		Walls:    s.grid.BlockedCount(),
		SolverID: s.SolverID(),
		Expanded: s.snap.Expanded,
		PathLen:  len(s.snap.Path),
		Found:    s.snap.Found,
	}
}
