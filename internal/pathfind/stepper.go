package pathfind

import (
	"github.com/gridlab/pathlab/internal/core"
	"github.com/gridlab/pathlab/internal/grid"
)

// Snapshot exposes the per-iteration state of a stepped search, for
// driving visualizations. Coordinate slices are freshly allocated per
// snapshot and ordered row-major for determinism.
type Snapshot struct {
	Current  core.Coord   // node closed by the latest step (zero before the first)
	Open     []core.Coord // current frontier
	Closed   []core.Coord // expanded nodes
	Path     []core.Coord // set once Done && Found
	Done     bool
	Found    bool
	Expanded int
}

// Stepper runs the same A* search as FindPath one expansion at a time.
// It is synchronous and single-owner: the search advances only inside
// Step, on the calling goroutine.
//
// A Stepper driven to completion produces exactly the Result that FindPath
// returns for the same inputs.
type Stepper struct {
	s       *search
	current core.Coord
	done    bool
	found   bool
	path    []core.Coord
}

// NewStepper validates the endpoints and prepares a stepped search.
// The degenerate start == goal case completes immediately: the first Step
// reports Done with the single-element path.
func NewStepper(g *grid.Grid, start, goal core.Coord) (*Stepper, error) {
	if err := validateEndpoints(g, start, goal); err != nil {
		return nil, err
	}
	st := &Stepper{s: newSearch(g, start, goal)}
	if start == goal {
		st.done = true
		st.found = true
		st.path = []core.Coord{start}
	}
	return st, nil
}

// Step advances the search by one node expansion and returns a snapshot.
// Calling Step after the search has finished returns the final snapshot
// unchanged.
func (st *Stepper) Step() Snapshot {
	if st.done {
		return st.snapshot()
	}
	if len(st.s.open) == 0 {
		st.done = true
		return st.snapshot()
	}

	st.s.expand()
	st.current = st.s.coord(st.s.lastPopped)

	if st.s.goalReached() {
		st.done = true
		st.found = true
		st.path = st.s.reconstruct()
	}
	return st.snapshot()
}

// Done reports whether the search has finished.
func (st *Stepper) Done() bool {
	return st.done
}

// Result returns the search outcome. Valid once Done reports true; before
// that it reflects the search so far with Found=false.
func (st *Stepper) Result() Result {
	return Result{Found: st.found, Path: st.path, Expanded: st.s.expanded}
}

// snapshot copies the current open and closed sets in row-major order.
func (st *Stepper) snapshot() Snapshot {
	snap := Snapshot{
		Current:  st.current,
		Done:     st.done,
		Found:    st.found,
		Expanded: st.s.expanded,
	}
	for idx, node := range st.s.nodes {
		switch node.state {
		case stateOpen:
			snap.Open = append(snap.Open, st.s.coord(idx))
		case stateClosed:
			snap.Closed = append(snap.Closed, st.s.coord(idx))
		}
	}
	if st.found {
		snap.Path = append([]core.Coord(nil), st.path...)
	}
	return snap
}
