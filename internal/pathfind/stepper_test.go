package pathfind

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridlab/pathlab/internal/core"
	"github.com/gridlab/pathlab/internal/grid"
)

// runToCompletion drives a stepper until Done, guarding against runaway
// loops with the cell-count bound (+1 for the final snapshot).
func runToCompletion(t *testing.T, st *Stepper, cells int) Snapshot {
	t.Helper()
	var snap Snapshot
	for i := 0; i <= cells+1; i++ {
		snap = st.Step()
		if snap.Done {
			return snap
		}
	}
	t.Fatalf("stepper did not finish within %d steps", cells+1)
	return snap
}

func TestStepperMatchesFindPath(t *testing.T) {
	g := mustParse(t,
		".....",
		".###.",
		".....",
		".#.#.",
		".....",
	)
	start, goal := core.C(0, 0), core.C(4, 4)

	want, err := FindPath(g, start, goal)
	require.NoError(t, err)

	st, err := NewStepper(g, start, goal)
	require.NoError(t, err)
	snap := runToCompletion(t, st, g.W*g.H)

	require.True(t, snap.Found)
	require.Equal(t, want.Path, snap.Path)
	require.Equal(t, want.Expanded, snap.Expanded)
	require.Equal(t, want, st.Result())
}

func TestStepperInvalidEndpoint(t *testing.T) {
	g := mustParse(t, ".#")

	_, err := NewStepper(g, core.C(0, 0), core.C(1, 0))
	require.ErrorIs(t, err, ErrInvalidEndpoint)
}

func TestStepperStartEqualsGoal(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	st, err := NewStepper(g, core.C(1, 1), core.C(1, 1))
	require.NoError(t, err)
	require.True(t, st.Done())

	snap := st.Step()
	require.True(t, snap.Done)
	require.True(t, snap.Found)
	require.Equal(t, []core.Coord{core.C(1, 1)}, snap.Path)
	require.Equal(t, 0, snap.Expanded)
}

func TestStepperNoPath(t *testing.T) {
	g := mustParse(t,
		".#.",
		".#.",
		".#.",
	)

	st, err := NewStepper(g, core.C(0, 1), core.C(2, 1))
	require.NoError(t, err)
	snap := runToCompletion(t, st, g.W*g.H)

	require.True(t, snap.Done)
	require.False(t, snap.Found)
	require.Nil(t, snap.Path)
	// The whole left column was explored before giving up.
	require.Len(t, snap.Closed, 3)
}

func TestStepperStableAfterDone(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	st, err := NewStepper(g, core.C(0, 0), core.C(2, 2))
	require.NoError(t, err)
	final := runToCompletion(t, st, g.W*g.H)

	again := st.Step()
	require.Equal(t, final, again, "stepping past completion must not change the outcome")
}

func TestStepperSetsAreDisjoint(t *testing.T) {
	// A cell is in at most one of {open, closed} at any time.
	g := mustParse(t,
		"....",
		".##.",
		"....",
	)

	st, err := NewStepper(g, core.C(0, 0), core.C(3, 2))
	require.NoError(t, err)

	for !st.Done() {
		snap := st.Step()
		seen := make(map[core.Coord]string)
		for _, c := range snap.Open {
			seen[c] = "open"
		}
		for _, c := range snap.Closed {
			require.NotContains(t, seen, c, "%v is both open and closed", c)
		}
	}
}
