package sandbox

import (
	"strings"
	"testing"

	"github.com/gridlab/pathlab/internal/config"
	"github.com/gridlab/pathlab/internal/core"
	"github.com/gridlab/pathlab/internal/maze"
	"github.com/gridlab/pathlab/internal/pathfind"
)

func newTestSession(t *testing.T, layout []string) *Session {
	t.Helper()

	m, err := maze.FromLayout("test", "Test Maze", layout)
	if err != nil {
		t.Fatalf("FromLayout() failed: %v", err)
	}
	s, err := New(m, config.DefaultSandboxConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	s.Reset(core.RuntimeConfig{ScreenW: 60, ScreenH: 24, TickRate: 30})
	return s
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestCursorMovementClamped(t *testing.T) {
	s := newTestSession(t, []string{
		"S..",
		"...",
		"..G",
	})

	// Cursor starts on start (0,0); moving up/left stays in bounds
	s.Step(frame(core.ActionUp))
	s.Step(frame(core.ActionLeft))
	if got := s.Snapshot().Cursor; got != core.C(0, 0) {
		t.Errorf("Cursor = %v, want (0,0)", got)
	}

	s.Step(frame(core.ActionRight))
	s.Step(frame(core.ActionDown))
	if got := s.Snapshot().Cursor; got != core.C(1, 1) {
		t.Errorf("Cursor = %v, want (1,1)", got)
	}

	for i := 0; i < 10; i++ {
		s.Step(frame(core.ActionRight))
	}
	if got := s.Snapshot().Cursor; got != core.C(2, 1) {
		t.Errorf("Cursor = %v, want clamped to (2,1)", got)
	}
}

func TestToggleWall(t *testing.T) {
	s := newTestSession(t, []string{
		"S..",
		"...",
		"..G",
	})

	before := s.Snapshot().Walls

	// Endpoint under cursor: toggle is refused
	s.Step(frame(core.ActionToggleWall))
	if got := s.Snapshot().Walls; got != before {
		t.Errorf("Walls = %d after toggling endpoint, want %d", got, before)
	}

	s.Step(frame(core.ActionRight))
	s.Step(frame(core.ActionToggleWall))
	if got := s.Snapshot().Walls; got != before+1 {
		t.Errorf("Walls = %d after toggle, want %d", got, before+1)
	}

	s.Step(frame(core.ActionToggleWall))
	if got := s.Snapshot().Walls; got != before {
		t.Errorf("Walls = %d after re-toggle, want %d", got, before)
	}
}

func TestPlaceEndpoints(t *testing.T) {
	s := newTestSession(t, []string{
		"S#.",
		"...",
		"..G",
	})

	// Wall at (1,0): placing the goal there is refused
	s.Step(frame(core.ActionRight))
	s.Step(frame(core.ActionSetGoal))
	if got := s.Snapshot().Goal; got != core.C(2, 2) {
		t.Errorf("Goal = %v after refused placement, want (2,2)", got)
	}

	s.Step(frame(core.ActionDown))
	s.Step(frame(core.ActionSetGoal))
	if got := s.Snapshot().Goal; got != core.C(1, 1) {
		t.Errorf("Goal = %v, want (1,1)", got)
	}

	s.Step(frame(core.ActionSetStart))
	if got := s.Snapshot().Start; got != core.C(1, 1) {
		t.Errorf("Start = %v, want (1,1)", got)
	}
}

func TestInstantSolve(t *testing.T) {
	s := newTestSession(t, []string{
		"S..",
		"...",
		"..G",
	})

	var rec SolveRecord
	calls := 0
	s.OnSolve = func(r SolveRecord) {
		rec = r
		calls++
	}

	s.Step(frame(core.ActionSolve))

	snap := s.Snapshot()
	if snap.State != StateDone {
		t.Fatalf("State = %q, want %q", snap.State, StateDone)
	}
	if !snap.Found {
		t.Fatal("Expected path to be found")
	}
	if snap.PathLen != 5 {
		t.Errorf("PathLen = %d, want 5", snap.PathLen)
	}
	if calls != 1 {
		t.Fatalf("OnSolve called %d times, want 1", calls)
	}
	if rec.Solver != "astar" || !rec.Found || rec.PathLen != 5 {
		t.Errorf("Unexpected record: %+v", rec)
	}
}

func TestSolveNoPath(t *testing.T) {
	s := newTestSession(t, []string{
		"S#.",
		".#.",
		".#G",
	})

	s.Step(frame(core.ActionSolve))

	snap := s.Snapshot()
	if snap.State != StateDone {
		t.Fatalf("State = %q, want %q", snap.State, StateDone)
	}
	if snap.Found {
		t.Error("Expected no path")
	}
	if snap.PathLen != 0 {
		t.Errorf("PathLen = %d, want 0", snap.PathLen)
	}
}

func TestAnimationRunsToCompletion(t *testing.T) {
	layout := []string{
		"S....",
		".###.",
		"....G",
	}
	s := newTestSession(t, layout)

	s.Step(frame(core.ActionAnimate))
	if got := s.Snapshot().State; got != StateAnimating {
		t.Fatalf("State = %q after animate, want %q", got, StateAnimating)
	}

	empty := frame()
	for i := 0; i < 1000 && s.Snapshot().State == StateAnimating; i++ {
		s.Step(empty)
	}

	snap := s.Snapshot()
	if snap.State != StateDone {
		t.Fatalf("State = %q after run, want %q", snap.State, StateDone)
	}

	// The animated search reaches the same result as the direct one
	m, _ := maze.FromLayout("ref", "Ref", layout)
	g, _ := m.Grid()
	want, err := pathfind.FindPath(g, m.Start, m.Goal)
	if err != nil {
		t.Fatalf("FindPath() failed: %v", err)
	}
	if snap.Found != want.Found || snap.PathLen != len(want.Path) || snap.Expanded != want.Expanded {
		t.Errorf("Animated result (found=%v len=%d expanded=%d) differs from direct (found=%v len=%d expanded=%d)",
			snap.Found, snap.PathLen, snap.Expanded, want.Found, len(want.Path), want.Expanded)
	}
}

func TestSingleStep(t *testing.T) {
	s := newTestSession(t, []string{
		"S..",
		"...",
		"..G",
	})

	// First step starts a paused animation and performs one expansion
	s.Step(frame(core.ActionStep))
	snap := s.Snapshot()
	if snap.State != StateStepping {
		t.Fatalf("State = %q, want %q", snap.State, StateStepping)
	}
	if snap.Expanded != 1 {
		t.Errorf("Expanded = %d after one step, want 1", snap.Expanded)
	}

	// Ticks without input do not advance a paused animation
	for i := 0; i < 20; i++ {
		s.Step(frame())
	}
	if got := s.Snapshot().Expanded; got != 1 {
		t.Errorf("Expanded = %d after idle ticks, want 1", got)
	}

	s.Step(frame(core.ActionStep))
	if got := s.Snapshot().Expanded; got != 2 {
		t.Errorf("Expanded = %d after second step, want 2", got)
	}
}

func TestEditInvalidatesSearch(t *testing.T) {
	s := newTestSession(t, []string{
		"S..",
		"...",
		"..G",
	})

	s.Step(frame(core.ActionSolve))
	if got := s.Snapshot().State; got != StateDone {
		t.Fatalf("State = %q, want %q", got, StateDone)
	}

	s.Step(frame(core.ActionRight))
	s.Step(frame(core.ActionToggleWall))
	if got := s.Snapshot().State; got != StateEditing {
		t.Errorf("State = %q after edit, want %q", got, StateEditing)
	}
}

func TestCycleSolver(t *testing.T) {
	s := newTestSession(t, []string{"S.G"})

	first := s.Snapshot().SolverID
	if first != "astar" {
		t.Fatalf("Default solver = %q, want astar", first)
	}

	s.Step(frame(core.ActionCycleSolver))
	second := s.Snapshot().SolverID
	if second == first {
		t.Fatal("Solver did not change after cycle")
	}

	s.Step(frame(core.ActionCycleSolver))
	if got := s.Snapshot().SolverID; got != first {
		t.Errorf("Solver = %q after full cycle, want %q", got, first)
	}
}

func TestResetRestoresMaze(t *testing.T) {
	s := newTestSession(t, []string{
		"S..",
		"...",
		"..G",
	})

	s.Step(frame(core.ActionRight))
	s.Step(frame(core.ActionToggleWall))
	s.Step(frame(core.ActionDown))
	s.Step(frame(core.ActionSetGoal))

	s.Step(frame(core.ActionReset))
	snap := s.Snapshot()
	if snap.Walls != 0 {
		t.Errorf("Walls = %d after reset, want 0", snap.Walls)
	}
	if snap.Goal != core.C(2, 2) {
		t.Errorf("Goal = %v after reset, want (2,2)", snap.Goal)
	}
	if snap.Cursor != core.C(0, 0) {
		t.Errorf("Cursor = %v after reset, want (0,0)", snap.Cursor)
	}
}

func TestRenderShowsGrid(t *testing.T) {
	s := newTestSession(t, []string{
		"S#.",
		"...",
		"..G",
	})

	screen := core.NewScreen(60, 24)
	s.Render(screen)
	out := screen.String()

	for _, glyph := range []string{"S", "G", "#"} {
		if !strings.Contains(out, glyph) {
			t.Errorf("Rendered screen missing %q", glyph)
		}
	}
	if !strings.Contains(out, "Test Maze") {
		t.Error("Rendered screen missing maze name in HUD")
	}
}

func TestRenderShowsPathAfterSolve(t *testing.T) {
	s := newTestSession(t, []string{
		"S..",
		"...",
		"..G",
	})

	s.Step(frame(core.ActionSolve))
	screen := core.NewScreen(60, 24)
	s.Render(screen)

	if !strings.Contains(screen.String(), "*") {
		t.Error("Rendered screen missing path glyphs after solve")
	}
}

func TestTooSmallWindow(t *testing.T) {
	s := newTestSession(t, []string{
		"S..",
		"...",
		"..G",
	})
	s.Reset(core.RuntimeConfig{ScreenW: 4, ScreenH: 3, TickRate: 30})

	if got := s.Snapshot().State; got != StatePausedSmall {
		t.Fatalf("State = %q, want %q", got, StatePausedSmall)
	}

	// Input is ignored while the window is too small
	s.Step(frame(core.ActionRight))
	if got := s.Snapshot().Cursor; got != core.C(0, 0) {
		t.Errorf("Cursor = %v, want (0,0)", got)
	}

	screen := core.NewScreen(30, 10)
	s.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("Expected too-small overlay")
	}
}
