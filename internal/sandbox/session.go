// Package sandbox implements the interactive grid explorer: a cursor-driven
// editor over a maze grid with instant and animated path solving. It follows
// the tick/render split of the platform: Step mutates state from semantic
// input actions, Render draws to a screen buffer, and neither touches the
// terminal directly.
package sandbox

import (
	"fmt"
	"time"

	"github.com/gridlab/pathlab/internal/config"
	"github.com/gridlab/pathlab/internal/core"
	"github.com/gridlab/pathlab/internal/grid"
	"github.com/gridlab/pathlab/internal/maze"
	"github.com/gridlab/pathlab/internal/pathfind"
	"github.com/gridlab/pathlab/internal/solver"
)

// searchMode tracks what the session is currently showing over the grid.
type searchMode int

const (
	modeEdit searchMode = iota // no search overlay, free editing
	modeAnimating              // stepper running, overlay updates per tick
	modeDone                   // search finished, overlay frozen
)

// SolveRecord describes a completed solve, for history recording.
type SolveRecord struct {
	Solver   string
	Found    bool
	PathLen  int
	Expanded int
	Duration time.Duration
}

// Session is one explorer session over a single maze.
type Session struct {
	cfg  config.SandboxConfig
	maze maze.Maze

	grid   *grid.Grid
	start  core.Coord
	goal   core.Coord
	cursor core.Coord

	solvers   []solver.Info
	solverIdx int

	tick uint64

	// Search state. stepper and snap are valid while mode != modeEdit.
	mode     searchMode
	stepper  *pathfind.Stepper
	snap     pathfind.Snapshot
	paused   bool
	animTick int
	started  time.Time

	status string

	// OnSolve, if set, is called once per completed search.
	OnSolve func(SolveRecord)

	// Screen layout
	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int
	tooSmall   bool
}

// New creates a session for the given maze. The cursor starts on the
// start cell and the first registered solver is selected.
func New(m maze.Maze, cfg config.SandboxConfig) (*Session, error) {
	g, err := m.Grid()
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:     cfg,
		maze:    m,
		grid:    g,
		start:   m.Start,
		goal:    m.Goal,
		cursor:  m.Start,
		solvers: solver.List(),
	}
	if len(s.solvers) == 0 {
		return nil, fmt.Errorf("sandbox: no solvers registered")
	}
	for i, info := range s.solvers {
		if info.ID == cfg.Solver.Default {
			s.solverIdx = i
			break
		}
	}
	return s, nil
}

// MazeID returns the ID of the loaded maze.
func (s *Session) MazeID() string {
	return s.maze.ID
}

// SolverID returns the ID of the currently selected solver.
func (s *Session) SolverID() string {
	return s.solvers[s.solverIdx].ID
}

// Reset applies the runtime configuration. It restores the loaded maze
// and discards any search state or edits.
func (s *Session) Reset(rc core.RuntimeConfig) {
	s.screenW = rc.ScreenW
	s.screenH = rc.ScreenH
	s.hudHeight = 2
	s.restoreMaze()
	s.layout()
}

// Resize updates the screen dimensions without touching grid edits or
// search state.
func (s *Session) Resize(rc core.RuntimeConfig) {
	s.screenW = rc.ScreenW
	s.screenH = rc.ScreenH
	s.layout()
}

// restoreMaze rebuilds the grid and endpoints from the maze definition.
func (s *Session) restoreMaze() {
	g, err := s.maze.Grid()
	if err != nil {
		// The maze validated at load time; a parse failure here is a bug.
		panic("sandbox: maze no longer parses: " + err.Error())
	}
	s.grid = g
	s.start = s.maze.Start
	s.goal = s.maze.Goal
	s.cursor = s.maze.Start
	s.clearSearch()
	s.status = ""
}

// layout recomputes the map placement for the current screen size.
func (s *Session) layout() {
	requiredW := s.grid.W + 2
	requiredH := s.grid.H + s.hudHeight + 2
	if s.screenW < requiredW || s.screenH < requiredH {
		s.tooSmall = true
		return
	}
	s.tooSmall = false
	s.mapOffsetX = (s.screenW - s.grid.W) / 2
	s.mapOffsetY = s.hudHeight + 1
}

// clearSearch drops any search overlay and returns to editing.
func (s *Session) clearSearch() {
	s.mode = modeEdit
	s.stepper = nil
	s.snap = pathfind.Snapshot{}
	s.paused = false
	s.animTick = 0
}

// Step advances the session by one tick, applying the frame's actions.
func (s *Session) Step(input core.InputFrame) {
	s.tick++

	if s.tooSmall {
		return
	}

	s.processInput(input)

	if s.mode == modeAnimating && !s.paused {
		s.animTick++
		if s.animTick >= s.cfg.Animation.TicksPerExpansion {
			s.animTick = 0
			s.advanceAnimation()
		}
	}
}

// processInput applies the frame's semantic actions.
func (s *Session) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		s.moveCursor(core.DirUp)
	case input.Has(core.ActionDown):
		s.moveCursor(core.DirDown)
	case input.Has(core.ActionLeft):
		s.moveCursor(core.DirLeft)
	case input.Has(core.ActionRight):
		s.moveCursor(core.DirRight)
	}

	if input.Has(core.ActionToggleWall) {
		s.toggleWall()
	}
	if input.Has(core.ActionSetStart) {
		s.placeEndpoint(&s.start, "start")
	}
	if input.Has(core.ActionSetGoal) {
		s.placeEndpoint(&s.goal, "goal")
	}
	if input.Has(core.ActionSolve) {
		if s.cfg.Animation.AutoStart {
			s.startAnimation(false)
		} else {
			s.solve()
		}
	}
	if input.Has(core.ActionAnimate) {
		s.startAnimation(false)
	}
	if input.Has(core.ActionStep) {
		s.singleStep()
	}
	if input.Has(core.ActionPause) && s.mode == modeAnimating {
		s.paused = !s.paused
	}
	if input.Has(core.ActionClear) {
		s.clearSearch()
		s.status = ""
	}
	if input.Has(core.ActionReset) {
		s.restoreMaze()
	}
	if input.Has(core.ActionCycleSolver) {
		s.solverIdx = (s.solverIdx + 1) % len(s.solvers)
		s.clearSearch()
		s.status = ""
	}
}

// moveCursor moves the edit cursor one cell, clamped to the grid.
func (s *Session) moveCursor(d core.Dir) {
	next := s.cursor.Step(d)
	next.X = core.Clamp(next.X, 0, s.grid.W-1)
	next.Y = core.Clamp(next.Y, 0, s.grid.H-1)
	s.cursor = next
}

// toggleWall flips the cell under the cursor. Endpoints stay passable.
// Any edit invalidates the current search overlay.
func (s *Session) toggleWall() {
	if s.cursor == s.start || s.cursor == s.goal {
		s.status = "cannot wall an endpoint"
		return
	}
	s.grid.Toggle(s.cursor)
	s.clearSearch()
	s.status = ""
}

// placeEndpoint moves the start or goal to the cursor. The target cell
// must be passable. Moving an endpoint invalidates the search overlay.
func (s *Session) placeEndpoint(ep *core.Coord, name string) {
	if !s.grid.IsPassable(s.cursor) {
		s.status = name + " must be on a floor cell"
		return
	}
	*ep = s.cursor
	s.clearSearch()
	s.status = ""
}

// solve runs the selected solver to completion and shows the result.
func (s *Session) solve() {
	sv, err := solver.Create(s.SolverID())
	if err != nil {
		s.status = err.Error()
		return
	}

	began := time.Now()
	res, err := sv.Solve(s.grid, s.start, s.goal)
	elapsed := time.Since(began)
	if err != nil {
		s.clearSearch()
		s.status = err.Error()
		return
	}

	s.mode = modeDone
	s.stepper = nil
	s.snap = pathfind.Snapshot{
		Done:     true,
		Found:    res.Found,
		Path:     res.Path,
		Expanded: res.Expanded,
	}
	s.finishSearch(sv.ID(), res, elapsed)
}

// startAnimation begins a stepped search. The animation always plays the
// A* expansion regardless of the selected solver, because only A* exposes
// a stepper. When paused is true the animation waits for single steps.
func (s *Session) startAnimation(paused bool) {
	st, err := pathfind.NewStepper(s.grid, s.start, s.goal)
	if err != nil {
		s.clearSearch()
		s.status = err.Error()
		return
	}
	s.mode = modeAnimating
	s.stepper = st
	s.snap = pathfind.Snapshot{}
	s.paused = paused
	s.animTick = 0
	s.started = time.Now()
	s.status = ""
}

// singleStep advances the animation by one expansion. Outside an
// animation it starts one in the paused state.
func (s *Session) singleStep() {
	if s.mode != modeAnimating {
		s.startAnimation(true)
		if s.mode != modeAnimating {
			return
		}
	}
	s.paused = true
	s.advanceAnimation()
}

// advanceAnimation performs one stepper expansion and handles completion.
func (s *Session) advanceAnimation() {
	s.snap = s.stepper.Step()
	if !s.snap.Done {
		return
	}
	s.mode = modeDone
	s.finishSearch("astar", s.stepper.Result(), time.Since(s.started))
	s.stepper = nil
}

// finishSearch sets the status line and reports the solve.
func (s *Session) finishSearch(solverID string, res pathfind.Result, elapsed time.Duration) {
	if res.Found {
		s.status = fmt.Sprintf("path: %d cells, %d expanded", len(res.Path), res.Expanded)
	} else {
		s.status = fmt.Sprintf("no path (%d expanded)", res.Expanded)
	}
	if s.OnSolve != nil {
		s.OnSolve(SolveRecord{
			Solver:   solverID,
			Found:    res.Found,
			PathLen:  len(res.Path),
			Expanded: res.Expanded,
			Duration: elapsed,
		})
	}
}

// Render draws the session to the screen buffer.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	s.renderHUD(dst)

	if s.tooSmall {
		s.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	s.renderGrid(dst)
	s.renderSearch(dst)
	s.renderEndpoints(dst)
	s.renderCursor(dst)
}

// renderHUD draws the title and status lines plus a separator.
func (s *Session) renderHUD(dst *core.Screen) {
	title := fmt.Sprintf(" %s — solver: %s", s.maze.Name, s.solvers[s.solverIdx].Name)
	dst.DrawText(0, 0, title)

	line := s.status
	switch {
	case s.mode == modeAnimating && s.paused:
		line = fmt.Sprintf("stepping (%d expanded) — N to step, P to resume", s.snap.Expanded)
	case s.mode == modeAnimating:
		line = fmt.Sprintf("searching... %d expanded", s.snap.Expanded)
	}
	if line != "" {
		dst.DrawText(1, 1, line)
	}
	dst.DrawHLine(0, s.hudHeight, dst.Width(), '─')
}

// renderGrid draws walls and floor.
func (s *Session) renderGrid(dst *core.Screen) {
	wall := config.Rune(s.cfg.Theme.Wall, grid.WallRune)
	floor := config.Rune(s.cfg.Theme.Floor, grid.FloorRune)

	for y := 0; y < s.grid.H; y++ {
		for x := 0; x < s.grid.W; x++ {
			c := core.C(x, y)
			if s.grid.IsPassable(c) {
				s.setCell(dst, c, floor, core.ColorGray)
			} else {
				s.setCell(dst, c, wall, core.ColorWhite)
			}
		}
	}
}

// renderSearch overlays open, closed, path, and current cells.
func (s *Session) renderSearch(dst *core.Screen) {
	if s.mode == modeEdit {
		return
	}

	closed := config.Rune(s.cfg.Theme.Closed, 'x')
	open := config.Rune(s.cfg.Theme.Open, 'o')
	path := config.Rune(s.cfg.Theme.Path, '*')
	current := config.Rune(s.cfg.Theme.Current, '@')

	for _, c := range s.snap.Closed {
		s.setCell(dst, c, closed, core.ColorBlue)
	}
	for _, c := range s.snap.Open {
		s.setCell(dst, c, open, core.ColorCyan)
	}
	for _, c := range s.snap.Path {
		s.setCell(dst, c, path, core.ColorBrightYellow)
	}
	if s.mode == modeAnimating {
		s.setCell(dst, s.snap.Current, current, core.ColorMagenta)
	}
}

// renderEndpoints draws start and goal on top of any overlay.
func (s *Session) renderEndpoints(dst *core.Screen) {
	s.setCell(dst, s.start, config.Rune(s.cfg.Theme.Start, maze.StartRune), core.ColorBrightGreen)
	s.setCell(dst, s.goal, config.Rune(s.cfg.Theme.Goal, maze.GoalRune), core.ColorRed)
}

// renderCursor recolors the cell under the cursor so the glyph beneath
// stays visible. Plain floor shows the cursor glyph instead.
func (s *Session) renderCursor(dst *core.Screen) {
	x := s.mapOffsetX + s.cursor.X
	y := s.mapOffsetY + s.cursor.Y
	cell := dst.GetCell(x, y)
	if cell.Rune == config.Rune(s.cfg.Theme.Floor, grid.FloorRune) {
		cell.Rune = config.Rune(s.cfg.Theme.Cursor, '+')
	}
	cell.Color = core.ColorOrange
	dst.SetCell(x, y, cell)
}

// setCell draws one grid cell at its screen position.
func (s *Session) setCell(dst *core.Screen, c core.Coord, r rune, col core.Color) {
	dst.SetColored(s.mapOffsetX+c.X, s.mapOffsetY+c.Y, r, col)
}

// renderOverlay draws a centered boxed message.
func (s *Session) renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
