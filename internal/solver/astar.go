package solver

import (
	"github.com/gridlab/pathlab/internal/core"
	"github.com/gridlab/pathlab/internal/grid"
	"github.com/gridlab/pathlab/internal/pathfind"
)

// AStar is the default solver: unweighted A* with Manhattan heuristic.
type AStar struct{}

func init() {
	Register("astar", func() Solver { return AStar{} })
}

// ID returns the solver identifier.
func (AStar) ID() string { return "astar" }

// Name returns the display name.
func (AStar) Name() string { return "A* (Manhattan)" }

// Solve runs the search to completion.
func (AStar) Solve(g *grid.Grid, start, goal core.Coord) (pathfind.Result, error) {
	return pathfind.FindPath(g, start, goal)
}
