package solver

import (
	"github.com/gridlab/pathlab/internal/core"
	"github.com/gridlab/pathlab/internal/grid"
	"github.com/gridlab/pathlab/internal/pathfind"
)

// BFS is the uninformed baseline solver; same path lengths as A*, usually
// more expansions.
type BFS struct{}

func init() {
	Register("bfs", func() Solver { return BFS{} })
}

// ID returns the solver identifier.
func (BFS) ID() string { return "bfs" }

// Name returns the display name.
func (BFS) Name() string { return "Breadth-first" }

// Solve runs the search to completion.
func (BFS) Solve(g *grid.Grid, start, goal core.Coord) (pathfind.Result, error) {
	return pathfind.BFS(g, start, goal)
}
