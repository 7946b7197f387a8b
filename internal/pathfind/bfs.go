package pathfind

import (
	"github.com/gridlab/pathlab/internal/core"
	"github.com/gridlab/pathlab/internal/grid"
)

// BFS computes an unweighted shortest path with a plain breadth-first
// search. It shares FindPath's contract: ErrInvalidEndpoint for bad
// endpoints, a single-element path for start == goal, Found=false for an
// unreachable goal, and neighbor expansion in the fixed up/down/left/right
// order.
//
// On an unweighted grid BFS and A* always agree on path *length*; they may
// pick different equal-length paths. Tests use this as a cross-check.
func BFS(g *grid.Grid, start, goal core.Coord) (Result, error) {
	if err := validateEndpoints(g, start, goal); err != nil {
		return Result{}, err
	}
	if start == goal {
		return Result{Found: true, Path: []core.Coord{start}}, nil
	}

	startIdx := start.Y*g.W + start.X
	goalIdx := goal.Y*g.W + goal.X

	cameFrom := make([]int, g.W*g.H)
	for i := range cameFrom {
		cameFrom[i] = -2 // unvisited
	}
	cameFrom[startIdx] = -1

	queue := []int{startIdx}
	expanded := 0

	for len(queue) > 0 {
		currentIdx := queue[0]
		queue = queue[1:]
		expanded++

		current := core.C(currentIdx%g.W, currentIdx/g.W)
		for _, d := range core.Dirs {
			neighbor := current.Step(d)
			if !g.IsPassable(neighbor) {
				continue
			}
			idx := neighbor.Y*g.W + neighbor.X
			if cameFrom[idx] != -2 {
				continue
			}
			cameFrom[idx] = currentIdx
			if idx == goalIdx {
				return Result{
					Found:    true,
					Path:     walkParents(g, cameFrom, goalIdx),
					Expanded: expanded,
				}, nil
			}
			queue = append(queue, idx)
		}
	}

	return Result{Expanded: expanded}, nil
}

// walkParents rebuilds the start→goal path from a parent-index array.
func walkParents(g *grid.Grid, cameFrom []int, goalIdx int) []core.Coord {
	var path []core.Coord
	for idx := goalIdx; idx != -1; idx = cameFrom[idx] {
		path = append(path, core.C(idx%g.W, idx/g.W))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
