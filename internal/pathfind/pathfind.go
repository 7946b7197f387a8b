// Package pathfind implements unweighted shortest-path search on a
// 4-connected grid. The primary solver is A* with a Manhattan-distance
// heuristic; a plain BFS is provided as a reference baseline.
//
// The A* variant here matches a specific observable contract:
//
//   - Neighbors are expanded in the fixed order up, down, left, right.
//   - The open set is scanned linearly and ties on fScore keep the node
//     that entered the open set first.
//   - A node moved to the closed set is never re-opened, even if a cheaper
//     route to it is found later.
//
// With unit step costs and the consistent Manhattan heuristic the no-reopen
// policy still yields minimal-length paths, but all three rules decide
// *which* of several equal-length paths is returned, so they are part of the
// contract and locked by tests. A heap-based open set (see the usual
// container/heap formulation) would be the natural optimization for large
// grids, but it reorders equal-fScore entries and is deliberately not used.
package pathfind

import (
	"fmt"

	"github.com/gridlab/pathlab/internal/core"
	"github.com/gridlab/pathlab/internal/grid"
)

// Result is the outcome of a search.
//
// Found=false with a nil Path is the normal "no path exists" outcome, not
// an error: callers must treat it as a valid result variant.
type Result struct {
	Found    bool
	Path     []core.Coord // start..goal inclusive when Found
	Expanded int          // nodes moved to the closed set
}

// Node lifecycle states. A cell is in exactly one of these at any time
// during a search.
const (
	stateUnvisited uint8 = iota
	stateOpen
	stateClosed
)

// searchNode is the per-cell bookkeeping slot for one search invocation.
// cameFrom is an index into the arena (-1 for the start), so the whole
// parent structure is freed at once when the search is discarded.
type searchNode struct {
	state    uint8
	gScore   int
	hScore   int // set once at discovery, never recomputed
	cameFrom int
}

// search holds the transient state of one invocation. It is allocated
// fresh per search; nothing leaks between invocations.
type search struct {
	grid     *grid.Grid
	start    core.Coord
	goal     core.Coord
	startIdx int
	goalIdx  int
	nodes    []searchNode
	open     []int // arena indices currently open, in insertion order
	expanded int

	// lastPopped is the arena index closed by the most recent expand call,
	// tracked for the stepping visualizer.
	lastPopped int
}

// FindPath computes an unweighted shortest path from start to goal,
// avoiding blocked cells, moving only between 4-adjacent cells.
//
// If start or goal is out of bounds or blocked it returns
// ErrInvalidEndpoint without searching. If start == goal the result is the
// single-element path [start]. If the goal is unreachable the result has
// Found=false, which is an expected outcome rather than an error.
func FindPath(g *grid.Grid, start, goal core.Coord) (Result, error) {
	if err := validateEndpoints(g, start, goal); err != nil {
		return Result{}, err
	}
	if start == goal {
		return Result{Found: true, Path: []core.Coord{start}}, nil
	}

	s := newSearch(g, start, goal)
	for len(s.open) > 0 && s.nodes[s.goalIdx].state != stateOpen {
		s.expand()
	}

	return s.result(), nil
}

// validateEndpoints rejects out-of-bounds or blocked endpoints before any
// search state is touched.
func validateEndpoints(g *grid.Grid, start, goal core.Coord) error {
	if !g.IsPassable(start) {
		return fmt.Errorf("%w: start %v", ErrInvalidEndpoint, start)
	}
	if !g.IsPassable(goal) {
		return fmt.Errorf("%w: goal %v", ErrInvalidEndpoint, goal)
	}
	return nil
}

// newSearch allocates fresh per-cell state and seeds the open set with the
// start node (gScore 0, no parent).
func newSearch(g *grid.Grid, start, goal core.Coord) *search {
	s := &search{
		grid:     g,
		start:    start,
		goal:     goal,
		startIdx: start.Y*g.W + start.X,
		goalIdx:  goal.Y*g.W + goal.X,
		nodes:    make([]searchNode, g.W*g.H),
	}
	s.nodes[s.startIdx] = searchNode{
		state:    stateOpen,
		gScore:   0,
		hScore:   start.Manhattan(goal),
		cameFrom: -1,
	}
	s.open = append(s.open, s.startIdx)
	return s
}

// expand performs one iteration of the main loop: pop the open node with
// the lowest fScore, close it, and relax its 4 orthogonal neighbors.
func (s *search) expand() {
	currentIdx := s.popMin()
	s.nodes[currentIdx].state = stateClosed
	s.expanded++

	current := s.coord(currentIdx)
	currentG := s.nodes[currentIdx].gScore

	for _, d := range core.Dirs {
		neighbor := current.Step(d)
		if !s.grid.IsPassable(neighbor) {
			continue
		}
		idx := neighbor.Y*s.grid.W + neighbor.X
		node := &s.nodes[idx]

		switch node.state {
		case stateClosed:
			// Closed nodes are final in this variant; never re-opened.
		case stateOpen:
			if currentG+1 < node.gScore {
				node.gScore = currentG + 1
				node.cameFrom = currentIdx
				// hScore stays as computed at first discovery.
			}
		default:
			node.state = stateOpen
			node.gScore = currentG + 1
			node.hScore = neighbor.Manhattan(s.goal)
			node.cameFrom = currentIdx
			s.open = append(s.open, idx)
		}
	}
}

// popMin removes and returns the open-set entry with the lowest
// fScore = gScore + hScore. Ties keep the earliest-inserted node, which is
// what makes equal-cost path selection deterministic.
func (s *search) popMin() int {
	best := 0
	bestF := s.fScore(s.open[0])
	for i := 1; i < len(s.open); i++ {
		if f := s.fScore(s.open[i]); f < bestF {
			best = i
			bestF = f
		}
	}
	idx := s.open[best]
	s.open = append(s.open[:best], s.open[best+1:]...)
	s.lastPopped = idx
	return idx
}

func (s *search) fScore(idx int) int {
	return s.nodes[idx].gScore + s.nodes[idx].hScore
}

func (s *search) coord(idx int) core.Coord {
	return core.C(idx%s.grid.W, idx/s.grid.W)
}

// goalReached reports whether the goal has entered the open set, which is
// this variant's success condition.
func (s *search) goalReached() bool {
	return s.nodes[s.goalIdx].state == stateOpen
}

// result finalizes the search into a Result.
func (s *search) result() Result {
	if !s.goalReached() {
		return Result{Expanded: s.expanded}
	}
	return Result{Found: true, Path: s.reconstruct(), Expanded: s.expanded}
}

// reconstruct walks the cameFrom chain from the goal back to the start and
// reverses it into start→goal order. A chain that does not terminate at the
// start indicates corrupted search state and panics: that is a bug, not a
// recoverable condition.
func (s *search) reconstruct() []core.Coord {
	path := []core.Coord{s.goal}
	idx := s.goalIdx
	for s.nodes[idx].cameFrom != -1 {
		idx = s.nodes[idx].cameFrom
		path = append(path, s.coord(idx))
	}
	if idx != s.startIdx {
		panic(fmt.Sprintf("pathfind: parent chain from %v ends at %v, not at start %v",
			s.goal, s.coord(idx), s.start))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
