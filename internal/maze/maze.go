// Package maze provides maze definitions for the sandbox: a layout plus
// fixed start and goal markers, either bundled or loaded from YAML files.
// This package depends on grid but grid does not depend on maze.
package maze

import (
	"fmt"
	"strings"

	"github.com/gridlab/pathlab/internal/core"
	"github.com/gridlab/pathlab/internal/grid"
)

// Layout marker characters, in addition to the grid package's wall/floor.
const (
	StartRune = 'S'
	GoalRune  = 'G'
)

// Maze is a complete maze definition. Start and Goal are derived from the
// 'S' and 'G' layout markers unless set explicitly.
type Maze struct {
	ID     string
	Name   string
	Layout []string
	Start  core.Coord
	Goal   core.Coord

	// FilePath is set for mazes loaded from disk; empty for bundled ones.
	FilePath string
}

// Grid builds a fresh working grid from the layout. Marker cells are
// floor. Each call returns an independent copy, so sandbox edits never
// touch the definition.
func (m *Maze) Grid() (*grid.Grid, error) {
	return grid.ParseLayout(stripMarkers(m.Layout))
}

// Validate checks that the maze is rectangular, has in-bounds passable
// endpoints, and that start and goal differ from each other only if the
// layout says so (equal endpoints are allowed; the search treats them as
// a trivial path).
func (m *Maze) Validate() error {
	g, err := m.Grid()
	if err != nil {
		return fmt.Errorf("maze %q: %w", m.ID, err)
	}
	if !g.IsPassable(m.Start) {
		return fmt.Errorf("maze %q: %w: start %v", m.ID, ErrBadEndpoint, m.Start)
	}
	if !g.IsPassable(m.Goal) {
		return fmt.Errorf("maze %q: %w: goal %v", m.ID, ErrBadEndpoint, m.Goal)
	}
	return nil
}

// FromLayout builds a maze from layout lines containing 'S' and 'G'
// markers. Exactly one of each must be present.
func FromLayout(id, name string, layout []string) (Maze, error) {
	m := Maze{ID: id, Name: name, Layout: layout}

	starts, goals := 0, 0
	for y, row := range layout {
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case StartRune:
				m.Start = core.C(x, y)
				starts++
			case GoalRune:
				m.Goal = core.C(x, y)
				goals++
			}
		}
	}
	if starts != 1 || goals != 1 {
		return Maze{}, fmt.Errorf("maze %q: %w: found %d starts and %d goals",
			id, ErrMissingMarker, starts, goals)
	}
	if err := m.Validate(); err != nil {
		return Maze{}, err
	}
	return m, nil
}

// stripMarkers replaces start/goal markers with floor for grid parsing.
func stripMarkers(layout []string) []string {
	rows := make([]string, len(layout))
	for i, row := range layout {
		row = strings.ReplaceAll(row, string(StartRune), string(grid.FloorRune))
		row = strings.ReplaceAll(row, string(GoalRune), string(grid.FloorRune))
		rows[i] = row
	}
	return rows
}
