// Package grid provides the rectangular passable/blocked cell grid that
// searches run on. The grid is plain data: it knows nothing about search
// state, rendering, or input.
package grid

import (
	"strings"

	"github.com/gridlab/pathlab/internal/core"
)

// Layout characters recognized by ParseLayout and produced by Layout.
const (
	WallRune  = '#'
	FloorRune = '.'
)

// Grid represents a rectangular board of passable and blocked cells.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W       int
	H       int
	blocked []bool
}

// New creates a grid of the given dimensions with all cells passable.
// Dimensions must be positive.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{
		W:       w,
		H:       h,
		blocked: make([]bool, w*h),
	}, nil
}

// ParseLayout builds a grid from layout lines, one string per row.
// '#' marks a blocked cell; any other character is passable floor.
// All rows must have the same length.
func ParseLayout(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g, err := New(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, ch := range []byte(row) {
			if ch == WallRune {
				g.SetBlocked(core.C(x, y))
			}
		}
	}
	return g, nil
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c core.Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// IsPassable returns true if the coordinate is in bounds and not blocked.
func (g *Grid) IsPassable(c core.Coord) bool {
	return g.InBounds(c) && !g.blocked[g.index(c)]
}

// SetBlocked marks the cell at the given coordinate as a wall.
// Out-of-bounds coordinates are ignored.
func (g *Grid) SetBlocked(c core.Coord) {
	if g.InBounds(c) {
		g.blocked[g.index(c)] = true
	}
}

// SetPassable clears the wall at the given coordinate.
// Out-of-bounds coordinates are ignored.
func (g *Grid) SetPassable(c core.Coord) {
	if g.InBounds(c) {
		g.blocked[g.index(c)] = false
	}
}

// Toggle flips the cell at the given coordinate between wall and floor.
// Out-of-bounds coordinates are ignored.
func (g *Grid) Toggle(c core.Coord) {
	if g.InBounds(c) {
		g.blocked[g.index(c)] = !g.blocked[g.index(c)]
	}
}

// BlockedCount returns the number of wall cells.
func (g *Grid) BlockedCount() int {
	count := 0
	for _, b := range g.blocked {
		if b {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	blocked := make([]bool, len(g.blocked))
	copy(blocked, g.blocked)
	return &Grid{
		W:       g.W,
		H:       g.H,
		blocked: blocked,
	}
}

// Equal returns true if two grids have the same dimensions and walls.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, b := range g.blocked {
		if b != other.blocked[i] {
			return false
		}
	}
	return true
}

// Layout returns the grid as layout lines, the inverse of ParseLayout.
func (g *Grid) Layout() []string {
	rows := make([]string, g.H)
	var sb strings.Builder
	for y := 0; y < g.H; y++ {
		sb.Reset()
		for x := 0; x < g.W; x++ {
			if g.blocked[y*g.W+x] {
				sb.WriteByte(WallRune)
			} else {
				sb.WriteByte(FloorRune)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String returns the layout joined with newlines, for debugging and
// headless CLI output.
func (g *Grid) String() string {
	return strings.Join(g.Layout(), "\n")
}
