package grid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridlab/pathlab/internal/core"
)

func TestParseLayout(t *testing.T) {
	g, err := ParseLayout([]string{
		"..#",
		".#.",
		"...",
	})
	require.NoError(t, err)
	require.Equal(t, 3, g.W)
	require.Equal(t, 3, g.H)

	require.True(t, g.IsPassable(core.C(0, 0)))
	require.False(t, g.IsPassable(core.C(2, 0)))
	require.False(t, g.IsPassable(core.C(1, 1)))
	require.Equal(t, 2, g.BlockedCount())
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"no rows", nil, ErrEmptyGrid},
		{"empty row", []string{""}, ErrEmptyGrid},
		{"ragged rows", []string{"...", ".."}, ErrNonRectangular},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLayout(tc.rows)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		_, err := New(dims[0], dims[1])
		require.ErrorIs(t, err, ErrEmptyGrid, "New(%d, %d)", dims[0], dims[1])
	}
}

func TestBoundsAndPassability(t *testing.T) {
	g, err := New(4, 3)
	require.NoError(t, err)

	require.True(t, g.InBounds(core.C(0, 0)))
	require.True(t, g.InBounds(core.C(3, 2)))
	require.False(t, g.InBounds(core.C(4, 0)))
	require.False(t, g.InBounds(core.C(0, 3)))
	require.False(t, g.InBounds(core.C(-1, 0)))

	// Out of bounds is never passable
	require.False(t, g.IsPassable(core.C(-1, 0)))
	require.False(t, g.IsPassable(core.C(4, 2)))
}

func TestToggleAndSet(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	c := core.C(1, 1)
	g.Toggle(c)
	require.False(t, g.IsPassable(c))
	g.Toggle(c)
	require.True(t, g.IsPassable(c))

	g.SetBlocked(c)
	require.False(t, g.IsPassable(c))
	g.SetPassable(c)
	require.True(t, g.IsPassable(c))

	// Out of bounds edits are ignored, not panics
	g.Toggle(core.C(9, 9))
	g.SetBlocked(core.C(-1, -1))
	require.Equal(t, 0, g.BlockedCount())
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := ParseLayout([]string{"..", ".#"})
	require.NoError(t, err)

	clone := g.Clone()
	require.True(t, g.Equal(clone))

	clone.SetBlocked(core.C(0, 0))
	require.False(t, g.Equal(clone))
	require.True(t, g.IsPassable(core.C(0, 0)), "mutating the clone must not touch the original")
}

func TestLayoutRoundTrip(t *testing.T) {
	rows := []string{
		"#..#",
		"....",
		".##.",
	}
	g, err := ParseLayout(rows)
	require.NoError(t, err)
	require.Equal(t, rows, g.Layout())

	reparsed, err := ParseLayout(g.Layout())
	require.NoError(t, err)
	require.True(t, g.Equal(reparsed))
}
