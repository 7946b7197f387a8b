package pathfind

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridlab/pathlab/internal/core"
	"github.com/gridlab/pathlab/internal/grid"
)

func TestBFSSharesContract(t *testing.T) {
	g := mustParse(t,
		"..#",
		"...",
	)

	// Invalid endpoints
	_, err := BFS(g, core.C(2, 0), core.C(0, 0))
	require.ErrorIs(t, err, ErrInvalidEndpoint)
	_, err = BFS(g, core.C(0, 0), core.C(5, 5))
	require.ErrorIs(t, err, ErrInvalidEndpoint)

	// Degenerate case
	res, err := BFS(g, core.C(1, 1), core.C(1, 1))
	require.NoError(t, err)
	require.Equal(t, []core.Coord{core.C(1, 1)}, res.Path)
}

func TestBFSShortestOnOpenGrid(t *testing.T) {
	g, err := grid.New(7, 5)
	require.NoError(t, err)

	start, goal := core.C(1, 1), core.C(6, 4)
	res, err := BFS(g, start, goal)
	require.NoError(t, err)
	require.True(t, res.Found)
	requireValidPath(t, g, start, goal, res.Path)
	require.Equal(t, start.Manhattan(goal), len(res.Path)-1)
}

func TestBFSNoPath(t *testing.T) {
	g := mustParse(t,
		".#.",
		".#.",
	)

	res, err := BFS(g, core.C(0, 0), core.C(2, 1))
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Nil(t, res.Path)
}
