package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridlab/pathlab/internal/core"
	"github.com/gridlab/pathlab/internal/grid"
	"github.com/gridlab/pathlab/internal/maze"
	"github.com/gridlab/pathlab/internal/pathfind"
	"github.com/gridlab/pathlab/internal/solver"
	"github.com/gridlab/pathlab/internal/storage"
)

var (
	flagSolver   string
	flagNoRecord bool
	flagQuiet    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <maze>",
	Short: "Solve a maze and print the result",
	Long: `Run a solver on the given maze and print the path overlaid on the
layout, along with search statistics. The solve is recorded in the
history database unless --no-record is given.

Examples:
  pathlab solve corridor
  pathlab solve corridor --solver bfs
  pathlab solve spiral --quiet
  pathlab solve rooms --no-record`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagSolver, "solver", "astar", "Solver ID (see 'pathlab list')")
	solveCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record the solve in history")
	solveCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Print statistics only, no layout")
}

func runSolve(cmd *cobra.Command, args []string) {
	mazeID := args[0]

	loader := maze.NewLoader(flagMazeDir)
	m, err := loader.LoadByID(mazeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'pathlab list' to see available mazes.")
		os.Exit(1)
	}

	if !solver.Exists(flagSolver) {
		fmt.Fprintf(os.Stderr, "Error: unknown solver %q\n", flagSolver)
		os.Exit(1)
	}
	sv, err := solver.Create(flagSolver)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g, err := m.Grid()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	began := time.Now()
	res, err := sv.Solve(g, m.Start, m.Goal)
	elapsed := time.Since(began)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !flagQuiet {
		printOverlay(g, m, res)
		fmt.Println()
	}

	if res.Found {
		fmt.Printf("maze=%s solver=%s path=%d expanded=%d time=%s\n",
			m.ID, sv.ID(), len(res.Path), res.Expanded, elapsed.Round(time.Microsecond))
	} else {
		fmt.Printf("maze=%s solver=%s no path (expanded=%d time=%s)\n",
			m.ID, sv.ID(), res.Expanded, elapsed.Round(time.Microsecond))
	}

	if !flagNoRecord {
		recordSolve(m.ID, sv.ID(), res, elapsed)
	}

	if !res.Found {
		os.Exit(2)
	}
}

// printOverlay prints the maze layout with the found path marked.
func printOverlay(g *grid.Grid, m maze.Maze, res pathfind.Result) {
	onPath := make(map[core.Coord]bool, len(res.Path))
	for _, c := range res.Path {
		onPath[c] = true
	}

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := core.C(x, y)
			switch {
			case c == m.Start:
				fmt.Print(string(maze.StartRune))
			case c == m.Goal:
				fmt.Print(string(maze.GoalRune))
			case onPath[c]:
				fmt.Print("*")
			case g.IsPassable(c):
				fmt.Print(string(grid.FloorRune))
			default:
				fmt.Print(string(grid.WallRune))
			}
		}
		fmt.Println()
	}
}

// recordSolve saves the solve to the history database, best effort.
func recordSolve(mazeID, solverID string, res pathfind.Result, elapsed time.Duration) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return
	}
	defer store.Close()

	outcome := storage.OutcomeNoPath
	if res.Found {
		outcome = storage.OutcomeFound
	}
	if _, err := store.SaveSolve(storage.SolveEntry{
		MazeID:     mazeID,
		Solver:     solverID,
		Outcome:    outcome,
		PathLen:    len(res.Path),
		Expanded:   res.Expanded,
		DurationMS: elapsed.Milliseconds(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record solve: %v\n", err)
	}
}
