package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gridlab/pathlab/internal/config"
	"github.com/gridlab/pathlab/internal/core"
	"github.com/gridlab/pathlab/internal/maze"
	"github.com/gridlab/pathlab/internal/platform/tui"
	"github.com/gridlab/pathlab/internal/sandbox"
	"github.com/gridlab/pathlab/internal/storage"
)

var exploreCmd = &cobra.Command{
	Use:   "explore <maze>",
	Short: "Open the interactive explorer on a maze",
	Long: `Open the interactive explorer: move the cursor, toggle walls, place
start and goal, and solve instantly or with an animated search.

Controls:
  Arrows/hjkl - Move cursor
  Space/X     - Toggle wall
  S / G       - Place start / goal
  Enter       - Solve instantly
  A           - Animated solve
  N           - Single search step
  P           - Pause animation
  Tab         - Switch solver
  C           - Clear search overlay
  R           - Restore the loaded maze
  Q/Ctrl+C    - Quit

Examples:
  pathlab explore corridor
  pathlab explore custom --mazes ./mazes`,
	Args: cobra.MaximumNArgs(1),
	Run:  runExplore,
}

func runExplore(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		// No maze given: fall through to the picker menu.
		runMenu(cmd, nil)
		return
	}
	mazeID := args[0]

	loader := maze.NewLoader(flagMazeDir)
	m, err := loader.LoadByID(mazeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'pathlab list' to see available mazes.")
		os.Exit(1)
	}

	sandCfg, err := config.LoadSandbox(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	session, err := sandbox.New(m, sandCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		// Continue without storage - exploring still works
		store = nil
	}

	runErr := tui.Run(session, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running explorer: %v\n", runErr)
		os.Exit(1)
	}
}
