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

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start pathlab with a maze picker menu",
	Long: `Start pathlab in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to open a maze in the
explorer. Leaving the explorer returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Open maze
  Tab          - Solve history
  Q            - Quit

Examples:
  pathlab menu
  pathlab menu --mazes ./mazes
  pathlab menu --db ./history.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		store = nil
	}

	sandCfg, err := config.LoadSandbox(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	loader := maze.NewLoader(flagMazeDir)
	mazes, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mazes: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(mazes, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, histErr := tui.RunHistory(store, mazes, cfg.ScreenW, cfg.ScreenH)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from history
		}

		if menuResult.MazeID == "" {
			break
		}

		m, err := loader.LoadByID(menuResult.MazeID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		session, err := sandbox.New(m, sandCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		if err := tui.Run(session, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running explorer: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
