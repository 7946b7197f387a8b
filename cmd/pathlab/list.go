package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridlab/pathlab/internal/maze"
	"github.com/gridlab/pathlab/internal/solver"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available mazes and solvers",
	Long:  `Shows the bundled mazes plus any found in the maze directory, and the registered solvers.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	loader := maze.NewLoader(flagMazeDir)
	mazes, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mazes: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Available mazes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, m := range mazes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	fmt.Printf("  %-*s  %-16s %s\n", maxIDLen, "ID", "Name", "Size")
	fmt.Printf("  %-*s  %-16s %s\n", maxIDLen, "--", "----", "----")

	for _, m := range mazes {
		size := "?"
		if g, gridErr := m.Grid(); gridErr == nil {
			size = fmt.Sprintf("%dx%d", g.W, g.H)
		}
		fmt.Printf("  %-*s  %-16s %s\n", maxIDLen, m.ID, m.Name, size)
	}

	fmt.Println()
	fmt.Println("Solvers:")
	for _, s := range solver.List() {
		fmt.Printf("  %-8s %s\n", s.ID, s.Name)
	}

	fmt.Println()
	fmt.Println("Run 'pathlab solve <id>' or 'pathlab explore <id>'.")
}
