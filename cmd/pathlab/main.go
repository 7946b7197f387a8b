// pathlab is a terminal sandbox for exploring grid pathfinding.
//
// Usage:
//
//	pathlab list              - List available mazes
//	pathlab solve <maze>      - Solve a maze and print the result
//	pathlab explore <maze>    - Open the interactive explorer
//	pathlab menu              - Start the maze picker menu
//	pathlab history [maze]    - Show recorded solves
//	pathlab serve             - Start SSH server for remote exploring
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--db <path>      - Set database path (default: ~/.pathlab/history.db)
//	--mazes <dir>    - Directory of maze YAML files
//	--config <path>  - Sandbox config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagMazeDir string
	flagConfig  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pathlab",
	Short: "Pathlab - Explore grid pathfinding in your terminal",
	Long: `Pathlab is a terminal sandbox for grid pathfinding: edit mazes with a
cursor, watch the search expand cell by cell, and compare solvers.

Available commands:
  list     - Show all available mazes
  solve    - Solve a maze headlessly and print the path
  explore  - Open the interactive explorer on a maze
  menu     - Interactive maze picker menu
  history  - View recorded solves
  serve    - Start SSH server for remote exploring

Examples:
  pathlab list
  pathlab solve corridor
  pathlab solve corridor --solver bfs
  pathlab explore spiral
  pathlab menu
  pathlab serve --ssh :2222
  pathlab history corridor`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pathlab/history.db", "Path to solve history database")
	rootCmd.PersistentFlags().StringVar(&flagMazeDir, "mazes", "", "Directory of maze YAML files")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to sandbox config YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
