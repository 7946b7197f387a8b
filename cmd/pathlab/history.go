package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridlab/pathlab/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [maze]",
	Short: "Show recorded solves",
	Long: `Display recorded solves, newest first. With a maze ID, shows only
that maze's solves plus summary statistics.

Examples:
  pathlab history
  pathlab history corridor
  pathlab history --limit 50
  pathlab history corridor --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum number of solves to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the shown history instead of listing it")
}

func runHistory(cmd *cobra.Command, args []string) {
	mazeID := ""
	if len(args) > 0 {
		mazeID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearHistory(mazeID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if mazeID == "" {
			fmt.Println("History cleared.")
		} else {
			fmt.Printf("History cleared for maze %q.\n", mazeID)
		}
		return
	}

	var solves []storage.SolveEntry
	if mazeID == "" {
		solves, err = store.RecentSolves(flagHistoryLimit)
	} else {
		solves, err = store.SolvesForMaze(mazeID)
		if err == nil && len(solves) > flagHistoryLimit {
			solves = solves[:flagHistoryLimit]
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		os.Exit(1)
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pathlab solve <maze>' to record the first one.")
		return
	}

	fmt.Printf("  %-12s  %-8s  %-8s  %-6s  %-9s  %s\n", "Maze", "Solver", "Result", "Path", "Expanded", "Date")
	fmt.Printf("  %-12s  %-8s  %-8s  %-6s  %-9s  %s\n", "----", "------", "------", "----", "--------", "----")

	for _, s := range solves {
		result := "found"
		pathLen := fmt.Sprintf("%d", s.PathLen)
		if s.Outcome != storage.OutcomeFound {
			result = "no path"
			pathLen = "-"
		}
		fmt.Printf("  %-12s  %-8s  %-8s  %-6s  %-9d  %s\n",
			s.MazeID, s.Solver, result, pathLen, s.Expanded,
			s.CreatedAt.Format("2006-01-02 15:04"))
	}

	if mazeID != "" {
		stats, statsErr := store.StatsForMaze(mazeID)
		if statsErr == nil && stats.Found > 0 {
			fmt.Println()
			fmt.Printf("Best path: %d cells, fewest expansions: %d (%d/%d found)\n",
				stats.BestPathLen, stats.MinExpanded, stats.Found, stats.Solves)
		}
	}
}
