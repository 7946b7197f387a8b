package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	entries := []SolveEntry{
		{MazeID: "corridor", Solver: "astar", Outcome: OutcomeFound, PathLen: 20, Expanded: 45, DurationMS: 2},
		{MazeID: "corridor", Solver: "bfs", Outcome: OutcomeFound, PathLen: 20, Expanded: 70, DurationMS: 3},
		{MazeID: "sealed", Solver: "astar", Outcome: OutcomeNoPath, PathLen: 0, Expanded: 12, DurationMS: 1},
	}
	for _, e := range entries {
		if _, err := store.SaveSolve(e); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	recent, err := store.RecentSolves(10)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 solves, got %d", len(recent))
	}
	// Newest first
	if recent[0].MazeID != "sealed" {
		t.Errorf("Expected newest solve first, got maze %q", recent[0].MazeID)
	}

	corridor, err := store.SolvesForMaze("corridor")
	if err != nil {
		t.Fatalf("SolvesForMaze() failed: %v", err)
	}
	if len(corridor) != 2 {
		t.Errorf("Expected 2 corridor solves, got %d", len(corridor))
	}
}

func TestStoreRecentSolvesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveSolve(SolveEntry{
			MazeID: "open", Solver: "astar", Outcome: OutcomeFound,
			PathLen: 10 + i, Expanded: 20 + i,
		})
	}

	recent, err := store.RecentSolves(3)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Expected 3 solves with limit, got %d", len(recent))
	}
}

func TestStoreBestSolve(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve(SolveEntry{MazeID: "rooms", Solver: "astar", Outcome: OutcomeFound, PathLen: 18, Expanded: 60})
	store.SaveSolve(SolveEntry{MazeID: "rooms", Solver: "astar", Outcome: OutcomeFound, PathLen: 18, Expanded: 40})
	store.SaveSolve(SolveEntry{MazeID: "rooms", Solver: "astar", Outcome: OutcomeNoPath, PathLen: 0, Expanded: 5})

	best, err := store.BestSolve("rooms", "astar")
	if err != nil {
		t.Fatalf("BestSolve() failed: %v", err)
	}
	if best == nil {
		t.Fatal("Expected a best solve, got nil")
	}
	if best.Expanded != 40 {
		t.Errorf("Expected best solve with 40 expansions, got %d", best.Expanded)
	}

	// No solves for this combination
	none, err := store.BestSolve("rooms", "bfs")
	if err != nil {
		t.Fatalf("BestSolve() failed: %v", err)
	}
	if none != nil {
		t.Errorf("Expected nil for unseen solver, got %+v", none)
	}
}

func TestStoreStatsForMaze(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve(SolveEntry{MazeID: "spiral", Solver: "astar", Outcome: OutcomeFound, PathLen: 30, Expanded: 55})
	store.SaveSolve(SolveEntry{MazeID: "spiral", Solver: "bfs", Outcome: OutcomeFound, PathLen: 30, Expanded: 62})
	store.SaveSolve(SolveEntry{MazeID: "spiral", Solver: "astar", Outcome: OutcomeNoPath, PathLen: 0, Expanded: 8})

	stats, err := store.StatsForMaze("spiral")
	if err != nil {
		t.Fatalf("StatsForMaze() failed: %v", err)
	}
	if stats.Solves != 3 {
		t.Errorf("Expected 3 solves, got %d", stats.Solves)
	}
	if stats.Found != 2 {
		t.Errorf("Expected 2 found, got %d", stats.Found)
	}
	if stats.BestPathLen != 30 {
		t.Errorf("Expected best path 30, got %d", stats.BestPathLen)
	}
	if stats.MinExpanded != 55 {
		t.Errorf("Expected min expanded 55, got %d", stats.MinExpanded)
	}
}

func TestStoreStatsForEmptyMaze(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.StatsForMaze("unknown")
	if err != nil {
		t.Fatalf("StatsForMaze() failed: %v", err)
	}
	if stats.Solves != 0 || stats.Found != 0 || stats.BestPathLen != 0 {
		t.Errorf("Expected zero stats, got %+v", stats)
	}
}

func TestStoreClearHistory(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve(SolveEntry{MazeID: "open", Solver: "astar", Outcome: OutcomeFound, PathLen: 14, Expanded: 14})
	store.SaveSolve(SolveEntry{MazeID: "rooms", Solver: "astar", Outcome: OutcomeFound, PathLen: 18, Expanded: 40})

	if err := store.ClearHistory("open"); err != nil {
		t.Fatalf("ClearHistory(open) failed: %v", err)
	}
	recent, _ := store.RecentSolves(10)
	if len(recent) != 1 {
		t.Errorf("Expected 1 solve after per-maze clear, got %d", len(recent))
	}

	if err := store.ClearHistory(""); err != nil {
		t.Fatalf("ClearHistory() failed: %v", err)
	}
	recent, _ = store.RecentSolves(10)
	if len(recent) != 0 {
		t.Errorf("Expected no solves after full clear, got %d", len(recent))
	}
}

func TestStoreCreatesParentDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
