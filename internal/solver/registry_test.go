package solver

import (
	"testing"

	"github.com/gridlab/pathlab/internal/core"
	"github.com/gridlab/pathlab/internal/grid"
)

func TestBuiltinSolversRegistered(t *testing.T) {
	for _, id := range []string{"astar", "bfs"} {
		if !Exists(id) {
			t.Errorf("solver %q should be registered", id)
		}
	}
	if Exists("dijkstra") {
		t.Error("unexpected solver registered")
	}
}

func TestListSortedByID(t *testing.T) {
	infos := List()
	if len(infos) < 2 {
		t.Fatalf("expected at least 2 solvers, got %d", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("List() not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope"); err == nil {
		t.Error("Create of unknown solver should fail")
	}
}

func TestSolversAgreeOnLength(t *testing.T) {
	g, err := grid.ParseLayout([]string{
		".....",
		".###.",
		".....",
	})
	if err != nil {
		t.Fatalf("ParseLayout failed: %v", err)
	}
	start, goal := core.C(0, 0), core.C(4, 0)

	var lengths []int
	for _, info := range List() {
		s, err := Create(info.ID)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", info.ID, err)
		}
		res, err := s.Solve(g, start, goal)
		if err != nil {
			t.Fatalf("%s.Solve failed: %v", info.ID, err)
		}
		if !res.Found {
			t.Fatalf("%s found no path", info.ID)
		}
		lengths = append(lengths, len(res.Path))
	}

	for i := 1; i < len(lengths); i++ {
		if lengths[i] != lengths[0] {
			t.Errorf("solvers disagree on path length: %v", lengths)
		}
	}
}
