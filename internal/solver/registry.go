// Package solver provides a global registry of named path solvers.
// Solvers register themselves in init() functions, allowing the CLI and
// TUI to discover and instantiate them without hardcoded dependencies.
package solver

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gridlab/pathlab/internal/core"
	"github.com/gridlab/pathlab/internal/grid"
	"github.com/gridlab/pathlab/internal/pathfind"
)

// Solver computes a path on a grid. Implementations share the pathfind
// contract: ErrInvalidEndpoint for bad endpoints, Result.Found=false for
// an unreachable goal.
type Solver interface {
	// ID returns a unique identifier (e.g., "astar"), used for CLI flags
	// and history storage.
	ID() string

	// Name returns a human-readable name for display.
	Name() string

	// Solve runs the search to completion.
	Solve(g *grid.Grid, start, goal core.Coord) (pathfind.Result, error)
}

// Info contains metadata about a registered solver.
type Info struct {
	ID   string
	Name string
}

// Factory is a function that creates a new solver instance.
type Factory func() Solver

var (
	factories = make(map[string]Factory)
	names     = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a solver factory to the registry.
// Typically called from an init() function.
// Panics if a solver with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("solver: %q already registered", id))
	}

	factories[id] = f
	names[id] = f().Name()
}

// List returns information about all registered solvers, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Name: names[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a solver by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Solver, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("solver: unknown solver %q", id)
	}

	return f(), nil
}

// Exists checks if a solver with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
