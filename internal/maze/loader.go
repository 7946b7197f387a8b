package maze

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader resolves mazes from the bundled set plus an optional directory
// of YAML files. Directory mazes shadow bundled ones with the same ID.
type Loader struct {
	Root string // maze directory; empty means bundled-only
}

// NewLoader creates a loader for the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll returns all available mazes sorted by ID, bundled set included.
// Unreadable or invalid files are skipped.
func (l *Loader) LoadAll() ([]Maze, error) {
	byID := make(map[string]Maze)
	for _, m := range Builtin() {
		byID[m.ID] = m
	}

	if l.Root != "" {
		loaded, err := l.loadDir()
		if err != nil {
			return nil, err
		}
		for _, m := range loaded {
			byID[m.ID] = m
		}
	}

	mazes := make([]Maze, 0, len(byID))
	for _, m := range byID {
		mazes = append(mazes, m)
	}
	sort.Slice(mazes, func(i, j int) bool {
		return mazes[i].ID < mazes[j].ID
	})
	return mazes, nil
}

// loadDir recursively scans the maze directory for YAML files.
func (l *Loader) loadDir() ([]Maze, error) {
	var mazes []Maze

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		m, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files; the rest of the directory still loads.
			return nil
		}
		mazes = append(mazes, m)
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("maze: walking directory %s: %w", l.Root, err)
	}

	return mazes, nil
}

// LoadFile loads a single maze file.
func (l *Loader) LoadFile(path string) (Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Maze{}, fmt.Errorf("maze: reading file %s: %w", path, err)
	}

	m, err := ParseYAML(data)
	if err != nil {
		return Maze{}, fmt.Errorf("maze: parsing file %s: %w", path, err)
	}
	m.FilePath = path
	return m, nil
}

// LoadByID resolves a maze by ID from the directory or bundled set.
func (l *Loader) LoadByID(id string) (Maze, error) {
	mazes, err := l.LoadAll()
	if err != nil {
		return Maze{}, err
	}
	for _, m := range mazes {
		if m.ID == id {
			return m, nil
		}
	}
	return Maze{}, fmt.Errorf("%w: %q", ErrNotFound, id)
}

// ListIDs returns all maze IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	mazes, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(mazes))
	for i, m := range mazes {
		ids[i] = m.ID
	}
	return ids, nil
}
