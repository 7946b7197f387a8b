package maze

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gridlab/pathlab/internal/core"
)

// yamlMaze is the on-disk YAML structure for a maze file.
//
//	id: my-maze
//	name: My Maze
//	layout:
//	  - "S....#"
//	  - ".####."
//	  - "....G."
//
// Start and goal come from the 'S'/'G' markers; an optional explicit
// start/goal pair overrides the markers (the layout may then omit them).
type yamlMaze struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Layout []string   `yaml:"layout"`
	Start  *yamlCoord `yaml:"start,omitempty"`
	Goal   *yamlCoord `yaml:"goal,omitempty"`
}

// yamlCoord is an explicit coordinate in a maze file.
type yamlCoord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ParseYAML parses a maze definition from YAML bytes.
func ParseYAML(data []byte) (Maze, error) {
	var ym yamlMaze
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Maze{}, fmt.Errorf("maze: parsing yaml: %w", err)
	}
	if ym.ID == "" {
		return Maze{}, fmt.Errorf("maze: yaml definition missing id")
	}
	name := ym.Name
	if name == "" {
		name = ym.ID
	}

	if ym.Start != nil && ym.Goal != nil {
		m := Maze{
			ID:     ym.ID,
			Name:   name,
			Layout: ym.Layout,
			Start:  core.C(ym.Start.X, ym.Start.Y),
			Goal:   core.C(ym.Goal.X, ym.Goal.Y),
		}
		if err := m.Validate(); err != nil {
			return Maze{}, err
		}
		return m, nil
	}

	return FromLayout(ym.ID, name, ym.Layout)
}
