// Package config provides YAML-based configuration loading for the
// pathfinding sandbox.
package config

// SandboxConfig contains all configuration for the interactive explorer.
type SandboxConfig struct {
	Solver    SolverConfig    `yaml:"solver"`
	Animation AnimationConfig `yaml:"animation"`
	Theme     ThemeConfig     `yaml:"theme"`
}

// SolverConfig selects the default search algorithm.
type SolverConfig struct {
	Default string `yaml:"default"` // solver ID, e.g. "astar" or "bfs"
}

// AnimationConfig paces the animated search playback.
type AnimationConfig struct {
	TicksPerExpansion int  `yaml:"ticks_per_expansion"` // engine ticks between expansions
	AutoStart         bool `yaml:"auto_start"`          // animate immediately on solve
}

// ThemeConfig defines the glyphs used to draw search state. Single
// characters; longer strings use their first rune.
type ThemeConfig struct {
	Wall    string `yaml:"wall"`
	Floor   string `yaml:"floor"`
	Start   string `yaml:"start"`
	Goal    string `yaml:"goal"`
	Path    string `yaml:"path"`
	Open    string `yaml:"open"`
	Closed  string `yaml:"closed"`
	Current string `yaml:"current"`
	Cursor  string `yaml:"cursor"`
}

// Rune returns the first rune of s, or fallback if s is empty.
func Rune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
