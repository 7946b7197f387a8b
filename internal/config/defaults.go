package config

import (
	_ "embed"
)

//go:embed defaults/pathlab.yaml
var defaultSandboxYAML []byte

// DefaultSandboxConfig returns the built-in sandbox configuration.
func DefaultSandboxConfig() SandboxConfig {
	return SandboxConfig{
		Solver: SolverConfig{
			Default: "astar",
		},
		Animation: AnimationConfig{
			TicksPerExpansion: 2,
			AutoStart:         false,
		},
		Theme: ThemeConfig{
			Wall:    "#",
			Floor:   ".",
			Start:   "S",
			Goal:    "G",
			Path:    "*",
			Open:    "o",
			Closed:  "x",
			Current: "@",
			Cursor:  "+",
		},
	}
}
