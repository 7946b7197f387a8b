package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSandbox loads the sandbox configuration.
// Search order: customPath -> ~/.pathlab/config.yaml -> ./configs/pathlab.yaml -> embedded default
func LoadSandbox(customPath string) (SandboxConfig, error) {
	var cfg SandboxConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile("configs/pathlab.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	if err := yaml.Unmarshal(defaultSandboxYAML, &cfg); err != nil {
		return DefaultSandboxConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pathlab", filename)
}

// normalize fills unset fields from the built-in defaults so a partial
// config file still yields a fully usable configuration.
func normalize(cfg SandboxConfig) SandboxConfig {
	def := DefaultSandboxConfig()

	if cfg.Solver.Default == "" {
		cfg.Solver.Default = def.Solver.Default
	}
	if cfg.Animation.TicksPerExpansion <= 0 {
		cfg.Animation.TicksPerExpansion = def.Animation.TicksPerExpansion
	}

	fill := func(field *string, fallback string) {
		if *field == "" {
			*field = fallback
		}
	}
	fill(&cfg.Theme.Wall, def.Theme.Wall)
	fill(&cfg.Theme.Floor, def.Theme.Floor)
	fill(&cfg.Theme.Start, def.Theme.Start)
	fill(&cfg.Theme.Goal, def.Theme.Goal)
	fill(&cfg.Theme.Path, def.Theme.Path)
	fill(&cfg.Theme.Open, def.Theme.Open)
	fill(&cfg.Theme.Closed, def.Theme.Closed)
	fill(&cfg.Theme.Current, def.Theme.Current)
	fill(&cfg.Theme.Cursor, def.Theme.Cursor)

	return cfg
}
