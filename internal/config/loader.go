package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads settings.
// Search order: customPath -> ~/.vector-snake/config.yaml -> ./configs/snake.yaml -> embedded default
func Load(customPath string) (Settings, error) {
	var cfg Settings

	// Try custom path first
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

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/snake.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultSettings(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vector-snake", filename)
}

// normalize fills gaps in a partially specified config with defaults.
func normalize(cfg Settings) Settings {
	def := DefaultSettings()
	if cfg.Timing.TickMillis <= 0 {
		cfg.Timing.TickMillis = def.Timing.TickMillis
	}
	if cfg.Theme.Background == "" {
		cfg.Theme.Background = def.Theme.Background
	}
	if cfg.Theme.Snake == "" {
		cfg.Theme.Snake = def.Theme.Snake
	}
	if cfg.Theme.Head == "" {
		cfg.Theme.Head = def.Theme.Head
	}
	if cfg.Theme.Fruit == "" {
		cfg.Theme.Fruit = def.Theme.Fruit
	}
	if cfg.Theme.Chrome == "" {
		cfg.Theme.Chrome = def.Theme.Chrome
	}
	return cfg
}
