package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// DefaultSettings returns the built-in settings, matching the embedded YAML.
func DefaultSettings() Settings {
	return Settings{
		Timing: TimingConfig{
			TickMillis: 100,
		},
		Theme: ThemeConfig{
			Background: "#101418",
			Snake:      "#3fb950",
			Head:       "#aff5b4",
			Fruit:      "#f85149",
			Chrome:     "#8b949e",
		},
	}
}
