// Package config provides YAML-based settings for timing and theme colors.
package config

// Settings contains all user-tunable options.
type Settings struct {
	Timing TimingConfig `yaml:"timing"`
	Theme  ThemeConfig  `yaml:"theme"`
}

// TimingConfig controls the simulation clock.
type TimingConfig struct {
	TickMillis int `yaml:"tick_ms"` // interval between gameplay ticks
}

// ThemeConfig holds CSS-style color strings shared by the terminal renderer
// and the SVG encoder.
type ThemeConfig struct {
	Background string `yaml:"background"`
	Snake      string `yaml:"snake"`
	Head       string `yaml:"head"`
	Fruit      string `yaml:"fruit"`
	Chrome     string `yaml:"chrome"`
}
