package core

// RuntimeConfig contains configuration passed to a game session at startup.
type RuntimeConfig struct {
	ViewportW int   // Viewport width (terminal characters or pixels)
	ViewportH int   // Viewport height
	TickRate  int   // Gameplay ticks per second (default 10, one tick per 100ms)
	Seed      int64 // RNG seed for the fruit spawner; 0 means use current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ViewportW: 80,
		ViewportH: 24,
		TickRate:  10,
		Seed:      0,
	}
}
