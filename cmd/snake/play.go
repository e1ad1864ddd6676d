package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vector-snake/internal/config"
	"github.com/vovakirdan/vector-snake/internal/core"
	"github.com/vovakirdan/vector-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Steer
  Space/P      - Pause
  Q/Ctrl+C     - Quit

The grid is 50×50 cells, so the terminal needs to be at least 52 columns by
54 rows to show the whole playfield.

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-theme.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Probe terminal size for the initial viewport
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ViewportW: width,
		ViewportH: height,
		TickRate:  flagFPS,
		Seed:      flagSeed,
	}

	if err := tui.Run(cfg, settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
