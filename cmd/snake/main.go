// snake is a terminal snake game on a fixed 50×50 grid.
//
// Usage:
//
//	snake play             - Play in the current terminal
//	snake serve            - Host the game over SSH
//	snake svg              - Simulate a run headless and write an SVG frame
//
// Global flags:
//
//	--fps <rate>     - Tick rate (default: from config, 100ms per tick)
//	--seed <value>   - RNG seed for reproducible fruit spawns
//	--config <path>  - Path to settings YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Vector Snake - classic snake on a 50×50 grid",
	Long: `Vector Snake is a grid snake game driven by a fixed 100ms clock.
Steer with the arrow keys, pause with space, and don't hit the walls.

Available commands:
  play     - Play in the current terminal
  serve    - Start an SSH server for remote play
  svg      - Render a headless simulated run to an SVG file

Examples:
  snake play
  snake play --seed 42
  snake serve --ssh :2222
  snake svg --ticks 20 --out frame.svg`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in ticks per second (0 = use config tick_ms)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(svgCmd)
}
