package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vector-snake/internal/config"
	"github.com/vovakirdan/vector-snake/internal/scene"
	"github.com/vovakirdan/vector-snake/internal/snake"
)

var (
	flagSVGTicks int
	flagSVGOut   string
	flagSVGSize  int
)

var svgCmd = &cobra.Command{
	Use:   "svg",
	Short: "Render a simulated run to an SVG frame",
	Long: `Run the game headless for a number of ticks without input and write
the final frame as an SVG file. With a fixed --seed the output is fully
reproducible.

Examples:
  snake svg
  snake svg --ticks 20 --seed 42 --out frame.svg
  snake svg --size 800`,
	Args: cobra.NoArgs,
	RunE: runSVG,
}

func init() {
	svgCmd.Flags().IntVar(&flagSVGTicks, "ticks", 20, "Number of ticks to simulate")
	svgCmd.Flags().StringVar(&flagSVGOut, "out", "snake.svg", "Output file path")
	svgCmd.Flags().IntVar(&flagSVGSize, "size", 500, "Viewport size in pixels")
}

func runSVG(_ *cobra.Command, _ []string) error {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := snake.New(flagSVGSize, flagSVGSize)
	spawner := snake.NewSpawner(seed)

	// Headless loop: the spawn draw that the TUI delivers asynchronously is
	// applied inline here, after each tick, same as the live ordering.
	for range flagSVGTicks {
		game.Apply(snake.Tick{At: time.Now()})
		if game.NeedsFruit() {
			game.Apply(spawner.Draw())
		}
	}

	palette := scene.Palette{
		Background: settings.Theme.Background,
		Segment:    settings.Theme.Snake,
		Fruit:      settings.Theme.Fruit,
	}

	f, err := os.Create(flagSVGOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flagSVGOut, err)
	}
	defer f.Close()

	if err := scene.WriteSVG(f, scene.Project(game.Snapshot()), palette); err != nil {
		return fmt.Errorf("writing %s: %w", flagSVGOut, err)
	}

	fmt.Printf("Wrote %s (%d ticks, seed %d)\n", flagSVGOut, flagSVGTicks, seed)
	return nil
}
