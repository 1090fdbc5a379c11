package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sdlbase/internal/logging"
	"github.com/vovakirdan/sdlbase/internal/loop"
	"github.com/vovakirdan/sdlbase/internal/replay"
)

var flagNoFrame bool

var simulateCmd = &cobra.Command{
	Use:   "simulate <script>",
	Short: "Replay scripted input on the headless backend",
	Long: `Run the loop on a virtual clock with input taken from a YAML script,
then print where the square ended up, how many frames were drawn and
every title the FPS sampler produced.

Script format:
  duration_ms: 2000        # Quit is sent at this time (default 1000)
  frame_skip: 1            # Optional, overrides --frame-skip
  present_cost_ms: 0       # Virtual time spent per presented frame
  events:
    - {at: 0, type: keydown, key: right}
    - {at: 500, type: keyup, key: right}

Event types: keydown, keyup, quit, mousedown, mouseup, mousemove.

Examples:
  sdlbase simulate ./walk.yaml
  sdlbase simulate ./walk.yaml --frame-skip 2 --no-frame`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().BoolVar(&flagNoFrame, "no-frame", false, "Do not print the final frame")
}

func runSimulate(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	script, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if script.FrameSkip != nil {
		cfg.Loop.FrameSkip = *script.FrameSkip
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sys := script.NewSystem(cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	game := loop.New(sys, loop.Options{
		Title:     cfg.Window.Title,
		FrameSkip: cfg.Loop.FrameSkip,
		Logger:    logger,
	})
	defer game.Stop()

	if err := game.Start(cfg.Window.Width, cfg.Window.Height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	hero := game.Hero()
	renderer := sys.Renderer()
	titles := sys.Window().Titles

	fmt.Printf("Simulated %d ms (frame skip %d)\n", sys.Ticks(), cfg.Loop.FrameSkip)
	fmt.Println()
	fmt.Printf("  %-8s  (%d, %d)\n", "Hero", hero.X, hero.Y)
	fmt.Printf("  %-8s  %d\n", "Events", sys.Polled)
	fmt.Printf("  %-8s  %d\n", "Frames", renderer.Presents)
	fmt.Printf("  %-8s  %d\n", "Samples", len(titles))
	for _, title := range titles {
		fmt.Printf("  %-8s  %s\n", "", title)
	}

	if !flagNoFrame {
		fmt.Println()
		fmt.Println(renderer.Canvas().String())
	}
}
