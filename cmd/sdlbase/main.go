// sdlbase opens a window with a red square that moves with the arrow keys.
// The window title reports the frame rate once per second.
//
// Usage:
//
//	sdlbase                     - Run the loop (same as "sdlbase run")
//	sdlbase run                 - Run the loop
//	sdlbase backends            - List available platform backends
//	sdlbase keys                - Show key bindings
//	sdlbase simulate <script>   - Replay scripted input on the headless backend
//
// Global flags:
//
//	--config <path>      - Config file (.yaml or .toml)
//	--backend <id>       - Platform backend: sdl, term, headless
//	--frame-skip <n>     - Draws skipped per drawn frame
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/sdlbase/internal/platform/headless"
	_ "github.com/vovakirdan/sdlbase/internal/platform/sdl"
	_ "github.com/vovakirdan/sdlbase/internal/platform/term"
)

var (
	// Global flags
	flagConfig    string
	flagBackend   string
	flagFrameSkip int
	flagLogLevel  string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sdlbase",
	Short: "Minimal fixed-step game loop with a movable square",
	Long: `sdlbase opens a 480x320 window and moves a red square with the arrow keys.
Updates run every 16 ms; the window title shows the frames drawn per second.

Available commands:
  run       - Run the loop (default)
  backends  - List platform backends
  keys      - Show key bindings
  simulate  - Replay scripted input without a display

Examples:
  sdlbase
  sdlbase run --backend term
  sdlbase run --frame-skip 1
  sdlbase simulate ./walk.yaml`,
	Run: runLoop,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Platform backend (sdl, term, headless)")
	rootCmd.PersistentFlags().IntVar(&flagFrameSkip, "frame-skip", 0, "Draws skipped per drawn frame (0 = draw every update)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(simulateCmd)
}
