package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sdlbase/internal/config"
	"github.com/vovakirdan/sdlbase/internal/logging"
	"github.com/vovakirdan/sdlbase/internal/loop"
	"github.com/vovakirdan/sdlbase/internal/registry"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the loop",
	Long: `Open the window and run the loop until it is closed.

Controls:
  Arrow keys - Move the square (left wins over right, right over up,
               up over down; no diagonals)
  Close      - Quit (Esc or Ctrl+C on the terminal backend)

The process exits with status 0 even when the window cannot be opened;
the failure is logged.

Examples:
  sdlbase run
  sdlbase run --backend term --log-file ./sdlbase.log
  sdlbase run --config ./configs/sdlbase.yaml`,
	Args: cobra.NoArgs,
	Run:  runLoop,
}

func runLoop(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	sys, err := registry.Create(cfg.Backend, cfg, logger)
	if err != nil {
		logger.Error("no such backend", "backend", cfg.Backend, "error", err)
		return
	}

	game := loop.New(sys, loop.Options{
		Title:     cfg.Window.Title,
		FrameSkip: cfg.Loop.FrameSkip,
		Logger:    logger,
	})
	defer game.Stop()

	if err := game.Start(cfg.Window.Width, cfg.Window.Height); err != nil {
		logger.Error("startup failed", "backend", cfg.Backend, "error", err)
	}
}

// loadConfig loads the config file and applies flags set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = flagBackend
	}
	if flags.Changed("frame-skip") {
		cfg.Loop.FrameSkip = flagFrameSkip
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger builds the logger. The terminal backend owns the screen, so
// unless a log file is given its logs are dropped.
func newLogger(cfg config.Config) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closeFn = func() { f.Close() }
	case cfg.Backend == "term":
		w = io.Discard
	}

	logger, err := logging.New(cfg.Log, w)
	if err != nil {
		closeFn()
		return nil, func() {}, err
	}
	return logger, closeFn, nil
}
