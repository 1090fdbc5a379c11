// Package config provides YAML/TOML configuration loading for sdlbase.
package config

import (
	"fmt"
	"strings"
)

// Config contains everything that can be tuned without recompiling.
// The simulation constants (update interval, hero speed and size) are not
// configurable.
type Config struct {
	Window   WindowConfig   `yaml:"window" toml:"window"`
	Loop     LoopConfig     `yaml:"loop" toml:"loop"`
	Backend  string         `yaml:"backend" toml:"backend"` // "sdl", "term" or "headless"
	Terminal TerminalConfig `yaml:"terminal" toml:"terminal"`
	Log      LogConfig      `yaml:"log" toml:"log"`
}

// WindowConfig defines the window geometry and title prefix.
type WindowConfig struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"` // Shown as "<title>: <fps> FPS"
}

// LoopConfig defines loop tuning knobs.
type LoopConfig struct {
	FrameSkip int `yaml:"frame_skip" toml:"frame_skip"` // Draws skipped per update; 0 draws every update
}

// TerminalConfig defines how the terminal backend maps pixels to cells.
type TerminalConfig struct {
	CellWidth  int `yaml:"cell_width" toml:"cell_width"`
	CellHeight int `yaml:"cell_height" toml:"cell_height"`
	ReleaseMs  int `yaml:"release_ms" toml:"release_ms"` // Held key without repeat for this long counts as released
}

// LogConfig defines logger level and output format.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // auto, text, logfmt, json
}

// Known option values.
var (
	Backends   = []string{"sdl", "term", "headless"}
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"auto", "text", "logfmt", "json"}
)

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Loop.FrameSkip < 0 {
		return fmt.Errorf("config: frame_skip must not be negative, got %d", c.Loop.FrameSkip)
	}
	if !oneOf(c.Backend, Backends) {
		return fmt.Errorf("config: unknown backend %q (want one of %s)", c.Backend, strings.Join(Backends, ", "))
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("config: terminal cell size must be positive, got %dx%d", c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	if c.Terminal.ReleaseMs <= 0 {
		return fmt.Errorf("config: terminal release_ms must be positive, got %d", c.Terminal.ReleaseMs)
	}
	if !oneOf(c.Log.Level, LogLevels) {
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	if !oneOf(c.Log.Format, LogFormats) {
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}

func oneOf(v string, set []string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
