package config

import (
	_ "embed"
)

//go:embed defaults/sdlbase.yaml
var defaultYAML []byte

// DefaultTitle is the window title prefix.
const DefaultTitle = "SDL2 Boilerplate - Use Arrow Keys to Move"

// Default returns the built-in configuration: a 480x320 SDL window drawing
// on every update.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  480,
			Height: 320,
			Title:  DefaultTitle,
		},
		Loop: LoopConfig{
			FrameSkip: 0,
		},
		Backend: "sdl",
		Terminal: TerminalConfig{
			CellWidth:  8,
			CellHeight: 16,
			ReleaseMs:  500,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
