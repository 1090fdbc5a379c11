// Package logging builds the structured logger shared by the loop, the
// backends and the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/sdlbase/internal/config"
)

// Prefix is prepended to every log line.
const Prefix = "sdlbase"

// New creates a logger writing to w according to cfg.
// An unknown level is an error; the "auto" format selects colored text when
// w is a terminal and logfmt otherwise.
func New(cfg config.LogConfig, w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	formatter, err := formatterFor(cfg.Format, w)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Formatter:       formatter,
	})
	if formatter == log.TextFormatter {
		logger.SetStyles(styles())
	}
	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

func formatterFor(format string, w io.Writer) (log.Formatter, error) {
	switch strings.ToLower(format) {
	case "", "auto":
		if isTerminal(w) {
			return log.TextFormatter, nil
		}
		return log.LogfmtFormatter, nil
	case "text":
		return log.TextFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("logging: unknown format %q", format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// styles returns the default text styles with bold, fixed-width level badges.
func styles() *log.Styles {
	s := log.DefaultStyles()
	badge := func(label, color string) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(label).
			Bold(true).
			MaxWidth(4).
			Foreground(lipgloss.Color(color))
	}
	s.Levels[log.DebugLevel] = badge("DEBU", "63")
	s.Levels[log.InfoLevel] = badge("INFO", "86")
	s.Levels[log.WarnLevel] = badge("WARN", "192")
	s.Levels[log.ErrorLevel] = badge("ERRO", "204")
	return s
}
