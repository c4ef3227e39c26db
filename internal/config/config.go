// Package config provides configuration for the chessplay command.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// UIMode selects how the game is presented.
type UIMode int

const (
	UIText     UIMode = iota // Line-oriented REPL on stdin/stdout
	UITerminal               // Full-screen terminal board with mouse input
	UINone                   // No interaction: scripted moves or perft only
)

// String returns the flag spelling of the mode.
func (m UIMode) String() string {
	switch m {
	case UITerminal:
		return "tui"
	case UINone:
		return "none"
	}
	return "text"
}

// ParseUIMode parses a -ui flag value.
func ParseUIMode(s string) (UIMode, error) {
	switch s {
	case "text", "":
		return UIText, nil
	case "tui":
		return UITerminal, nil
	case "none":
		return UINone, nil
	}
	return UIText, fmt.Errorf("unknown UI mode %q (want text, tui or none): %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=final status, 2=every move

	Game    *GameConfig
	Display *DisplayConfig
	Perft   *PerftConfig

	// Logging
	LogLevel slog.Level

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Game:       NewGameConfig(),
		Display:    NewDisplayConfig(),
		Perft:      NewPerftConfig(),
		LogLevel:   slog.LevelWarn,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer boards and results are printed to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the writer log records go to.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Validate checks every section of the configuration. Errors wrap
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if err := c.Display.Validate(); err != nil {
		return err
	}
	if c.Display.Mode == UITerminal && c.Perft.Depth > 0 {
		return fmt.Errorf("perft cannot run with the terminal UI: %w", errors.ErrInvalidConfig)
	}
	return c.Perft.Validate()
}

// Logger returns a text logger writing to LogFile at LogLevel.
func (c *Config) Logger() *slog.Logger {
	handler := slog.NewTextHandler(c.LogFile, &slog.HandlerOptions{Level: c.LogLevel})
	return slog.New(handler)
}
