// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var (
	// Game options
	startFEN        = flag.String("fen", engine.InitialFEN, "Starting position in FEN")
	moveList        = flag.String("moves", "", "Moves to play first, space or comma separated (e.g. 'e2e4 e7e5')")
	continueOnError = flag.Bool("continue", false, "Report rejected scripted moves and keep going")

	// Display options
	uiMode     = flag.String("ui", "text", "Front end: text, tui or none")
	unicode    = flag.Bool("unicode", false, "Draw pieces as chess glyphs")
	noCoords   = flag.Bool("nocoords", false, "Don't draw file and rank labels")
	svgFile    = flag.String("svg", "", "Write an SVG diagram of the final position to this file")
	svgSize    = flag.Int("svgsize", 60, "SVG square size in pixels")
	jsonOutput = flag.Bool("J", false, "Write the game record in JSON format")
	hyphenated = flag.Bool("hyphen", false, "Write moves as e2-e4 and e4xd5")
	lineLength = flag.Int("w", 80, "Maximum line length of the move list")

	// Perft options
	perftDepth   = flag.Int("perft", 0, "Count move-generation nodes to this depth and exit")
	perftWorkers = flag.Int("workers", runtime.NumCPU(), "Goroutines dividing the perft root moves")
	divide       = flag.Bool("divide", false, "Print the perft node count below each root move")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write log records to this file")
	appendLog  = flag.String("L", "", "Append log records to this file")
	logLevel   = flag.String("loglevel", "warn", "Minimum log level: debug, info, warn or error")
	verbosity  = flag.Int("verbosity", 1, "0=game record only, 1=board and status, 2=position after every scripted move")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) error {
	cfg.Verbosity = *verbosity

	applyGameFlags(cfg)
	if err := applyDisplayFlags(cfg); err != nil {
		return err
	}
	applyPerftFlags(cfg)

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		return err
	}
	cfg.LogLevel = level
	return nil
}

// applyGameFlags sets the starting position and scripted moves.
func applyGameFlags(cfg *config.Config) {
	cfg.Game.StartFEN = *startFEN
	cfg.Game.Moves = splitMoves(*moveList)
	cfg.Game.StopOnError = !*continueOnError
}

// applyDisplayFlags sets the front end and output format.
func applyDisplayFlags(cfg *config.Config) error {
	mode, err := config.ParseUIMode(*uiMode)
	if err != nil {
		return err
	}
	cfg.Display.Mode = mode
	cfg.Display.Unicode = *unicode
	cfg.Display.Coordinates = !*noCoords
	cfg.Display.SVGPath = *svgFile
	cfg.Display.SVGSquareSize = *svgSize
	cfg.Display.JSONFormat = *jsonOutput
	cfg.Display.Hyphenated = *hyphenated
	cfg.Display.MaxLineLength = *lineLength
	return nil
}

// applyPerftFlags sets the perft depth and worker count.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Workers = *perftWorkers
	cfg.Perft.Divide = *divide
}

// splitMoves splits a -moves value on spaces and commas.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
}

// parseLogLevel parses a -loglevel value such as "debug" or "WARN".
func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn, fmt.Errorf("log level %q: %w", s, errors.ErrInvalidConfig)
	}
	return level, nil
}
