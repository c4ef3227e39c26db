package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/render"
	"github.com/lgbarn/chess-rules-go/internal/tui"
)

// run sets up the game, plays the scripted moves and hands over to the
// selected front end. The game record is written when the front end
// returns. A perft run replaces the front end and writes no record.
func run(ctx context.Context, cfg *config.Config, in io.Reader) error {
	logger := cfg.Logger()

	g, err := startGame(cfg, logger)
	if err != nil {
		return err
	}

	if cfg.Perft.Depth > 0 {
		return runPerft(ctx, g.Current(), cfg, logger)
	}

	switch cfg.Display.Mode {
	case config.UIText:
		err = runREPL(ctx, g, cfg, in)
	case config.UITerminal:
		err = runTUI(ctx, g, cfg, logger)
	}
	if err != nil {
		return err
	}

	if cfg.Display.SVGPath != "" {
		if err := writeSVG(cfg.Display.SVGPath, g.Current().Board, cfg); err != nil {
			return err
		}
	}
	return writeRecord(g, cfg)
}

// startGame sets up the start position and plays cfg.Game.Moves. With
// StopOnError the moves are replayed in one go and the first bad move ends
// the run; otherwise rejected moves are logged and skipped.
func startGame(cfg *config.Config, logger *slog.Logger) (*game.Game, error) {
	state, err := engine.ParseFEN(cfg.Game.StartFEN)
	if err != nil {
		return nil, err
	}
	if !cfg.Game.StopOnError {
		g := game.New(game.WithState(state), game.WithLogger(logger))
		playScripted(g, cfg, logger)
		return g, nil
	}

	moves := make([]chess.Move, 0, len(cfg.Game.Moves))
	for i, text := range cfg.Game.Moves {
		c, err := game.ParseCoordinates(text)
		if err != nil {
			return nil, chesserrors.Wrapf(err, "move %d (%s)", i+1, text)
		}
		moves = append(moves, chess.Move{From: c.From, To: c.To, Promotion: c.Promotion})
	}
	g, err := game.Replay(state, moves, game.WithLogger(logger))
	if err != nil {
		n := g.Ply()
		return nil, chesserrors.Wrapf(err, "move %d (%s)", n+1, cfg.Game.Moves[n])
	}
	if cfg.Verbosity >= 2 {
		for i, m := range g.History() {
			fmt.Fprintf(cfg.OutputFile, "%d. %s %s\n", i+1, m, engine.FEN(m.After))
		}
	}
	return g, nil
}

// playScripted plays cfg.Game.Moves in order, skipping rejected moves.
func playScripted(g *game.Game, cfg *config.Config, logger *slog.Logger) {
	for i, text := range cfg.Game.Moves {
		if err := g.Play(text); err != nil {
			logger.Warn("scripted move rejected", "index", i+1, "move", text, "error", err)
			continue
		}
		if cfg.Verbosity >= 2 {
			fmt.Fprintf(cfg.OutputFile, "%d. %s %s\n", g.Ply(), text, g.FEN())
		}
	}
}

// runPerft counts the move tree below state, divided over the configured
// number of workers.
func runPerft(ctx context.Context, state chess.GameState, cfg *config.Config, logger *slog.Logger) error {
	w := cfg.OutputFile
	depth := cfg.Perft.Depth
	start := time.Now()

	results, err := engine.Divide(ctx, state, depth, cfg.Perft.Workers)
	if err != nil {
		return chesserrors.Wrapf(err, "perft(%d)", depth)
	}
	total := engine.TotalNodes(results)

	if cfg.Perft.Divide {
		for _, r := range results {
			fmt.Fprintf(w, "%s: %d\n", r.Move, r.Nodes)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "perft(%d) = %d\n", depth, total)
	if status := engine.Status(state); status.Over() {
		fmt.Fprintf(w, "root position: %s\n", status)
	}

	logger.Info("perft finished",
		"depth", depth,
		"nodes", total,
		"workers", cfg.Perft.Workers,
		"elapsed", time.Since(start))
	return nil
}

// runTUI plays on the full-screen board until the user quits.
func runTUI(ctx context.Context, g *game.Game, cfg *config.Config, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ui := tui.New(screen, tui.NewModel(g),
		tui.WithUnicode(cfg.Display.Unicode),
		tui.WithLogger(logger))
	if err := ui.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// writeSVG writes a diagram of board to path.
func writeSVG(path string, board chess.Board, cfg *config.Config) error {
	file, err := os.Create(path)
	if err != nil {
		return chesserrors.Wrapf(err, "creating SVG file %s", path)
	}
	render.SVG(file, board, cfg.Display.SVGSquareSize, render.Options{
		Unicode:     true,
		Coordinates: cfg.Display.Coordinates,
	})
	return file.Close()
}

// writeRecord writes the game record in the configured format.
func writeRecord(g *game.Game, cfg *config.Config) error {
	w := output.NewGameWriter(cfg.OutputFile, cfg)
	if err := w.WriteGame(g); err != nil {
		return err
	}
	return w.Close()
}
