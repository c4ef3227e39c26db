package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/render"
)

const replHelp = `Commands:
  e2e4, e2 e4, e7e8n   play a move (promotion defaults to queen)
  moves [square]       list legal moves, optionally from one square
  board                show the board
  fen                  show the position in FEN
  undo                 take back the last move
  status               show the game status
  help                 show this help
  quit                 leave
`

// repl is the line-oriented front end.
type repl struct {
	game *game.Game
	cfg  *config.Config
	out  io.Writer
}

// runREPL reads commands from in until quit, end of input or cancellation.
func runREPL(ctx context.Context, g *game.Game, cfg *config.Config, in io.Reader) error {
	r := &repl{game: g, cfg: cfg, out: cfg.OutputFile}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
		close(lines)
	}()

	r.showBoard(nil)
	for {
		fmt.Fprintf(r.out, "%s> ", g.Turn())
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(r.out)
				return <-errc
			}
			if r.execute(line) {
				return nil
			}
		}
	}
}

// execute runs one command line and reports whether it quits.
func (r *repl) execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprint(r.out, replHelp)
	case "board":
		r.showBoard(nil)
	case "fen":
		fmt.Fprintln(r.out, r.game.FEN())
	case "status":
		if s := statusLine(r.game); s != "" {
			fmt.Fprintln(r.out, s)
		} else {
			fmt.Fprintf(r.out, "%s to move\n", r.game.Turn())
		}
	case "undo":
		if err := r.game.Undo(); err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			return false
		}
		r.afterMove()
	case "moves":
		r.listMoves(fields[1:])
	default:
		if err := r.game.Play(line); err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			return false
		}
		r.afterMove()
	}
	return false
}

// listMoves prints the legal moves of the side to move, or of the piece on
// the given square with its destinations marked on the board.
func (r *repl) listMoves(args []string) {
	if len(args) == 0 {
		moves := r.game.LegalMoves().Strings()
		sort.Strings(moves)
		fmt.Fprintf(r.out, "%d moves: %s\n", len(moves), strings.Join(moves, " "))
		return
	}

	p, err := chess.ParsePosition(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	moves := r.game.LegalMovesFrom(p)
	if len(moves) == 0 {
		fmt.Fprintf(r.out, "no legal moves from %s\n", p)
		return
	}
	texts := moves.Strings()
	sort.Strings(texts)
	fmt.Fprintln(r.out, strings.Join(texts, " "))
	r.showBoard(moves.Destinations())
}

func (r *repl) afterMove() {
	if r.cfg.Verbosity >= 1 {
		r.showBoard(nil)
	}
	if s := statusLine(r.game); s != "" {
		fmt.Fprintln(r.out, s)
	}
}

func (r *repl) showBoard(highlight []chess.Position) {
	fmt.Fprint(r.out, render.Text(r.game.Current().Board, render.Options{
		Unicode:     r.cfg.Display.Unicode,
		Coordinates: r.cfg.Display.Coordinates,
		Highlight:   highlight,
	}))
}

// statusLine describes a finished game, a check or a draw condition, and
// is empty otherwise.
func statusLine(g *game.Game) string {
	switch {
	case g.Status().Over():
		return g.Status().String()
	case g.InCheck():
		return "Check"
	case g.InsufficientMaterial():
		return "Draw by insufficient material"
	case g.Repetitions() >= 3:
		return "Threefold repetition (claimable)"
	case g.Current().HalfmoveClock >= 100:
		return "Fifty-move rule (claimable)"
	}
	return ""
}
