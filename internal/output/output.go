// Package output writes finished or interrupted games as text records or
// JSON.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/render"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator or a line break if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes g as text to cfg.OutputFile: the start position when it
// is not the initial one, the numbered move list and result, and at
// verbosity 1 or more the final board, status and a move summary.
func OutputGame(g *game.Game, cfg *config.Config) {
	w := cfg.OutputFile

	if g.Start() != chess.NewGameState() {
		fmt.Fprintf(w, "[FEN %q]\n", engine.FEN(g.Start()))
	}
	outputMoves(g, cfg, w)

	if cfg.Verbosity < 1 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, render.Text(g.Current().Board, render.Options{
		Unicode:     cfg.Display.Unicode,
		Coordinates: cfg.Display.Coordinates,
	}))
	fmt.Fprintf(w, "Status: %s\n", g.Status())
	fmt.Fprintf(w, "FEN: %s\n", g.FEN())

	a := g.Analyze()
	fmt.Fprintf(w, "Plies: %d Captures: %d Checks: %d Castles: %d Promotions: %d Positions: %d\n",
		a.Plies, a.Captures, a.Checks, a.Castles, a.Promotions, a.UniquePositions)
}

// outputMoves writes the numbered move list followed by the result.
func outputMoves(g *game.Game, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, cfg.Display.MaxLineLength)

	for i, m := range g.History() {
		colour := m.Before.ActiveColour
		number := m.Before.FullmoveNumber
		switch {
		case colour == chess.White:
			ow.Write(strconv.Itoa(number) + ".")
		case i == 0:
			ow.Write(strconv.Itoa(number) + "...")
		}
		ow.Write(FormatMove(m, cfg.Display.Hyphenated))
	}
	ow.Write(GameResult(g.Status()))
	ow.NewLine()
}

// FormatMove returns long algebraic notation: "e2e4" and "e7e8q", or with
// hyphenated set "e2-e4", "e4xd5" and "e7-e8=Q".
func FormatMove(m chess.Move, hyphenated bool) string {
	if !hyphenated {
		return m.String()
	}
	var sb strings.Builder
	sb.WriteString(m.From.String())
	if m.IsCapture() {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(m.To.String())
	if m.Promotion != chess.NoKind {
		sb.WriteByte('=')
		sb.WriteByte(m.Promotion.Letter())
	}
	return sb.String()
}

// GameResult returns the result token for a status: "1-0", "0-1",
// "1/2-1/2" or "*" for a game still in progress.
func GameResult(s chess.Status) string {
	switch s.Kind {
	case chess.Checkmate:
		if s.Winner == chess.White {
			return "1-0"
		}
		return "0-1"
	case chess.Stalemate:
		return "1/2-1/2"
	}
	return "*"
}
