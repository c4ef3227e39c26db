// Package render draws boards as text for terminals and as SVG diagrams.
package render

import (
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Options controls how a board is drawn.
type Options struct {
	Unicode     bool             // Chess glyphs instead of letters
	Coordinates bool             // File letters and rank numbers
	Highlight   []chess.Position // Squares to mark, e.g. legal destinations
}

// Glyph returns the character drawn for p. An empty square is '.' in
// letter mode and a middle dot in glyph mode.
func Glyph(p chess.Piece, unicode bool) rune {
	if !unicode {
		if p.IsEmpty() {
			return '.'
		}
		return rune(p.Letter())
	}
	if p.IsEmpty() {
		return '·'
	}
	base := '♔' // white king
	if p.Colour == chess.Black {
		base = '♚'
	}
	switch p.Kind {
	case chess.Queen:
		return base + 1
	case chess.Rook:
		return base + 2
	case chess.Bishop:
		return base + 3
	case chess.Knight:
		return base + 4
	case chess.Pawn:
		return base + 5
	}
	return base
}

// highlightMark returns the character for a marked square: '*' when empty,
// 'x' when occupied.
func highlightMark(p chess.Piece) rune {
	if p.IsEmpty() {
		return '*'
	}
	return 'x'
}

// Text returns the board drawn rank 8 first, one line per rank.
func Text(board chess.Board, opts Options) string {
	var sb strings.Builder
	marked := make(map[chess.Position]bool, len(opts.Highlight))
	for _, p := range opts.Highlight {
		marked[p] = true
	}

	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		if opts.Coordinates {
			sb.WriteByte(byte('1' + rank))
			sb.WriteByte(' ')
		}
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			sq := chess.Pos(file, rank)
			piece := board.Get(sq)
			if marked[sq] {
				sb.WriteRune(highlightMark(piece))
			} else {
				sb.WriteRune(Glyph(piece, opts.Unicode))
			}
			if file < chess.LastFile {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	if opts.Coordinates {
		sb.WriteString("  a b c d e f g h\n")
	}
	return sb.String()
}

// WriteText writes Text(board, opts) to w.
func WriteText(w io.Writer, board chess.Board, opts Options) error {
	_, err := io.WriteString(w, Text(board, opts))
	return err
}
