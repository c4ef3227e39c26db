package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Square colours of the SVG diagram.
const (
	lightSquare     = "#f0d9b5"
	darkSquare      = "#b58863"
	highlightSquare = "#cdd26a"
)

// DefaultSquareSize is the side of one SVG square in pixels.
const DefaultSquareSize = 60

// SVG writes an SVG diagram of board, White at the bottom. squareSize
// values below 1 use DefaultSquareSize. Pieces are drawn as glyphs.
func SVG(w io.Writer, board chess.Board, squareSize int, opts Options) {
	if squareSize < 1 {
		squareSize = DefaultSquareSize
	}
	margin := 0
	if opts.Coordinates {
		margin = squareSize / 2
	}
	side := 8*squareSize + margin

	marked := make(map[chess.Position]bool, len(opts.Highlight))
	for _, p := range opts.Highlight {
		marked[p] = true
	}

	canvas := svg.New(w)
	canvas.Start(side, side)
	canvas.Title("chess position")

	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			sq := chess.Pos(file, rank)
			x := margin + file*squareSize
			y := (chess.LastRank - rank) * squareSize

			fill := darkSquare
			switch {
			case marked[sq]:
				fill = highlightSquare
			case sq.IsLightSquare():
				fill = lightSquare
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+fill)

			piece := board.Get(sq)
			if piece.IsEmpty() {
				continue
			}
			canvas.Text(x+squareSize/2, y+squareSize*4/5, string(Glyph(piece, true)),
				fmt.Sprintf("text-anchor:middle;font-size:%dpx", squareSize*4/5))
		}
	}

	if opts.Coordinates {
		style := fmt.Sprintf("text-anchor:middle;font-size:%dpx", squareSize/3)
		for i := 0; i < chess.BoardSize; i++ {
			canvas.Text(margin+i*squareSize+squareSize/2, 8*squareSize+margin*3/4,
				string(rune('a'+i)), style)
			canvas.Text(margin/2, (chess.LastRank-i)*squareSize+squareSize/2+squareSize/8,
				string(rune('1'+i)), style)
		}
	}
	canvas.End()
}
