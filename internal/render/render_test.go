package render

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		piece   chess.Piece
		unicode bool
		want    rune
	}{
		{chess.Piece{}, false, '.'},
		{chess.Piece{}, true, '·'},
		{chess.W(chess.King), false, 'K'},
		{chess.B(chess.Knight), false, 'n'},
		{chess.W(chess.King), true, '♔'},
		{chess.W(chess.Queen), true, '♕'},
		{chess.W(chess.Rook), true, '♖'},
		{chess.W(chess.Bishop), true, '♗'},
		{chess.W(chess.Knight), true, '♘'},
		{chess.W(chess.Pawn), true, '♙'},
		{chess.B(chess.King), true, '♚'},
		{chess.B(chess.Queen), true, '♛'},
		{chess.B(chess.Rook), true, '♜'},
		{chess.B(chess.Bishop), true, '♝'},
		{chess.B(chess.Knight), true, '♞'},
		{chess.B(chess.Pawn), true, '♟'},
	}
	for _, tt := range tests {
		if got := Glyph(tt.piece, tt.unicode); got != tt.want {
			t.Errorf("Glyph(%v, %v) = %q, want %q", tt.piece, tt.unicode, got, tt.want)
		}
	}
}

func TestText_Initial(t *testing.T) {
	want := strings.Join([]string{
		"8 r n b q k b n r",
		"7 p p p p p p p p",
		"6 . . . . . . . .",
		"5 . . . . . . . .",
		"4 . . . . . . . .",
		"3 . . . . . . . .",
		"2 P P P P P P P P",
		"1 R N B Q K B N R",
		"  a b c d e f g h",
		"",
	}, "\n")

	got := Text(chess.InitialBoard(), Options{Coordinates: true})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Text() mismatch (-want +got):\n%s", diff)
	}
}

func TestText_Highlight(t *testing.T) {
	board := chess.Board{}
	board.Set(chess.Pos(0, 0), chess.W(chess.Rook))
	board.Set(chess.Pos(0, 2), chess.B(chess.Pawn))

	got := Text(board, Options{Highlight: []chess.Position{chess.Pos(0, 1), chess.Pos(0, 2)}})
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8", len(lines))
	}
	for i, want := range map[int]string{
		5: "x . . . . . . .",
		6: "* . . . . . . .",
		7: "R . . . . . . .",
	} {
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}

func TestText_Unicode(t *testing.T) {
	got := Text(chess.InitialBoard(), Options{Unicode: true})
	first := strings.SplitN(got, "\n", 2)[0]
	if first != "♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜" {
		t.Errorf("first rank = %q", first)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, chess.InitialBoard(), Options{}); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}
	if buf.String() != Text(chess.InitialBoard(), Options{}) {
		t.Error("WriteText output differs from Text")
	}
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	SVG(&buf, chess.InitialBoard(), 40, Options{Highlight: []chess.Position{chess.Pos(4, 3)}})
	out := buf.String()

	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("output is not an SVG document:\n%s", out)
	}
	if got := strings.Count(out, "<rect"); got != 64 {
		t.Errorf("rect count = %d, want 64", got)
	}
	if got := strings.Count(out, "fill:"+highlightSquare); got != 1 {
		t.Errorf("highlighted squares = %d, want 1", got)
	}
	if got := strings.Count(out, "♟"); got != 8 {
		t.Errorf("black pawns = %d, want 8", got)
	}
	if !strings.Contains(out, `width="320"`) {
		t.Error("expected an 8x40 pixel board")
	}
}

func TestSVG_Coordinates(t *testing.T) {
	var buf bytes.Buffer
	SVG(&buf, chess.Board{}, 0, Options{Coordinates: true})
	out := buf.String()

	side := 8*DefaultSquareSize + DefaultSquareSize/2
	if !strings.Contains(out, `width="`+strconv.Itoa(side)+`"`) {
		t.Errorf("expected board side %d", side)
	}
	for _, label := range []string{">a<", ">h<", ">1<", ">8<"} {
		if !strings.Contains(out, label) {
			t.Errorf("missing coordinate label %s", label)
		}
	}
}
