package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestPseudoLegalMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "pawn single and double step",
			fen:  InitialFEN,
			from: "e2",
			want: []string{"e3", "e4"},
		},
		{
			name: "black pawn single and double step",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			from: "d7",
			want: []string{"d5", "d6"},
		},
		{
			name: "pawn blocked directly",
			fen:  "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1",
			from: "e2",
			want: []string{},
		},
		{
			name: "pawn double step blocked on destination",
			fen:  "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1",
			from: "e2",
			want: []string{"e3"},
		},
		{
			name: "pawn captures both sides",
			fen:  "4k3/8/8/3p1p2/4P3/8/8/4K3 w - - 0 1",
			from: "e4",
			want: []string{"d5", "e5", "f5"},
		},
		{
			name: "pawn does not capture own piece",
			fen:  "4k3/8/8/3P1P2/4P3/8/8/4K3 w - - 0 1",
			from: "e4",
			want: []string{"e5"},
		},
		{
			name: "pawn en passant",
			fen:  "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			from: "e5",
			want: []string{"d6", "e6"},
		},
		{
			name: "knight in corner",
			fen:  InitialFEN,
			from: "b1",
			want: []string{"a3", "c3"},
		},
		{
			name: "knight in centre",
			fen:  "4k3/8/8/8/3N4/8/8/4K3 w - - 0 1",
			from: "d4",
			want: []string{"b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5"},
		},
		{
			name: "bishop blocked at start",
			fen:  InitialFEN,
			from: "c1",
			want: []string{},
		},
		{
			name: "rook stops on capture and before ally",
			fen:  "4k3/8/8/3p4/8/8/3R2P1/4K3 w - - 0 1",
			from: "d2",
			want: []string{"a2", "b2", "c2", "d1", "d3", "d4", "d5", "e2", "f2"},
		},
		{
			name: "queen on empty board",
			fen:  "k7/8/8/8/8/8/8/Q6K w - - 0 1",
			from: "a1",
			want: []string{
				"a2", "a3", "a4", "a5", "a6", "a7", "a8",
				"b1", "b2", "c1", "c3", "d1", "d4", "e1", "e5", "f1", "f6", "g1", "g7", "h8",
			},
		},
		{
			name: "king with both castling moves",
			fen:  castlingFEN,
			from: "e1",
			want: []string{"c1", "d1", "f1", "g1"},
		},
		{
			name: "castling not offered without right",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Qkq - 0 1",
			from: "e1",
			want: []string{"c1", "d1", "f1"},
		},
		{
			name: "castling not offered when path occupied",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/RN2K1NR w KQkq - 0 1",
			from: "e1",
			want: []string{"d1", "f1"},
		},
		{
			name: "castling not offered when rook missing",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/4K2R w KQkq - 0 1",
			from: "e1",
			want: []string{"d1", "f1", "g1"},
		},
		{
			name: "castling offered through attacked square",
			fen:  "k4r2/8/8/8/8/8/8/R3K2R w KQ - 0 1",
			from: "e1",
			want: []string{"c1", "d1", "d2", "e2", "f1", "f2", "g1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := mustParse(t, tt.fen)
			got := destinations(PseudoLegalMoves(state, mustPos(t, tt.from)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PseudoLegalMoves(%s) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestPseudoLegalMoves_NoSelection(t *testing.T) {
	state := mustParse(t, InitialFEN)

	tests := []struct {
		name string
		from chess.Position
	}{
		{"empty square", chess.Pos(4, 3)},
		{"opponent piece", chess.Pos(4, 6)},
		{"off board", chess.Pos(8, 0)},
		{"negative", chess.Pos(-1, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PseudoLegalMoves(state, tt.from); len(got) != 0 {
				t.Errorf("PseudoLegalMoves(%+v) = %v; want none", tt.from, got.Strings())
			}
		})
	}
}

func TestPseudoLegalMoves_Kinds(t *testing.T) {
	state := mustParse(t, "r3k2r/8/8/3pP3/8/8/8/R3K2R w KQkq d6 0 1")

	tests := []struct {
		from, to string
		want     chess.MoveKind
	}{
		{"e5", "e6", chess.Normal},
		{"e5", "d6", chess.EnPassantCapture},
		{"e1", "g1", chess.CastleKingside},
		{"e1", "c1", chess.CastleQueenside},
		{"a1", "a8", chess.Capture},
		{"a1", "a5", chess.Normal},
	}
	for _, tt := range tests {
		t.Run(tt.from+tt.to, func(t *testing.T) {
			m := findMove(t, PseudoLegalMoves(state, mustPos(t, tt.from)), tt.from, tt.to)
			if m.Kind != tt.want {
				t.Errorf("Kind = %v; want %v", m.Kind, tt.want)
			}
			if m.Before != state {
				t.Error("Before does not hold the generating state")
			}
		})
	}

	// Double advance tagged from the start rank.
	start := mustParse(t, InitialFEN)
	m := findMove(t, PseudoLegalMoves(start, mustPos(t, "d2")), "d2", "d4")
	if m.Kind != chess.DoublePawnAdvance {
		t.Errorf("d2d4 Kind = %v; want DoublePawnAdvance", m.Kind)
	}
}

func TestPseudoLegalMoves_EnPassantCaptured(t *testing.T) {
	state := mustParse(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	m := findMove(t, PseudoLegalMoves(state, mustPos(t, "e5")), "e5", "d6")
	if m.Captured != chess.B(chess.Pawn) {
		t.Errorf("Captured = %v; want Black Pawn", m.Captured)
	}
}

func TestPseudoLegalMoves_EnPassantOnlyForOpponentsAdvance(t *testing.T) {
	// The recorded double advance belongs to White, so White cannot take
	// its own pawn's square.
	state := mustParse(t, "4k3/8/8/8/3Pp3/8/8/4K3 w - d3 0 1")
	for _, m := range PseudoLegalMoves(state, mustPos(t, "d4")) {
		if m.Kind == chess.EnPassantCapture {
			t.Errorf("unexpected en passant move %v", m)
		}
	}

	// Black to move may capture it.
	state.ActiveColour = chess.Black
	m := findMove(t, PseudoLegalMoves(state, mustPos(t, "e4")), "e4", "d3")
	if m.Kind != chess.EnPassantCapture {
		t.Errorf("e4d3 Kind = %v; want EnPassantCapture", m.Kind)
	}
}

func TestPseudoLegalMoves_Promotion(t *testing.T) {
	state := mustParse(t, "3r4/4P3/8/8/8/8/k7/4K3 w - - 0 1")
	moves := PseudoLegalMoves(state, mustPos(t, "e7"))

	if got := destinations(moves); !cmp.Equal(got, []string{"d8", "e8"}) {
		t.Fatalf("destinations = %v; want [d8 e8]", got)
	}
	for _, m := range moves {
		if m.Promotion != chess.Queen {
			t.Errorf("%v Promotion = %v; want Queen", m, m.Promotion)
		}
	}
}

func TestPseudoLegalMoves_DoesNotModifyState(t *testing.T) {
	state := mustParse(t, kiwipeteFEN)
	before := state
	AllPseudoLegalMoves(state)
	if state != before {
		t.Error("generation modified the input state")
	}
}

func TestIsPromotionKind(t *testing.T) {
	tests := []struct {
		kind chess.PieceKind
		want bool
	}{
		{chess.Queen, true},
		{chess.Rook, true},
		{chess.Bishop, true},
		{chess.Knight, true},
		{chess.King, false},
		{chess.Pawn, false},
		{chess.NoKind, false},
	}
	for _, tt := range tests {
		if got := IsPromotionKind(tt.kind); got != tt.want {
			t.Errorf("IsPromotionKind(%v) = %v; want %v", tt.kind, got, tt.want)
		}
	}
}
