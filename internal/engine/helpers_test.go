package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Well-known perft positions.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	foolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	stalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	castlingFEN  = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"
)

func mustParse(t testing.TB, fen string) chess.GameState {
	t.Helper()
	state, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
	}
	return state
}

func mustPos(t testing.TB, s string) chess.Position {
	t.Helper()
	p, err := chess.ParsePosition(s)
	if err != nil {
		t.Fatalf("ParsePosition(%q) failed: %v", s, err)
	}
	return p
}

// destinations returns the sorted target squares of moves as text.
func destinations(moves chess.MoveList) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.To.String())
	}
	sort.Strings(out)
	return out
}

// findMove returns the move from-to in moves, failing the test if absent.
func findMove(t testing.TB, moves chess.MoveList, from, to string) chess.Move {
	t.Helper()
	f, dst := mustPos(t, from), mustPos(t, to)
	for _, m := range moves {
		if m.From == f && m.To == dst {
			return m
		}
	}
	t.Fatalf("move %s%s not found in %v", from, to, moves.Strings())
	return chess.Move{}
}
