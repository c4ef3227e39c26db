package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// MustState parses a FEN string, calling t.Fatal on failure.
func MustState(t testing.TB, fen string) chess.GameState {
	t.Helper()
	state, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
	}
	return state
}

// MustPos parses an algebraic square, calling t.Fatal on failure.
func MustPos(t testing.TB, s string) chess.Position {
	t.Helper()
	p, err := chess.ParsePosition(s)
	if err != nil {
		t.Fatalf("ParsePosition(%q) failed: %v", s, err)
	}
	return p
}

// MustGame starts a game from fen, calling t.Fatal on failure.
func MustGame(t testing.TB, fen string, opts ...game.Option) *game.Game {
	t.Helper()
	g, err := game.NewFromFEN(fen, opts...)
	if err != nil {
		t.Fatalf("NewFromFEN(%q) failed: %v", fen, err)
	}
	return g
}

// MustPlay plays moves in coordinate notation ("e2e4", "e7e8n"), calling
// t.Fatal at the first move that is rejected.
func MustPlay(t testing.TB, g *game.Game, moves ...string) {
	t.Helper()
	for i, text := range moves {
		if err := g.Play(text); err != nil {
			t.Fatalf("move %d (%s) rejected: %v", i+1, text, err)
		}
	}
}
