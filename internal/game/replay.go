package game

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Replay rebuilds a game from start by playing the from, to and promotion
// of each move in order. It stops at the first move that is not legal; the
// returned game holds the moves played up to that point.
func Replay(start chess.GameState, moves []chess.Move, opts ...Option) (*Game, error) {
	g := New(append([]Option{WithState(start)}, opts...)...)
	for _, m := range moves {
		if err := g.ApplyMoveWithPromotion(m.From, m.To, m.Promotion); err != nil {
			return g, err
		}
	}
	return g, nil
}

// Analysis summarizes a game's moves and draw conditions.
type Analysis struct {
	Plies           int
	Captures        int
	Checks          int
	Castles         int
	Promotions      int
	Underpromotions int
	// UniquePositions counts distinct positions reached, the start included.
	UniquePositions int

	Status    chess.Status
	DrawRules engine.DrawRuleResult
}

// Analyze walks the history and reports what happened in the game.
func (g *Game) Analyze() Analysis {
	a := Analysis{
		Plies:           len(g.history),
		UniquePositions: g.positions.UniqueCount(),
		Status:          g.status,
		DrawRules:       g.DrawRules(),
	}
	for _, m := range g.history {
		if m.IsCapture() {
			a.Captures++
		}
		if m.Kind.IsCastle() {
			a.Castles++
		}
		if m.Promotion != chess.NoKind {
			a.Promotions++
			if m.Promotion != chess.Queen {
				a.Underpromotions++
			}
		}
		if engine.InCheck(m.After, m.After.ActiveColour) {
			a.Checks++
		}
	}
	return a
}
