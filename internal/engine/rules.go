package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// DrawRuleResult reports draw conditions observed over a sequence of states.
// It is informational: none of these conditions end a game by itself.
type DrawRuleResult struct {
	// Has50MoveRule is true if some state has 50 moves (100 half-moves)
	// without a pawn move or capture.
	Has50MoveRule bool

	// Has75MoveRule is true if a position was reached where 75 moves
	// (150 half-moves) have been made without a pawn move or capture.
	Has75MoveRule bool

	// Has3FoldRepetition is true if any position occurred 3 or more times.
	Has3FoldRepetition bool

	// Has5FoldRepetition is true if any position occurred 5 or more times.
	Has5FoldRepetition bool

	// HasInsufficientMaterial is true if the final position has insufficient
	// mating material for either side.
	HasInsufficientMaterial bool

	// HasMaterialOdds is true if the first state has non-standard material.
	HasMaterialOdds bool
}

// AnalyzeDrawRules analyzes the states of a game, first to last.
func AnalyzeDrawRules(states []chess.GameState) DrawRuleResult {
	result := DrawRuleResult{}
	if len(states) == 0 {
		return result
	}

	result.HasMaterialOdds = !isStandardMaterial(states[0].Board)

	positions := hashing.NewRepetitionTable()
	for _, s := range states {
		if s.HalfmoveClock >= 100 {
			result.Has50MoveRule = true
		}
		if s.HalfmoveClock >= 150 {
			result.Has75MoveRule = true
		}
		positions.Add(s)
	}
	result.Has3FoldRepetition = positions.MaxCount() >= 3
	result.Has5FoldRepetition = positions.MaxCount() >= 5

	result.HasInsufficientMaterial = HasInsufficientMaterial(states[len(states)-1].Board)

	return result
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceKind
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, sq := range board.Squares(colour) {
			kind := board.Get(sq).Kind
			switch kind {
			case chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			}

			if colour == chess.White {
				whitePieces = append(whitePieces, kind)
				if kind == chess.Bishop {
					whiteBishopOnLight = sq.IsLightSquare()
				}
			} else {
				blackPieces = append(blackPieces, kind)
				if kind == chess.Bishop {
					blackBishopOnLight = sq.IsLightSquare()
				}
			}
		}
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return isMinor(blackPieces[0])
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return isMinor(whitePieces[0])
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

func isMinor(kind chess.PieceKind) bool {
	return kind == chess.Bishop || kind == chess.Knight
}

// isStandardMaterial checks if the board has standard starting material.
func isStandardMaterial(board chess.Board) bool {
	initial := chess.InitialBoard()
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for kind := chess.Pawn; kind < chess.NumPieceKinds; kind++ {
			piece := chess.Piece{Colour: colour, Kind: kind}
			if board.Count(piece) != initial.Count(piece) {
				return false
			}
		}
	}
	return true
}
