package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Classify returns the status of state given how many legal moves the side
// to move has. With no moves the game is lost by the side to move when it is
// in check and drawn by stalemate otherwise.
func Classify(state chess.GameState, legalMoves int) chess.Status {
	if legalMoves > 0 {
		return chess.Status{Kind: chess.InProgress}
	}
	if InCheck(state, state.ActiveColour) {
		return chess.Status{Kind: chess.Checkmate, Winner: state.ActiveColour.Opposite()}
	}
	return chess.Status{Kind: chess.Stalemate}
}

// Status classifies state from scratch.
func Status(state chess.GameState) chess.Status {
	if HasLegalMoves(state) {
		return chess.Status{Kind: chess.InProgress}
	}
	return Classify(state, 0)
}
