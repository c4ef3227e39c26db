package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsLegal reports whether move, pseudo-legal in before, leaves the mover's
// king unattacked. Castling also requires that the king is not in check
// before the move and does not cross an attacked square.
func IsLegal(move chess.Move, before chess.GameState) bool {
	_, ok := tryMove(move, before)
	return ok
}

// tryMove applies move and returns the resulting state when it is legal.
func tryMove(move chess.Move, before chess.GameState) (chess.GameState, bool) {
	mover := before.ActiveColour

	if move.Kind.IsCastle() {
		if InCheck(before, mover) {
			return chess.GameState{}, false
		}
		g := castleGeometry(mover, move.Kind)
		if IsSquareAttacked(before.Board, g.transit, mover.Opposite()) {
			return chess.GameState{}, false
		}
	}

	after := Apply(before, move)
	if InCheck(after, mover) {
		return chess.GameState{}, false
	}
	return after, true
}

// LegalMoves returns the legal moves of the piece on from. Each move carries
// the states before and after it. The result is nil when from holds no piece
// of the side to move.
func LegalMoves(state chess.GameState, from chess.Position) chess.MoveList {
	var legal chess.MoveList
	for _, m := range PseudoLegalMoves(state, from) {
		after, ok := tryMove(m, state)
		if !ok {
			continue
		}
		m.After = after
		legal = append(legal, m)
	}
	return legal
}

// AllLegalMoves returns the legal moves of every piece of the side to move.
func AllLegalMoves(state chess.GameState) chess.MoveList {
	var moves chess.MoveList
	for _, sq := range state.Board.Squares(state.ActiveColour) {
		moves = append(moves, LegalMoves(state, sq)...)
	}
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(state chess.GameState) bool {
	for _, m := range AllPseudoLegalMoves(state) {
		if IsLegal(m, state) {
			return true
		}
	}
	return false
}
