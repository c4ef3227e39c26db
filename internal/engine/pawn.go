package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves generates forward steps, the double advance from the starting
// rank, diagonal captures and en passant.
func pawnMoves(state chess.GameState, from chess.Position, pawn chess.Piece) chess.MoveList {
	var moves chess.MoveList
	board := state.Board
	colour := pawn.Colour
	dir := chess.ColourOffset(colour)

	one := from.Offset(0, dir)
	if target, ok := board.At(one); ok && target.IsEmpty() {
		moves = append(moves, pawnMove(state, from, one, chess.Normal, pawn))

		if from.Rank == chess.PawnStartRank(colour) {
			two := from.Offset(0, 2*dir)
			if target, ok := board.At(two); ok && target.IsEmpty() {
				moves = append(moves, pawnMove(state, from, two, chess.DoublePawnAdvance, pawn))
			}
		}
	}

	for _, df := range []int{-1, 1} {
		to := from.Offset(df, dir)
		target, ok := board.At(to)
		if !ok {
			continue
		}
		switch {
		case !target.IsEmpty() && target.Colour != colour:
			moves = append(moves, pawnMove(state, from, to, chess.Capture, pawn))
		case target.IsEmpty() && isEnPassantSquare(state, to, colour):
			m := pawnMove(state, from, to, chess.EnPassantCapture, pawn)
			m.Captured = chess.Piece{Colour: colour.Opposite(), Kind: chess.Pawn}
			moves = append(moves, m)
		}
	}
	return moves
}

// pawnMove builds a pawn move, marking promotion to a queen when the pawn
// reaches the last rank.
func pawnMove(state chess.GameState, from, to chess.Position, kind chess.MoveKind, pawn chess.Piece) chess.Move {
	m := newMove(state, from, to, kind, pawn)
	if to.Rank == chess.PromotionRank(pawn.Colour) {
		m.Promotion = chess.Queen
	}
	return m
}

// isEnPassantSquare reports whether a pawn of colour may capture en passant
// by moving to sq: the opponent double-advanced last move, sq is the square
// it passed over and the pawn is still behind sq.
func isEnPassantSquare(state chess.GameState, sq chess.Position, colour chess.Colour) bool {
	opponent := colour.Opposite()
	target, ok := state.EnPassant.Square(opponent)
	if !ok || target != sq {
		return false
	}
	return state.Board.Get(capturedPawnSquare(sq, colour)) == chess.Piece{Colour: opponent, Kind: chess.Pawn}
}

// capturedPawnSquare returns the square of the pawn removed by an en passant
// capture landing on to, made by a pawn of colour.
func capturedPawnSquare(to chess.Position, colour chess.Colour) chess.Position {
	return to.Offset(0, -chess.ColourOffset(colour))
}

// IsPromotionKind reports whether a pawn may promote to kind.
func IsPromotionKind(kind chess.PieceKind) bool {
	for _, k := range promotionKinds {
		if k == kind {
			return true
		}
	}
	return false
}
