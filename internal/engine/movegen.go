// Package engine implements the chess rules: move generation, legality
// filtering, move application and terminal-state classification. Every
// function is pure over chess.GameState values.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Direction and offset tables shared by generation and attack detection.
var (
	knightOffsets  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs      = append(append([][2]int{}, diagonalDirs...), straightDirs...)
	promotionKinds = []chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}
)

// PseudoLegalMoves returns the moves the piece on from could make according
// to its movement rules and the board occupancy, ignoring whether they
// expose the mover's own king. The result is nil when from is off the board
// or does not hold a piece of the side to move.
func PseudoLegalMoves(state chess.GameState, from chess.Position) chess.MoveList {
	piece, ok := state.Board.At(from)
	if !ok || piece.IsEmpty() || piece.Colour != state.ActiveColour {
		return nil
	}

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(state, from, piece)
	case chess.Knight:
		return stepMoves(state, from, piece, knightOffsets)
	case chess.King:
		moves := stepMoves(state, from, piece, kingOffsets)
		return append(moves, castlingMoves(state, from, piece)...)
	case chess.Bishop:
		return slidingMoves(state, from, piece, diagonalDirs)
	case chess.Rook:
		return slidingMoves(state, from, piece, straightDirs)
	case chess.Queen:
		return slidingMoves(state, from, piece, queenDirs)
	}
	return nil
}

// AllPseudoLegalMoves returns the pseudo-legal moves of every piece of the
// side to move.
func AllPseudoLegalMoves(state chess.GameState) chess.MoveList {
	var moves chess.MoveList
	for _, sq := range state.Board.Squares(state.ActiveColour) {
		moves = append(moves, PseudoLegalMoves(state, sq)...)
	}
	return moves
}

// stepMoves generates moves for pieces with a fixed set of single jumps.
func stepMoves(state chess.GameState, from chess.Position, piece chess.Piece, offsets [][2]int) chess.MoveList {
	var moves chess.MoveList
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		target, ok := state.Board.At(to)
		if !ok {
			continue
		}
		switch {
		case target.IsEmpty():
			moves = append(moves, newMove(state, from, to, chess.Normal, piece))
		case target.Colour != piece.Colour:
			moves = append(moves, newMove(state, from, to, chess.Capture, piece))
		}
	}
	return moves
}

// slidingMoves walks each ray until it leaves the board or meets a piece.
func slidingMoves(state chess.GameState, from chess.Position, piece chess.Piece, dirs [][2]int) chess.MoveList {
	var moves chess.MoveList
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for {
			target, ok := state.Board.At(to)
			if !ok {
				break
			}
			if !target.IsEmpty() {
				if target.Colour != piece.Colour {
					moves = append(moves, newMove(state, from, to, chess.Capture, piece))
				}
				break // Blocked
			}
			moves = append(moves, newMove(state, from, to, chess.Normal, piece))
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// newMove builds a move record against state. After is left zero; it is
// filled in once the move passes the legality filter.
func newMove(state chess.GameState, from, to chess.Position, kind chess.MoveKind, piece chess.Piece) chess.Move {
	return chess.Move{
		From:     from,
		To:       to,
		Kind:     kind,
		Piece:    piece,
		Captured: state.Board.Get(to),
		Before:   state,
	}
}
