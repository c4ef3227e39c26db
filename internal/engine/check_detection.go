package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// InCheck returns true if the given colour's king is attacked. A board with
// no king of that colour is never in check.
func InCheck(state chess.GameState, colour chess.Colour) bool {
	king, ok := findKing(state.Board, colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(state.Board, king, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board chess.Board, colour chess.Colour) (chess.Position, bool) {
	return board.Find(chess.Piece{Colour: colour, Kind: chess.King})
}

// IsSquareAttacked returns true if sq is attacked by a piece of byColour.
// It scans outward from sq instead of generating the attacker's moves.
func IsSquareAttacked(board chess.Board, sq chess.Position, byColour chess.Colour) bool {
	// Pawns attack diagonally forward, so look one rank back from sq.
	pawn := chess.Piece{Colour: byColour, Kind: chess.Pawn}
	back := -chess.ColourOffset(byColour)
	if board.Get(sq.Offset(-1, back)) == pawn || board.Get(sq.Offset(1, back)) == pawn {
		return true
	}

	if attackedByStep(board, sq, chess.Piece{Colour: byColour, Kind: chess.Knight}, knightOffsets) {
		return true
	}
	if attackedByStep(board, sq, chess.Piece{Colour: byColour, Kind: chess.King}, kingOffsets) {
		return true
	}

	queen := chess.Piece{Colour: byColour, Kind: chess.Queen}
	if attackedByRay(board, sq, chess.Piece{Colour: byColour, Kind: chess.Bishop}, queen, diagonalDirs) {
		return true
	}
	return attackedByRay(board, sq, chess.Piece{Colour: byColour, Kind: chess.Rook}, queen, straightDirs)
}

func attackedByStep(board chess.Board, sq chess.Position, attacker chess.Piece, offsets [][2]int) bool {
	for _, off := range offsets {
		if board.Get(sq.Offset(off[0], off[1])) == attacker {
			return true
		}
	}
	return false
}

// attackedByRay walks each direction to the first occupied square.
func attackedByRay(board chess.Board, sq chess.Position, slider, queen chess.Piece, dirs [][2]int) bool {
	for _, dir := range dirs {
		p := sq.Offset(dir[0], dir[1])
		for {
			piece, ok := board.At(p)
			if !ok {
				break
			}
			if !piece.IsEmpty() {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			p = p.Offset(dir[0], dir[1])
		}
	}
	return false
}
