package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Fixed files of the castling pieces.
const (
	kingFile          = 4
	kingsideRookFile  = 7
	queensideRookFile = 0
)

// castleSquares describes where the king and rook start and finish for one
// castling move.
type castleSquares struct {
	kingFrom, kingTo chess.Position
	rookFrom, rookTo chess.Position
	// transit is the square the king crosses between kingFrom and kingTo.
	transit chess.Position
}

// castleGeometry returns the squares used by colour castling on the given side.
func castleGeometry(colour chess.Colour, kind chess.MoveKind) castleSquares {
	rank := chess.HomeRank(colour)
	if kind == chess.CastleKingside {
		return castleSquares{
			kingFrom: chess.Pos(kingFile, rank), kingTo: chess.Pos(6, rank),
			rookFrom: chess.Pos(kingsideRookFile, rank), rookTo: chess.Pos(5, rank),
			transit: chess.Pos(5, rank),
		}
	}
	return castleSquares{
		kingFrom: chess.Pos(kingFile, rank), kingTo: chess.Pos(2, rank),
		rookFrom: chess.Pos(queensideRookFile, rank), rookTo: chess.Pos(3, rank),
		transit: chess.Pos(3, rank),
	}
}

// castlingMoves offers castling when the right is held, king and rook are on
// their original squares and everything between them is empty. Whether the
// king passes through check is decided by the legality filter.
func castlingMoves(state chess.GameState, from chess.Position, king chess.Piece) chess.MoveList {
	colour := king.Colour
	if from != chess.Pos(kingFile, chess.HomeRank(colour)) {
		return nil
	}

	var moves chess.MoveList
	if state.Castling.Kingside(colour) && canCastle(state.Board, colour, chess.CastleKingside) {
		g := castleGeometry(colour, chess.CastleKingside)
		moves = append(moves, newMove(state, from, g.kingTo, chess.CastleKingside, king))
	}
	if state.Castling.Queenside(colour) && canCastle(state.Board, colour, chess.CastleQueenside) {
		g := castleGeometry(colour, chess.CastleQueenside)
		moves = append(moves, newMove(state, from, g.kingTo, chess.CastleQueenside, king))
	}
	return moves
}

// canCastle checks the occupancy preconditions for one castling move.
func canCastle(board chess.Board, colour chess.Colour, kind chess.MoveKind) bool {
	g := castleGeometry(colour, kind)
	if board.Get(g.kingFrom) != (chess.Piece{Colour: colour, Kind: chess.King}) {
		return false
	}
	if board.Get(g.rookFrom) != (chess.Piece{Colour: colour, Kind: chess.Rook}) {
		return false
	}
	return isPathClear(board, g.kingFrom, g.rookFrom)
}

// updateCastlingRights clears every right whose king or rook origin square
// is touched by a move from from to to: the piece left it, or something was
// captured on it.
func updateCastlingRights(rights chess.CastlingRights, from, to chess.Position) chess.CastlingRights {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		rank := chess.HomeRank(colour)
		for _, sq := range []chess.Position{from, to} {
			if sq.Rank != rank {
				continue
			}
			switch sq.File {
			case kingFile:
				rights = rights.Without(colour, true, true)
			case kingsideRookFile:
				rights = rights.Without(colour, true, false)
			case queensideRookFile:
				rights = rights.Without(colour, false, true)
			}
		}
	}
	return rights
}
