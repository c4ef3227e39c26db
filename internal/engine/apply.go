package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Apply returns the state reached by playing move in state. The input state
// is never modified. Apply is total over moves produced by LegalMoves; a
// pawn reaching the last rank without a Promotion kind becomes a queen.
func Apply(state chess.GameState, move chess.Move) chess.GameState {
	next := state
	mover := state.ActiveColour
	piece := state.Board.Get(move.From)
	captured := state.Board.Get(move.To)

	switch move.Kind {
	case chess.CastleKingside, chess.CastleQueenside:
		applyCastle(&next.Board, mover, move.Kind)

	case chess.EnPassantCapture:
		captured = next.Board.Get(capturedPawnSquare(move.To, mover))
		next.Board.Clear(capturedPawnSquare(move.To, mover))
		movePiece(&next.Board, move, piece)

	default:
		movePiece(&next.Board, move, piece)
	}

	next.Castling = updateCastlingRights(state.Castling, move.From, move.To)

	next.EnPassant = chess.NoEnPassant()
	if move.Kind == chess.DoublePawnAdvance {
		next.EnPassant = chess.EnPassantFor(mover, move.From.File)
	}

	if piece.Kind == chess.Pawn || !captured.IsEmpty() {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if mover == chess.Black {
		next.FullmoveNumber++
	}
	next.ActiveColour = mover.Opposite()

	return next
}

// movePiece lifts piece from move.From and drops it on move.To, promoting a
// pawn that lands on its last rank.
func movePiece(board *chess.Board, move chess.Move, piece chess.Piece) {
	board.Clear(move.From)
	if piece.Kind == chess.Pawn && move.To.Rank == chess.PromotionRank(piece.Colour) {
		promoted := move.Promotion
		if promoted == chess.NoKind {
			promoted = chess.Queen // Default to queen
		}
		piece.Kind = promoted
	}
	board.Set(move.To, piece)
}

// applyCastle relocates king and rook to their post-castle squares.
func applyCastle(board *chess.Board, colour chess.Colour, kind chess.MoveKind) {
	g := castleGeometry(colour, kind)

	king := board.Get(g.kingFrom)
	board.Clear(g.kingFrom)
	board.Set(g.kingTo, king)

	rook := board.Get(g.rookFrom)
	board.Clear(g.rookFrom)
	board.Set(g.rookTo, rook)
}
