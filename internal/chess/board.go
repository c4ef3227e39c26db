package chess

// Board is an 8x8 grid of square contents indexed [file][rank].
// It is a value type: assignment copies every square, so two boards never
// share storage.
type Board [BoardSize][BoardSize]Piece

// backRank is the standard piece order from the a-file to the h-file.
var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialBoard returns the standard chess starting position.
func InitialBoard() Board {
	var b Board
	for file := 0; file < BoardSize; file++ {
		b[file][FirstRank] = W(backRank[file])
		b[file][FirstRank+1] = W(Pawn)
		b[file][LastRank-1] = B(Pawn)
		b[file][LastRank] = B(backRank[file])
	}
	return b
}

// At returns the piece at p. ok is false when p is off the board.
func (b Board) At(p Position) (piece Piece, ok bool) {
	if !p.OnBoard() {
		return Empty, false
	}
	return b[p.File][p.Rank], true
}

// Get returns the piece at p, or Empty when p is off the board.
func (b Board) Get(p Position) Piece {
	piece, _ := b.At(p)
	return piece
}

// Set places a piece at p. Off-board positions are ignored.
func (b *Board) Set(p Position, piece Piece) {
	if p.OnBoard() {
		b[p.File][p.Rank] = piece
	}
}

// Clear empties the square at p.
func (b *Board) Clear(p Position) {
	b.Set(p, Empty)
}

// Find returns the first square (a1, a2, ... h8 order) holding piece.
func (b Board) Find(piece Piece) (Position, bool) {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b[file][rank] == piece {
				return Pos(file, rank), true
			}
		}
	}
	return Position{}, false
}

// Squares returns every occupied square holding a piece of colour.
func (b Board) Squares(colour Colour) []Position {
	var out []Position
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			pc := b[file][rank]
			if !pc.IsEmpty() && pc.Colour == colour {
				out = append(out, Pos(file, rank))
			}
		}
	}
	return out
}

// Count returns how many squares hold piece.
func (b Board) Count(piece Piece) int {
	n := 0
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b[file][rank] == piece {
				n++
			}
		}
	}
	return n
}
