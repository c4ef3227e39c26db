package chess

// MoveKind categorizes the effect a move has on the board.
type MoveKind uint8

const (
	Normal MoveKind = iota
	Capture
	EnPassantCapture
	CastleKingside
	CastleQueenside
	DoublePawnAdvance
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	names := []string{"Normal", "Capture", "EnPassantCapture", "CastleKingside", "CastleQueenside", "DoublePawnAdvance"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// IsCastle reports whether the kind is either castling move.
func (k MoveKind) IsCastle() bool {
	return k == CastleKingside || k == CastleQueenside
}

// Move is a single move from one square to another.
type Move struct {
	From Position
	To   Position
	Kind MoveKind

	// The piece being moved.
	Piece Piece

	// The piece captured (Empty if no capture). For en passant this is the
	// pawn removed from beside the destination.
	Captured Piece

	// The kind a pawn promotes to on the last rank (NoKind otherwise).
	Promotion PieceKind

	// States immediately before and after the move. After is only filled
	// in once the move has been validated and applied.
	Before GameState
	After  GameState
}

// String returns coordinate notation: "e2e4", "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(Piece{Colour: Black, Kind: m.Promotion}.Letter())
	}
	return s
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Kind == Capture || m.Kind == EnPassantCapture
}

// MoveList is an ordered sequence of moves. No ordering is guaranteed by
// the generator; callers must not depend on it.
type MoveList []Move

// Find returns the first move in the list that lands on to.
func (l MoveList) Find(to Position) (Move, bool) {
	for _, m := range l {
		if m.To == to {
			return m, true
		}
	}
	return Move{}, false
}

// Contains reports whether any move lands on to.
func (l MoveList) Contains(to Position) bool {
	_, ok := l.Find(to)
	return ok
}

// Destinations returns the target squares of the list in order.
func (l MoveList) Destinations() []Position {
	out := make([]Position, 0, len(l))
	for _, m := range l {
		out = append(out, m.To)
	}
	return out
}

// Strings returns the coordinate notation of each move.
func (l MoveList) Strings() []string {
	out := make([]string, 0, len(l))
	for _, m := range l {
		out = append(out, m.String())
	}
	return out
}
