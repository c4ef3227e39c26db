package chess

// CastlingRights records which castling moves remain available. Over a game
// each flag only ever goes from true to false.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns rights with all four flags set.
func AllCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// Kingside reports the kingside right of colour.
func (c CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside reports the queenside right of colour.
func (c CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// Without returns c with the kingside and/or queenside right of colour cleared.
func (c CastlingRights) Without(colour Colour, kingside, queenside bool) CastlingRights {
	if colour == White {
		c.WhiteKingside = c.WhiteKingside && !kingside
		c.WhiteQueenside = c.WhiteQueenside && !queenside
	} else {
		c.BlackKingside = c.BlackKingside && !kingside
		c.BlackQueenside = c.BlackQueenside && !queenside
	}
	return c
}

// Subset reports whether every right in c is also present in other.
func (c CastlingRights) Subset(other CastlingRights) bool {
	return (!c.WhiteKingside || other.WhiteKingside) &&
		(!c.WhiteQueenside || other.WhiteQueenside) &&
		(!c.BlackKingside || other.BlackKingside) &&
		(!c.BlackQueenside || other.BlackQueenside)
}

// String returns the FEN castling field ("KQkq", "-").
func (c CastlingRights) String() string {
	var s []byte
	if c.WhiteKingside {
		s = append(s, 'K')
	}
	if c.WhiteQueenside {
		s = append(s, 'Q')
	}
	if c.BlackKingside {
		s = append(s, 'k')
	}
	if c.BlackQueenside {
		s = append(s, 'q')
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}

// EnPassantTarget records, per colour, the file of a pawn that advanced two
// squares on that colour's previous move. Only the colour that just moved
// can have an entry.
type EnPassantTarget struct {
	Valid [NumColours]bool
	File  [NumColours]int
}

// NoEnPassant returns a target with no capturable pawn.
func NoEnPassant() EnPassantTarget {
	return EnPassantTarget{}
}

// EnPassantFor returns a target marking the pawn of colour on file.
func EnPassantFor(colour Colour, file int) EnPassantTarget {
	var e EnPassantTarget
	e.Valid[colour] = true
	e.File[colour] = file
	return e
}

// FileOf returns the capturable file for pawns of colour.
func (e EnPassantTarget) FileOf(colour Colour) (int, bool) {
	if !e.Valid[colour] {
		return 0, false
	}
	return e.File[colour], true
}

// Square returns the square passed over by colour's double-advanced pawn:
// the square an enemy pawn moves to when capturing en passant.
func (e EnPassantTarget) Square(colour Colour) (Position, bool) {
	file, ok := e.FileOf(colour)
	if !ok {
		return Position{}, false
	}
	return Pos(file, PawnStartRank(colour)+ColourOffset(colour)), true
}

// Any reports whether either colour has a capturable pawn.
func (e EnPassantTarget) Any() bool {
	return e.Valid[White] || e.Valid[Black]
}

// GameState is one immutable snapshot of a game. Every move application
// produces a new value; nothing modifies a GameState after construction.
type GameState struct {
	ActiveColour Colour
	Board        Board
	Castling     CastlingRights
	EnPassant    EnPassantTarget

	// HalfmoveClock counts plies since the last pawn move or capture.
	HalfmoveClock int
	// FullmoveNumber starts at 1 and increments after Black moves.
	FullmoveNumber int
}

// NewGameState returns the standard initial state: White to move, all four
// castling rights, no en-passant target.
func NewGameState() GameState {
	return GameState{
		ActiveColour:   White,
		Board:          InitialBoard(),
		Castling:       AllCastlingRights(),
		EnPassant:      NoEnPassant(),
		FullmoveNumber: 1,
	}
}

// StatusKind classifies whether a game has ended.
type StatusKind uint8

const (
	InProgress StatusKind = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status kind.
func (k StatusKind) String() string {
	switch k {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	}
	return "InProgress"
}

// Status is the terminal classification of a game. Winner is only
// meaningful for Checkmate.
type Status struct {
	Kind   StatusKind
	Winner Colour
}

// Over reports whether the game has ended.
func (s Status) Over() bool {
	return s.Kind != InProgress
}

// String returns e.g. "Checkmate (White wins)".
func (s Status) String() string {
	if s.Kind == Checkmate {
		return "Checkmate (" + s.Winner.String() + " wins)"
	}
	return s.Kind.String()
}
