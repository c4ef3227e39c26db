package chess

import (
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Position is a board coordinate. File 0 is the a-file and Rank 0 is
// White's back rank. Any position used to index a Board must be OnBoard.
type Position struct {
	File int
	Rank int
}

// Pos builds a position from file and rank indices.
func Pos(file, rank int) Position {
	return Position{File: file, Rank: rank}
}

// OnBoard reports whether both coordinates are within [0,8).
func (p Position) OnBoard() bool {
	return p.File >= FirstFile && p.File <= LastFile &&
		p.Rank >= FirstRank && p.Rank <= LastRank
}

// Offset returns the position shifted by the given deltas. The result may be
// off the board.
func (p Position) Offset(df, dr int) Position {
	return Position{File: p.File + df, Rank: p.Rank + dr}
}

// String returns algebraic notation ("e4"), or "-" for an off-board position.
func (p Position) String() string {
	if !p.OnBoard() {
		return "-"
	}
	return string([]byte{byte('a' + p.File), byte('1' + p.Rank)})
}

// ParsePosition parses algebraic notation such as "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Expected: "file letter and rank digit",
		}
	}
	file := int(s[0]) - 'a'
	if s[0] >= 'A' && s[0] <= 'H' {
		file = int(s[0]) - 'A'
	}
	rank := int(s[1]) - '1'
	if file < FirstFile || file > LastFile {
		return Position{}, &errors.ParseError{
			Err: errors.ErrInvalidSquare, Input: s, Column: 1,
			Expected: "a-h", Got: string(s[0]),
		}
	}
	if rank < FirstRank || rank > LastRank {
		return Position{}, &errors.ParseError{
			Err: errors.ErrInvalidSquare, Input: s, Column: 2,
			Expected: "1-8", Got: string(s[1]),
		}
	}
	return Pos(file, rank), nil
}

// IsLightSquare returns true if the given square is a light square.
func (p Position) IsLightSquare() bool {
	return (p.File+p.Rank)%2 == 1
}
