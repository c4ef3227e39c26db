package game

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Coordinates is a move as typed by a player: two squares and an optional
// promotion kind.
type Coordinates struct {
	From      chess.Position
	To        chess.Position
	Promotion chess.PieceKind
}

// ParseCoordinates parses coordinate notation such as "e2e4", "e2-e4",
// "e2 e4" or "e7e8n", as well as the hyphenated record form "e4xd5" and
// "e7-e8=Q". A trailing piece letter selects the promotion kind.
func ParseCoordinates(s string) (Coordinates, error) {
	text := strings.NewReplacer(" ", "", "-", "", "=", "").Replace(strings.TrimSpace(s))
	if len(text) >= 5 && (text[2] == 'x' || text[2] == 'X') {
		text = text[:2] + text[3:]
	}
	if len(text) != 4 && len(text) != 5 {
		return Coordinates{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Expected: "two squares such as e2e4",
			Got:      s,
		}
	}

	from, err := chess.ParsePosition(text[:2])
	if err != nil {
		return Coordinates{}, err
	}
	to, err := chess.ParsePosition(text[2:4])
	if err != nil {
		return Coordinates{}, err
	}

	c := Coordinates{From: from, To: to}
	if len(text) == 5 {
		c.Promotion = chess.KindFromLetter(text[4])
		if c.Promotion == chess.NoKind {
			return Coordinates{}, &errors.ParseError{
				Err:      errors.ErrInvalidSquare,
				Input:    s,
				Column:   5,
				Expected: "promotion letter q, r, b or n",
				Got:      string(text[4]),
			}
		}
	}
	return c, nil
}

// Play parses text as coordinates and applies the move.
func (g *Game) Play(text string) error {
	c, err := ParseCoordinates(text)
	if err != nil {
		return err
	}
	return g.ApplyMoveWithPromotion(c.From, c.To, c.Promotion)
}
