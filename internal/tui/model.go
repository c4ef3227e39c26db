// Package tui is a click-to-move terminal board built on tcell.
package tui

import (
	"errors"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Model is the interaction state of the board: the game being played, the
// selected square and the last message for the status line.
type Model struct {
	game     *game.Game
	selected chess.Position
	hasSel   bool
	message  string
}

// NewModel returns a model with nothing selected.
func NewModel(g *game.Game) *Model {
	return &Model{game: g}
}

// Game returns the game being played.
func (m *Model) Game() *game.Game {
	return m.game
}

// Selected returns the selected square, if any.
func (m *Model) Selected() (chess.Position, bool) {
	return m.selected, m.hasSel
}

// Message returns the text for the message line.
func (m *Model) Message() string {
	return m.message
}

// Highlights returns the legal destinations of the selected piece.
func (m *Model) Highlights() []chess.Position {
	if !m.hasSel {
		return nil
	}
	return m.game.LegalMovesFrom(m.selected).Destinations()
}

// Click handles a click on p. The first click selects a piece of the side
// to move, the second moves it. Clicking the selected square again, or an
// unreachable square, clears the selection; clicking another own piece
// selects that piece instead. It returns the move played, if any.
func (m *Model) Click(p chess.Position) (chess.Move, bool) {
	if m.game.Status().Over() {
		m.message = "Game over: " + m.game.Status().String()
		return chess.Move{}, false
	}

	if m.hasSel {
		if p == m.selected {
			m.clear("")
			return chess.Move{}, false
		}
		if m.game.LegalMovesFrom(m.selected).Contains(p) {
			return m.move(p)
		}
	}

	piece := m.game.Current().Board.Get(p)
	if piece.IsEmpty() || piece.Colour != m.game.Turn() {
		if m.hasSel {
			m.clear(fmt.Sprintf("%s cannot move to %s", m.selected, p))
		} else {
			m.clear(fmt.Sprintf("no %s piece on %s", m.game.Turn(), p))
		}
		return chess.Move{}, false
	}
	if len(m.game.LegalMovesFrom(p)) == 0 {
		m.clear(fmt.Sprintf("%s on %s has no legal moves", piece.Kind, p))
		return chess.Move{}, false
	}

	m.selected, m.hasSel = p, true
	m.message = ""
	return chess.Move{}, false
}

// move plays the selected piece to p. Promotions become queens.
func (m *Model) move(p chess.Position) (chess.Move, bool) {
	from := m.selected
	if err := m.game.ApplyMove(from, p); err != nil {
		m.clear(err.Error())
		return chess.Move{}, false
	}
	history := m.game.History()
	played := history[len(history)-1]

	m.clear("")
	if m.game.Status().Over() {
		m.message = m.game.Status().String()
	} else if m.game.InCheck() {
		m.message = "Check"
	}
	return played, true
}

// Undo takes back the last move.
func (m *Model) Undo() {
	err := m.game.Undo()
	switch {
	case errors.Is(err, chesserrors.ErrNoHistory):
		m.clear("nothing to undo")
	case err != nil:
		m.clear(err.Error())
	default:
		m.clear("")
	}
}

// Cancel clears the selection.
func (m *Model) Cancel() {
	m.clear("")
}

func (m *Model) clear(message string) {
	m.selected, m.hasSel = chess.Position{}, false
	m.message = message
}
