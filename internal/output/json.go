package output

import (
	"encoding/json"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	InitialFEN string     `json:"initialFEN"`
	FinalFEN   string     `json:"finalFEN"`
	Result     string     `json:"result"`
	Status     string     `json:"status"`
	PlyCount   int        `json:"plyCount"`
	Moves      []JSONMove `json:"moves,omitempty"`
	Draw       *JSONDraw  `json:"draw,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Kind       string `json:"kind"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Check      bool   `json:"check,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONDraw lists the draw conditions a game reached. It is omitted when
// none were reached.
type JSONDraw struct {
	FiftyMove            bool `json:"fiftyMove,omitempty"`
	SeventyFiveMove      bool `json:"seventyFiveMove,omitempty"`
	ThreefoldRepetition  bool `json:"threefoldRepetition,omitempty"`
	FivefoldRepetition   bool `json:"fivefoldRepetition,omitempty"`
	InsufficientMaterial bool `json:"insufficientMaterial,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to JSON format. includeFEN adds the position
// after every move.
func GameToJSON(g *game.Game, includeFEN bool) *JSONGame {
	history := g.History()
	jg := &JSONGame{
		InitialFEN: engine.FEN(g.Start()),
		FinalFEN:   g.FEN(),
		Result:     GameResult(g.Status()),
		Status:     g.Status().String(),
		PlyCount:   len(history),
		Moves:      make([]JSONMove, 0, len(history)),
	}
	for _, m := range history {
		jg.Moves = append(jg.Moves, convertMove(m, includeFEN))
	}

	rules := g.DrawRules()
	draw := JSONDraw{
		FiftyMove:            rules.Has50MoveRule,
		SeventyFiveMove:      rules.Has75MoveRule,
		ThreefoldRepetition:  rules.Has3FoldRepetition,
		FivefoldRepetition:   rules.Has5FoldRepetition,
		InsufficientMaterial: rules.HasInsufficientMaterial,
	}
	if draw != (JSONDraw{}) {
		jg.Draw = &draw
	}
	return jg
}

func convertMove(m chess.Move, includeFEN bool) JSONMove {
	jm := JSONMove{
		MoveNumber: m.Before.FullmoveNumber,
		Color:      strings.ToLower(m.Before.ActiveColour.String()),
		UCI:        m.String(),
		From:       m.From.String(),
		To:         m.To.String(),
		Kind:       m.Kind.String(),
		Piece:      pieceTypeName(m.Piece.Kind),
		Check:      engine.InCheck(m.After, m.After.ActiveColour),
	}
	if !m.Captured.IsEmpty() {
		jm.Captured = pieceTypeName(m.Captured.Kind)
	}
	if m.Promotion != chess.NoKind {
		jm.Promotion = pieceTypeName(m.Promotion)
	}
	if includeFEN {
		jm.FEN = engine.FEN(m.After)
	}
	return jm
}

func pieceTypeName(k chess.PieceKind) string {
	return strings.ToLower(k.String())
}

// marshalIndent encodes v the way every writer in this package does.
func marshalIndent(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
