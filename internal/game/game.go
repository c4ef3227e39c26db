// Package game tracks one game from its starting position: the current
// state, the move history, the legal moves of the side to move and the
// terminal status.
//
// A Game is single-owner and not safe for concurrent mutation. The states
// and moves it hands out are values and may be shared freely.
package game

import (
	"log/slog"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Game is a chess game in progress or finished.
type Game struct {
	start   chess.GameState
	current chess.GameState
	history []chess.Move

	// legal caches the legal moves of the side to move per origin square.
	legal      [chess.BoardSize][chess.BoardSize]chess.MoveList
	legalCount int
	status     chess.Status

	positions *hashing.RepetitionTable
	logger    *slog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for move and status events.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithState starts the game from state instead of the initial position.
func WithState(state chess.GameState) Option {
	return func(g *Game) {
		g.start = state
	}
}

// New returns a game in the standard initial position, White to move.
func New(opts ...Option) *Game {
	g := &Game{
		start:     chess.NewGameState(),
		positions: hashing.NewRepetitionTable(),
		logger:    slog.Default().With("package", "game"),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.current = g.start
	g.positions.Add(g.current)
	g.refresh()
	return g
}

// NewFromFEN returns a game starting from the position described by fen.
func NewFromFEN(fen string, opts ...Option) (*Game, error) {
	state, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return New(append([]Option{WithState(state)}, opts...)...), nil
}

// refresh recomputes the legal move cache and the status for the current
// state.
func (g *Game) refresh() {
	g.legal = [chess.BoardSize][chess.BoardSize]chess.MoveList{}
	g.legalCount = 0
	for _, sq := range g.current.Board.Squares(g.current.ActiveColour) {
		moves := engine.LegalMoves(g.current, sq)
		g.legal[sq.File][sq.Rank] = moves
		g.legalCount += len(moves)
	}
	g.status = engine.Classify(g.current, g.legalCount)
}

// ApplyMove plays the legal move from-to for the side to move. A pawn
// reaching the last rank becomes a queen. On failure the game is unchanged
// and the error is a *errors.MoveError wrapping ErrOutOfBounds,
// ErrGameOver or ErrIllegalMove.
func (g *Game) ApplyMove(from, to chess.Position) error {
	return g.ApplyMoveWithPromotion(from, to, chess.NoKind)
}

// ApplyMoveWithPromotion is ApplyMove with an explicit promotion kind.
// NoKind means queen. Any other kind is only accepted for a promoting pawn
// move and must be a knight, bishop, rook or queen.
func (g *Game) ApplyMoveWithPromotion(from, to chess.Position, promotion chess.PieceKind) error {
	if !from.OnBoard() || !to.OnBoard() {
		return g.reject(from, to, errors.ErrOutOfBounds)
	}
	if g.status.Over() {
		return g.reject(from, to, errors.ErrGameOver)
	}

	move, ok := g.legal[from.File][from.Rank].Find(to)
	if !ok {
		return g.reject(from, to, errors.ErrIllegalMove)
	}
	if promotion != chess.NoKind && promotion != move.Promotion {
		if move.Promotion == chess.NoKind || !engine.IsPromotionKind(promotion) {
			return g.reject(from, to, errors.ErrIllegalMove)
		}
		move.Promotion = promotion
		move.After = engine.Apply(move.Before, move)
	}

	g.record(move)
	return nil
}

func (g *Game) reject(from, to chess.Position, err error) error {
	g.logger.Debug("move rejected",
		"from", from.String(),
		"to", to.String(),
		"ply", g.Ply()+1,
		"error", err)
	return &errors.MoveError{
		Err:  err,
		From: from.String(),
		To:   to.String(),
		Ply:  g.Ply() + 1,
	}
}

// record appends move to the history and makes its After state current.
func (g *Game) record(move chess.Move) {
	g.history = append(g.history, move)
	g.current = move.After
	g.positions.Add(g.current)
	g.refresh()

	g.logger.Debug("move applied",
		"move", move.String(),
		"ply", g.Ply(),
		"fen", engine.FEN(g.current))
	if g.status.Over() {
		g.logger.Info("game over",
			"status", g.status.String(),
			"ply", g.Ply())
	}
}

// Undo takes back the last move, restoring the state recorded before it.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return errors.ErrNoHistory
	}
	last := g.history[len(g.history)-1]

	g.positions.Remove(g.current)
	// Clip capacity so the next append cannot overwrite a slice returned
	// by History before the undo.
	g.history = g.history[: len(g.history)-1 : len(g.history)-1]
	g.current = last.Before
	g.refresh()

	g.logger.Debug("move undone", "move", last.String(), "ply", g.Ply())
	return nil
}

// LegalMovesFrom returns the legal moves of the piece on p. It is empty if
// p is off the board or holds no piece of the side to move.
func (g *Game) LegalMovesFrom(p chess.Position) chess.MoveList {
	if !p.OnBoard() {
		return nil
	}
	return g.legal[p.File][p.Rank]
}

// LegalMoves returns every legal move of the side to move.
func (g *Game) LegalMoves() chess.MoveList {
	moves := make(chess.MoveList, 0, g.legalCount)
	for _, sq := range g.current.Board.Squares(g.current.ActiveColour) {
		moves = append(moves, g.legal[sq.File][sq.Rank]...)
	}
	return moves
}

// LegalMoveCount returns how many legal moves the side to move has.
func (g *Game) LegalMoveCount() int {
	return g.legalCount
}

// Status returns whether the game is in progress, checkmate or stalemate.
func (g *Game) Status() chess.Status {
	return g.status
}

// Current returns the current state.
func (g *Game) Current() chess.GameState {
	return g.current
}

// Start returns the state the game started from.
func (g *Game) Start() chess.GameState {
	return g.start
}

// History returns the moves played so far, oldest first. The returned
// slice is never modified by later moves.
func (g *Game) History() []chess.Move {
	return g.history[:len(g.history):len(g.history)]
}

// Ply returns the number of moves played.
func (g *Game) Ply() int {
	return len(g.history)
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.current.ActiveColour
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return engine.InCheck(g.current, g.current.ActiveColour)
}

// FEN returns the current state in Forsyth-Edwards Notation.
func (g *Game) FEN() string {
	return engine.FEN(g.current)
}

// Repetitions returns how many times the current position has occurred,
// counting the current occurrence.
func (g *Game) Repetitions() int {
	return g.positions.Count(g.current)
}

// InsufficientMaterial reports whether neither side can deliver mate.
func (g *Game) InsufficientMaterial() bool {
	return engine.HasInsufficientMaterial(g.current.Board)
}

// States returns every state of the game, the start included.
func (g *Game) States() []chess.GameState {
	states := make([]chess.GameState, 0, len(g.history)+1)
	states = append(states, g.start)
	for _, m := range g.history {
		states = append(states, m.After)
	}
	return states
}

// DrawRules reports the draw conditions reached so far. They never change
// Status.
func (g *Game) DrawRules() engine.DrawRuleResult {
	return engine.AnalyzeDrawRules(g.States())
}
