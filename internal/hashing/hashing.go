// Package hashing computes Zobrist keys for game states and counts how often
// a position recurs.
package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Fixed seed so keys are stable across runs.
const zobristSeed = 0x9d39247e33776d41

var (
	pieceKeys     [chess.NumColours][chess.NumPieceKinds][chess.BoardSize][chess.BoardSize]uint64
	castlingKeys  [4]uint64
	enPassantKeys [chess.BoardSize]uint64
	blackToMove   uint64
)

func init() {
	rng := rand.New(rand.NewPCG(zobristSeed, zobristSeed>>1))
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for f := range pieceKeys[c][k] {
				for r := range pieceKeys[c][k][f] {
					pieceKeys[c][k][f][r] = rng.Uint64()
				}
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = rng.Uint64()
	}
	blackToMove = rng.Uint64()
}

// Zobrist returns the Zobrist key of state. Two states get the same key when
// they have the same pieces, side to move, castling rights and capturable
// en-passant file. The clocks are ignored. An en-passant file only counts
// when a pawn of the side to move stands next to the double-advanced pawn.
func Zobrist(state chess.GameState) uint64 {
	var hash uint64

	for f := 0; f < chess.BoardSize; f++ {
		for r := 0; r < chess.BoardSize; r++ {
			piece := state.Board[f][r]
			if !piece.IsEmpty() {
				hash ^= pieceKeys[piece.Colour][piece.Kind][f][r]
			}
		}
	}

	rights := [4]bool{
		state.Castling.WhiteKingside, state.Castling.WhiteQueenside,
		state.Castling.BlackKingside, state.Castling.BlackQueenside,
	}
	for i, ok := range rights {
		if ok {
			hash ^= castlingKeys[i]
		}
	}

	if file, ok := capturableFile(state); ok {
		hash ^= enPassantKeys[file]
	}

	if state.ActiveColour == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// capturableFile returns the en-passant file when the side to move has a
// pawn beside the pawn that just advanced two squares.
func capturableFile(state chess.GameState) (int, bool) {
	mover := state.ActiveColour
	opponent := mover.Opposite()
	target, ok := state.EnPassant.Square(opponent)
	if !ok {
		return 0, false
	}
	advanced := target.Offset(0, chess.ColourOffset(opponent))
	pawn := chess.Piece{Colour: mover, Kind: chess.Pawn}
	if state.Board.Get(advanced.Offset(-1, 0)) == pawn || state.Board.Get(advanced.Offset(1, 0)) == pawn {
		return target.File, true
	}
	return 0, false
}

// RepetitionTable counts occurrences of positions by Zobrist key.
type RepetitionTable struct {
	counts map[uint64]int
	// maxCount is the highest count any key has reached
	maxCount int
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Add records one occurrence of state and returns how many times it has
// now been seen.
func (t *RepetitionTable) Add(state chess.GameState) int {
	key := Zobrist(state)
	t.counts[key]++
	n := t.counts[key]
	if n > t.maxCount {
		t.maxCount = n
	}
	return n
}

// Remove forgets one occurrence of state. Used when a move is taken back.
func (t *RepetitionTable) Remove(state chess.GameState) {
	key := Zobrist(state)
	switch t.counts[key] {
	case 0:
		return
	case 1:
		delete(t.counts, key)
	default:
		t.counts[key]--
	}
	t.maxCount = 0
	for _, n := range t.counts {
		if n > t.maxCount {
			t.maxCount = n
		}
	}
}

// Count returns how many times state has been recorded.
func (t *RepetitionTable) Count(state chess.GameState) int {
	return t.counts[Zobrist(state)]
}

// MaxCount returns the highest occurrence count of any recorded position.
func (t *RepetitionTable) MaxCount() int {
	return t.maxCount
}

// UniqueCount returns the number of distinct positions recorded.
func (t *RepetitionTable) UniqueCount() int {
	return len(t.counts)
}
