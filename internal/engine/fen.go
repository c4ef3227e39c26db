package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a game state from a FEN string. Only the piece placement
// field is required; missing trailing fields default to "w - - 0 1".
// Malformed input is reported as a *errors.ParseError wrapping
// errors.ErrInvalidFEN.
func ParseFEN(fen string) (chess.GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.GameState{}, fenError(fen, "placement", "piece placement", "empty string")
	}
	if len(parts) > 6 {
		return chess.GameState{}, fenError(fen, "", "at most 6 fields", strconv.Itoa(len(parts)))
	}

	state := chess.GameState{
		ActiveColour:   chess.White,
		EnPassant:      chess.NoEnPassant(),
		FullmoveNumber: 1,
	}

	if err := parsePiecePositions(&state, fen, parts[0]); err != nil {
		return chess.GameState{}, err
	}
	if err := parseSideToMove(&state, fen, parts); err != nil {
		return chess.GameState{}, err
	}
	if err := parseCastlingRights(&state, fen, parts); err != nil {
		return chess.GameState{}, err
	}
	if err := parseEnPassant(&state, fen, parts); err != nil {
		return chess.GameState{}, err
	}
	if err := parseClocks(&state, fen, parts); err != nil {
		return chess.GameState{}, err
	}
	return state, nil
}

// MustParseFEN is like ParseFEN but panics on error. It is meant for
// package-level fixtures built from constant strings.
func MustParseFEN(fen string) chess.GameState {
	state, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return state
}

func fenError(fen, field, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    fen,
		Field:    field,
		Expected: expected,
		Got:      got,
	}
}

// parsePiecePositions parses the piece placement field, rank 8 first.
func parsePiecePositions(state *chess.GameState, fen, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(fen, "placement", "8 ranks", strconv.Itoa(len(ranks)))
	}

	for i, row := range ranks {
		rank := chess.LastRank - i
		file := chess.FirstFile
		for j := 0; j < len(row); j++ {
			c := row[j]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				kind := chess.KindFromLetter(c)
				if kind == chess.NoKind {
					return fenError(fen, "placement", "piece letter or digit", string(c))
				}
				if file > chess.LastFile {
					return fenError(fen, "placement", "8 squares in rank "+strconv.Itoa(rank+1), "more")
				}
				colour := chess.White
				if c >= 'a' && c <= 'z' {
					colour = chess.Black
				}
				state.Board.Set(chess.Pos(file, rank), chess.Piece{Colour: colour, Kind: kind})
				file++
			}
		}
		if file != chess.BoardSize {
			return fenError(fen, "placement", "8 squares in rank "+strconv.Itoa(rank+1), strconv.Itoa(file))
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(state *chess.GameState, fen string, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		state.ActiveColour = chess.White
	case "b":
		state.ActiveColour = chess.Black
	default:
		return fenError(fen, "side to move", "w or b", parts[1])
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(state *chess.GameState, fen string, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			state.Castling.WhiteKingside = true
		case 'Q':
			state.Castling.WhiteQueenside = true
		case 'k':
			state.Castling.BlackKingside = true
		case 'q':
			state.Castling.BlackQueenside = true
		default:
			return fenError(fen, "castling", "KQkq or -", string(c))
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The square's
// rank tells which colour just advanced two squares.
func parseEnPassant(state *chess.GameState, fen string, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParsePosition(parts[3])
	if err != nil {
		return fenError(fen, "en passant", "square or -", parts[3])
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if sq.Rank == chess.PawnStartRank(colour)+chess.ColourOffset(colour) {
			state.EnPassant = chess.EnPassantFor(colour, sq.File)
			return nil
		}
	}
	return fenError(fen, "en passant", "square on rank 3 or 6", parts[3])
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(state *chess.GameState, fen string, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fenError(fen, "halfmove clock", "non-negative integer", parts[4])
		}
		state.HalfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fenError(fen, "fullmove number", "positive integer", parts[5])
		}
		state.FullmoveNumber = n
	}
	return nil
}

// FEN converts a game state to a FEN string.
func FEN(state chess.GameState) string {
	var sb strings.Builder

	writePiecePositions(&sb, state.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, state.ActiveColour)
	sb.WriteByte(' ')
	sb.WriteString(state.Castling.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, state.EnPassant)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", state.HalfmoveClock, state.FullmoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board chess.Board) {
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		emptyCount := 0
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			piece := board.Get(chess.Pos(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, colour chess.Colour) {
	if colour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, ep chess.EnPassantTarget) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if sq, ok := ep.Square(colour); ok {
			sb.WriteString(sq.String())
			return
		}
	}
	sb.WriteByte('-')
}
