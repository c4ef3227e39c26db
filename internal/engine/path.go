package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isPathClear reports whether every square strictly between from and to is
// empty. from and to must share a rank, a file or a diagonal; any other
// pair is reported as blocked.
func isPathClear(board chess.Board, from, to chess.Position) bool {
	df := to.File - from.File
	dr := to.Rank - from.Rank
	if df != 0 && dr != 0 && abs(df) != abs(dr) {
		return false
	}

	stepF, stepR := sign(df), sign(dr)
	sq := from.Offset(stepF, stepR)
	for sq != to {
		if !board.Get(sq).IsEmpty() {
			return false
		}
		sq = sq.Offset(stepF, stepR)
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0 or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
