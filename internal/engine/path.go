package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsPathClear walks count unit steps from start and reports whether every
// intermediate square is empty. start itself and the final square are not
// examined; the caller decides what may stand on the destination. A count of
// one or less has no intermediate squares and is trivially clear.
func IsPathClear(board *chess.Board, start, step chess.Coord, count int) bool {
	if count <= 1 {
		return true
	}
	if step.IsZero() {
		return false
	}
	for i := 1; i < count; i++ {
		if !board.IsEmpty(start.Add(step.Scale(i))) {
			return false
		}
	}
	return true
}

// isLineClear checks the squares strictly between from and to along a rank,
// file or diagonal. from and to must be aligned.
func isLineClear(board *chess.Board, from, to chess.Coord) bool {
	delta := to.Sub(from)
	return IsPathClear(board, from, delta.Sign(), delta.Chebyshev())
}
