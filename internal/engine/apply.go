package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// appliedMove records what applyMove changed on the board.
type appliedMove struct {
	mover    *chess.Piece
	captured *chess.Piece
	rookFrom *chess.Coord
	rookTo   *chess.Coord
}

// applyMove commits an already validated move: the occupant of to is killed,
// the mover is relocated and marked as moved, and for castling the rook is
// relocated too. Everything goes through the board's relocation primitives.
func applyMove(board *chess.Board, from, to chess.Coord, kind chess.MoveKind) appliedMove {
	res := appliedMove{mover: board.PieceAt(from)}

	if board.PieceAt(to) != nil {
		res.captured, _ = board.KillAt(to)
	}
	board.MovePiece(from, to)
	res.mover.HasMoved = true

	if kind.IsCastle() {
		rookFrom, rookTo := castleRookSquares(board, from, to)
		rook := board.PieceAt(rookFrom)
		board.MovePiece(rookFrom, rookTo)
		rook.HasMoved = true
		res.rookFrom, res.rookTo = &rookFrom, &rookTo
	}

	return res
}

// LeavesKingInCheck simulates the move and reports whether the mover's own
// king is attacked afterwards. The board is restored before returning.
func LeavesKingInCheck(board *chess.Board, from, to chess.Coord, kind chess.MoveKind) bool {
	mover := board.PieceAt(from)
	if mover == nil {
		return false
	}
	saved := board.SaveState()
	applyMove(board, from, to, kind)
	inCheck := IsInCheck(board, mover.Side)
	board.RestoreState(saved)
	return inCheck
}
