package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnGeometry validates a pawn move: one step forward onto an empty square,
// two steps from the pawn rank when unmoved and both squares are empty, or one
// step diagonally forward onto an enemy piece. En passant and promotion are
// not implemented.
func pawnGeometry(board *chess.Board, pawn *chess.Piece, from, to chess.Coord) (chess.MoveKind, error) {
	fwd := pawn.Side.Forward()
	delta := to.Sub(from)
	target := board.PieceAt(to)

	switch {
	case delta.X == 0 && delta.Y == fwd:
		if target != nil {
			return chess.Quiet, illegal("pawn blocked on %s", to)
		}
		return chess.Quiet, nil

	case delta.X == 0 && delta.Y == 2*fwd:
		if pawn.HasMoved || from.Y != pawn.Side.PawnRank(board.Height()) {
			return chess.Quiet, illegal("pawn on %s may not advance two squares", from)
		}
		if target != nil || !IsPathClear(board, from, chess.C(0, fwd), 2) {
			return chess.Quiet, illegal("pawn blocked between %s and %s", from, to)
		}
		return chess.DoubleStep, nil

	case (delta.X == 1 || delta.X == -1) && delta.Y == fwd:
		if target == nil {
			return chess.Quiet, illegal("pawn captures diagonally only onto an enemy piece")
		}
		return chess.Capture, nil
	}

	return chess.Quiet, illegal("pawn cannot move %s to %s", from, to)
}
