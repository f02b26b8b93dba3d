package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// castleRookSquares returns where the castling rook starts and lands for a
// king move from from to to: the corner rook on the king's side of travel
// lands on the square the king crosses.
func castleRookSquares(board *chess.Board, from, to chess.Coord) (rookFrom, rookTo chess.Coord) {
	dir := to.Sub(from).Sign()
	cornerX := 0
	if dir.X > 0 {
		cornerX = board.Width() - 1
	}
	return chess.C(cornerX, from.Y), from.Add(dir)
}

// castleGeometry validates a two-square king move as castling. The king and
// the corner rook must both be unmoved, every square between them empty, and
// neither the king's start nor its destination attacked. The square the king
// passes over is only checked with rules.StrictCastling.
func castleGeometry(board *chess.Board, king *chess.Piece, from, to chess.Coord, rules config.Rules) (chess.MoveKind, error) {
	delta := to.Sub(from)
	if delta.Y != 0 || (delta.X != 2 && delta.X != -2) {
		return chess.Quiet, illegal("king cannot move %s to %s", from, to)
	}
	if from.Y != king.Side.HomeRank(board.Height()) {
		return chess.Quiet, illegal("king castles only on its home rank")
	}
	if king.HasMoved {
		return chess.Quiet, illegal("king has already moved")
	}

	rookFrom, _ := castleRookSquares(board, from, to)
	rook := board.PieceAt(rookFrom)
	if rook == nil || rook.Kind != chess.Rook || rook.Side != king.Side {
		return chess.Quiet, illegal("no rook on %s to castle with", rookFrom)
	}
	if rook.HasMoved {
		return chess.Quiet, illegal("rook on %s has already moved", rookFrom)
	}
	if !isLineClear(board, from, rookFrom) {
		return chess.Quiet, illegal("squares between king and rook are occupied")
	}

	enemy := king.Side.Opposite()
	if IsSquareAttacked(board, from, enemy) {
		return chess.Quiet, illegal("king cannot castle out of check")
	}
	if IsSquareAttacked(board, to, enemy) {
		return chess.Quiet, illegal("king cannot castle into check")
	}
	if rules.StrictCastling && IsSquareAttacked(board, from.Add(delta.Sign()), enemy) {
		return chess.Quiet, illegal("king cannot castle through check")
	}

	if delta.X > 0 {
		return chess.CastleKingside, nil
	}
	return chess.CastleQueenside, nil
}
