package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given side's king is attacked.
// A side without a king is never in check.
func IsInCheck(board *chess.Board, side chess.Side) bool {
	king := board.King(side)
	if king == nil {
		return false
	}
	return IsSquareAttacked(board, king.Pos, side.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by the given side.
//
// Sliding pieces, kings and pawns are found by casting the eight rays outward
// from the square and looking at the first piece each ray meets. Knights jump,
// so they are found by scanning the attacker's knights instead.
func IsSquareAttacked(board *chess.Board, sq chess.Coord, by chess.Side) bool {
	for _, dir := range chess.DiagonalDirs {
		if rayHitsAttacker(board, sq, dir, by, true) {
			return true
		}
	}
	for _, dir := range chess.OrthogonalDirs {
		if rayHitsAttacker(board, sq, dir, by, false) {
			return true
		}
	}

	for _, knight := range board.FindPieces(chess.Knight, by) {
		d := sq.Sub(knight.Pos).Abs()
		if (d.X == 1 && d.Y == 2) || (d.X == 2 && d.Y == 1) {
			return true
		}
	}

	return false
}

// rayHitsAttacker walks from sq along dir and reports whether the first piece
// met belongs to by and can strike back along the ray.
func rayHitsAttacker(board *chess.Board, sq, dir chess.Coord, by chess.Side, diagonal bool) bool {
	for dist := 1; ; dist++ {
		c := sq.Add(dir.Scale(dist))
		if !board.InBounds(c) {
			return false
		}
		p := board.PieceAt(c)
		if p == nil {
			continue
		}
		if p.Side != by {
			return false // Blocked
		}
		switch p.Kind {
		case chess.Queen:
			return true
		case chess.Bishop:
			return diagonal
		case chess.Rook:
			return !diagonal
		case chess.King:
			return dist == 1
		case chess.Pawn:
			// The pawn sits one step behind sq from its own point of view.
			return diagonal && dist == 1 && dir.Y == -by.Forward()
		}
		return false
	}
}

// KingCanEscape reports whether the side's king has an adjacent square to
// step to where it would not be attacked. Squares held by its own pieces are
// skipped; enemy-held squares count as captures. Each step is simulated so the
// king no longer shields the squares behind it.
func KingCanEscape(board *chess.Board, side chess.Side) bool {
	king := board.King(side)
	if king == nil {
		return false
	}
	from := king.Pos
	enemy := side.Opposite()

	for _, dir := range chess.KingDirs {
		to := from.Add(dir)
		if !board.InBounds(to) {
			continue
		}
		if occ := board.PieceAt(to); occ != nil && occ.Side == side {
			continue
		}

		saved := board.SaveState()
		if board.PieceAt(to) != nil {
			board.KillAt(to) //nolint:errcheck // square checked above
		}
		board.MovePiece(from, to)
		attacked := IsSquareAttacked(board, to, enemy)
		board.RestoreState(saved)

		if !attacked {
			return true
		}
	}
	return false
}
