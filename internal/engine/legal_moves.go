package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// LegalMoves returns the destinations the piece on from may move to, in rank
// then file order. With rules.KingSafety, moves that leave the mover's king
// attacked are excluded.
func LegalMoves(board *chess.Board, from chess.Coord, rules config.Rules) []chess.Coord {
	if board.PieceAt(from) == nil {
		return nil
	}
	var moves []chess.Coord
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			to := chess.C(x, y)
			if tryMove(board, from, to, rules) {
				moves = append(moves, to)
			}
		}
	}
	return moves
}

// HasLegalMoves returns true if the given side has at least one legal move.
func HasLegalMoves(board *chess.Board, side chess.Side, rules config.Rules) bool {
	for _, p := range board.AlivePieces(side) {
		if hasLegalMovesForPiece(board, p, rules) {
			return true
		}
	}
	return false
}

// hasLegalMovesForPiece checks if a specific piece has any legal moves.
func hasLegalMovesForPiece(board *chess.Board, p *chess.Piece, rules config.Rules) bool {
	from := p.Pos
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			if tryMove(board, from, chess.C(x, y), rules) {
				return true
			}
		}
	}
	return false
}

// tryMove validates a move and, when king safety is on, checks the king is
// not left attacked.
func tryMove(board *chess.Board, from, to chess.Coord, rules config.Rules) bool {
	if from == to {
		return false
	}
	kind, err := CheckGeometry(board, from, to, rules)
	if err != nil {
		return false
	}
	return !rules.KingSafety || !LeavesKingInCheck(board, from, to, kind)
}
