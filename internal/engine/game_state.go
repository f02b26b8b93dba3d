package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// IsCheckmate returns true if side is in check and cannot get out of it
// under the configured checkmate rule.
func IsCheckmate(board *chess.Board, side chess.Side, rules config.Rules) bool {
	return IsInCheck(board, side) && !canAnswerCheck(board, side, rules)
}

// IsStalemate returns true if side is not in check and has no legal move.
func IsStalemate(board *chess.Board, side chess.Side, rules config.Rules) bool {
	rules.KingSafety = true
	return !IsInCheck(board, side) && !HasLegalMoves(board, side, rules)
}

// canAnswerCheck looks for a way out of check. CheckmateKingEscape only
// tries king steps; CheckmateFull accepts any legal move.
func canAnswerCheck(board *chess.Board, side chess.Side, rules config.Rules) bool {
	if rules.Checkmate == config.CheckmateFull {
		rules.KingSafety = true
		return HasLegalMoves(board, side, rules)
	}
	return KingCanEscape(board, side)
}
