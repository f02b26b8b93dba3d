// Package engine provides chess move validation, attack detection and the
// turn controller that applies moves to a board.
package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// illegal builds an ErrIllegalGeometry error with a reason.
func illegal(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrIllegalGeometry)
}

// IsGeometricallyValid reports whether the piece on from may trace a move to
// to under the default rules, ignoring whether the move exposes its own king.
func IsGeometricallyValid(board *chess.Board, from, to chess.Coord) bool {
	_, err := CheckGeometry(board, from, to, config.DefaultRules())
	return err == nil
}

// CheckGeometry validates the shape of a move for the piece on from and
// classifies it. Own-king safety is not considered here.
func CheckGeometry(board *chess.Board, from, to chess.Coord, rules config.Rules) (chess.MoveKind, error) {
	piece := board.PieceAt(from)
	if piece == nil {
		return chess.Quiet, fmt.Errorf("no piece on %s: %w", from, errors.ErrEmptySquare)
	}
	if !board.InBounds(to) {
		return chess.Quiet, fmt.Errorf("destination %s: %w", to, errors.ErrOutOfBounds)
	}
	if from == to {
		return chess.Quiet, errors.ErrNoOpMove
	}

	target := board.PieceAt(to)
	if target != nil && target.Side == piece.Side {
		return chess.Quiet, illegal("%s holds a %s piece", to, piece.Side)
	}
	kind := chess.Quiet
	if target != nil {
		kind = chess.Capture
	}

	if piece.Kind == chess.Pawn {
		return pawnGeometry(board, piece, from, to)
	}
	if !canPieceMove(board, piece.Kind, from, to) {
		if piece.Kind == chess.King {
			return castleGeometry(board, piece, from, to, rules)
		}
		return chess.Quiet, illegal("%s cannot move %s to %s", piece.Kind, from, to)
	}
	return kind, nil
}

// canPieceMove checks the shape and path of a non-pawn move. Castling is
// handled separately.
func canPieceMove(board *chess.Board, kind chess.PieceKind, from, to chess.Coord) bool {
	d := to.Sub(from).Abs()

	switch kind {
	case chess.Knight:
		return (d.X == 1 && d.Y == 2) || (d.X == 2 && d.Y == 1)

	case chess.Bishop:
		if d.X != d.Y {
			return false
		}
		return isLineClear(board, from, to)

	case chess.Rook:
		if d.X != 0 && d.Y != 0 {
			return false
		}
		return isLineClear(board, from, to)

	case chess.Queen:
		if d.X == d.Y || d.X == 0 || d.Y == 0 {
			return isLineClear(board, from, to)
		}
		return false

	case chess.King:
		return d.Chebyshev() == 1
	}

	return false
}
