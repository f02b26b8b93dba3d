package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// mustBoard builds a board from a placement string.
func mustBoard(tb testing.TB, placement string) *chess.Board {
	tb.Helper()
	setup, err := ParsePlacement(placement)
	if err != nil {
		tb.Fatalf("ParsePlacement(%q) error: %v", placement, err)
	}
	board, err := setup.Board()
	if err != nil {
		tb.Fatalf("Board() for %q error: %v", placement, err)
	}
	return board
}

// sq parses a square name and panics on malformed input.
func sq(s string) chess.Coord {
	c, err := notation.ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return c
}
