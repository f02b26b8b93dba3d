package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Sq parses a square such as "E2" and panics on malformed input.
// Use it for literal squares in tests.
func Sq(s string) chess.Coord {
	c, err := notation.ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MustGame creates a game from a placement string, or the standard
// position when placement is empty. It calls t.Fatal on error.
func MustGame(t *testing.T, placement string, opts ...engine.Option) *engine.Game {
	t.Helper()
	var (
		g   *engine.Game
		err error
	)
	if placement == "" {
		g, err = engine.NewGame(opts...)
	} else {
		g, err = engine.NewGameFromPlacement(placement, opts...)
	}
	if err != nil {
		t.Fatalf("failed to create game from %q: %v", placement, err)
	}
	return g
}

// MustMove plays from-to and fails the test if the move is rejected.
func MustMove(t *testing.T, g *engine.Game, from, to string) engine.Outcome {
	t.Helper()
	outcome, err := g.AttemptMove(Sq(from), Sq(to))
	if err != nil {
		t.Fatalf("AttemptMove(%s, %s) error = %v, want accepted", from, to, err)
	}
	return outcome
}

// MustPlay plays a sequence of "A2 A4" style moves, failing on the first
// rejection, and returns the outcome of the last one.
func MustPlay(t *testing.T, g *engine.Game, moves ...string) engine.Outcome {
	t.Helper()
	outcome := engine.OutcomeAccepted
	for _, m := range moves {
		from, to, err := notation.ParseMove(m)
		if err != nil {
			t.Fatalf("bad move %q in test: %v", m, err)
		}
		outcome, err = g.AttemptMove(from, to)
		if err != nil {
			t.Fatalf("AttemptMove(%q) at ply %d error = %v, want accepted", m, g.Ply(), err)
		}
	}
	return outcome
}

// MustReject attempts from-to and fails the test unless it is rejected. The
// rejection error is returned for further checks.
func MustReject(t *testing.T, g *engine.Game, from, to string) error {
	t.Helper()
	outcome, err := g.AttemptMove(Sq(from), Sq(to))
	if err == nil || outcome != engine.OutcomeRejected {
		t.Fatalf("AttemptMove(%s, %s) = %v, %v; want rejected", from, to, outcome, err)
	}
	return err
}
