package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// CheckmateRule selects how a checked side's escape is searched for.
type CheckmateRule int

const (
	// CheckmateKingEscape only considers moving the king to an adjacent square.
	// Blocking the check or capturing the attacker with another piece is not
	// considered, so some positions are declared mate early.
	CheckmateKingEscape CheckmateRule = iota
	// CheckmateFull declares mate only when the checked side has no legal move.
	CheckmateFull
)

// String returns the flag spelling of the rule.
func (r CheckmateRule) String() string {
	switch r {
	case CheckmateKingEscape:
		return "king-escape"
	case CheckmateFull:
		return "full"
	}
	return "unknown"
}

// ParseCheckmateRule converts a flag value to a CheckmateRule.
func ParseCheckmateRule(s string) (CheckmateRule, error) {
	switch s {
	case "king-escape", "":
		return CheckmateKingEscape, nil
	case "full":
		return CheckmateFull, nil
	}
	return 0, fmt.Errorf("checkmate rule %q: %w", s, errors.ErrInvalidConfig)
}

// Rules holds the engine switches.
type Rules struct {
	// KingSafety rejects moves that leave the mover's own king attacked.
	KingSafety bool

	// Checkmate selects the checkmate search.
	Checkmate CheckmateRule

	// StrictCastling also requires the square the king passes over to be
	// unattacked. Without it only the start and destination squares are checked.
	StrictCastling bool

	// DetectStalemate ends the game when the side to move is not in check
	// and has no legal move.
	DetectStalemate bool
}

// DefaultRules returns the engine defaults.
func DefaultRules() Rules {
	return Rules{
		KingSafety: true,
		Checkmate:  CheckmateKingEscape,
	}
}

// Validate checks the rule values.
func (r Rules) Validate() error {
	if r.Checkmate != CheckmateKingEscape && r.Checkmate != CheckmateFull {
		return fmt.Errorf("checkmate rule %d: %w", r.Checkmate, errors.ErrInvalidConfig)
	}
	return nil
}
