// Package notation converts between the engine's zero-based coordinates and
// the column-letter plus row-number squares people type, such as "A2".
// Row 1 is index 0. Full algebraic notation is not supported.
package notation

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ParseSquare reads a square such as "A2" or "e4". Columns run A to Z and
// rows may have more than one digit, so boards larger than 8x8 can be
// addressed. Bounds are the board's business, not the parser's.
func ParseSquare(s string) (chess.Coord, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return chess.Coord{}, parseError(s, 0, "column letter and row number")
	}

	col := s[0]
	if col >= 'a' && col <= 'z' {
		col -= 'a' - 'A'
	}
	if col < 'A' || col > 'Z' {
		return chess.Coord{}, parseError(s, 1, "column letter")
	}

	row := 0
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return chess.Coord{}, parseError(s, i+1, "row digit")
		}
		row = row*10 + int(c-'0')
		if row > 999 {
			return chess.Coord{}, parseError(s, i+1, "row number below 1000")
		}
	}
	if row < 1 {
		return chess.Coord{}, parseError(s, 2, "row number from 1")
	}

	return chess.C(int(col-'A'), row-1), nil
}

// FormatSquare renders a coordinate the way ParseSquare reads it.
func FormatSquare(c chess.Coord) string {
	return c.String()
}

// ParseMove reads a move given as two squares: "A2A4", "A2 A4", "A2-A4" or
// "A2 -> A4".
func ParseMove(s string) (from, to chess.Coord, err error) {
	fields := splitMove(s)
	if len(fields) != 2 {
		return from, to, parseError(s, 0, "two squares")
	}
	if from, err = ParseSquare(fields[0]); err != nil {
		return from, to, err
	}
	if to, err = ParseSquare(fields[1]); err != nil {
		return from, to, err
	}
	return from, to, nil
}

// splitMove separates the two squares of a move.
func splitMove(s string) []string {
	s = strings.NewReplacer("->", " ", "-", " ").Replace(strings.TrimSpace(s))
	fields := strings.Fields(s)
	if len(fields) != 1 {
		return fields
	}

	// Glued form: the second square starts at the second letter.
	glued := fields[0]
	for i := 1; i < len(glued); i++ {
		if isLetter(glued[i]) {
			return []string{glued[:i], glued[i:]}
		}
	}
	return fields
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func parseError(input string, column int, expected string) error {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		Input:    input,
		Column:   column,
		Expected: expected,
	}
}
