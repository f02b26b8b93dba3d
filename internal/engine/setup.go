package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// StandardPlacement describes the standard starting position.
const StandardPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq"

// Setup is a parsed custom arrangement.
type Setup struct {
	Width  int
	Height int
	Pieces []*chess.Piece
	ToMove chess.Side
}

// Board builds a board holding the setup's pieces.
func (s *Setup) Board() (*chess.Board, error) {
	return chess.NewBoard(s.Width, s.Height, s.Pieces)
}

// ParsePlacement reads a placement string in the style of a FEN piece
// placement field: ranks from the top separated by '/', numbers for runs of
// empty squares and KQBNRP letters, uppercase for White. Two optional fields
// follow: the side to move ("w" or "b") and castling availability ("KQkq" or
// "-"). When castling availability is given, kings and corner rooks without a
// matching right are marked as moved. Width is the length of a rank and
// height the number of ranks, so boards other than 8x8 can be described.
func ParsePlacement(placement string) (*Setup, error) {
	parts := strings.Fields(placement)
	if len(parts) < 1 {
		return nil, setupError(placement, 0, "piece placement", "empty placement string")
	}

	setup := &Setup{ToMove: chess.White}
	if err := parsePiecePositions(setup, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(setup, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(setup, parts); err != nil {
		return nil, err
	}
	if len(parts) > 3 {
		return nil, setupError(placement, 0, "at most three fields", "trailing fields")
	}
	return setup, nil
}

// setupError builds a ParseError wrapping ErrInvalidSetup.
func setupError(input string, column int, expected, detail string) error {
	return &errors.ParseError{
		Err:      fmt.Errorf("%s: %w", detail, errors.ErrInvalidSetup),
		Input:    input,
		Column:   column,
		Expected: expected,
	}
}

func rankTooWide(positions string, column, y int) error {
	return setupError(positions, column, fmt.Sprintf("at most %d files", chess.MaxFiles), fmt.Sprintf("rank %d too wide", y+1))
}

// parsePiecePositions parses the piece placement field.
func parsePiecePositions(setup *Setup, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) > chess.MaxRanks {
		return setupError(positions, 0, fmt.Sprintf("at most %d ranks", chess.MaxRanks), fmt.Sprintf("%d ranks", len(ranks)))
	}
	setup.Height = len(ranks)
	setup.Width = -1
	column := 0

	for i, rankText := range ranks {
		y := setup.Height - 1 - i
		x := 0
		run := 0
		for _, c := range rankText {
			column++
			switch {
			case c >= '0' && c <= '9':
				run = run*10 + int(c-'0')
				if x+run > chess.MaxFiles {
					return rankTooWide(positions, column, y)
				}
			default:
				x += run
				run = 0
				kind, ok := chess.KindFromLetter(byte(c))
				if !ok || c > unicode.MaxASCII {
					return setupError(positions, column, "piece letter or digit", fmt.Sprintf("invalid piece character %q", c))
				}
				side := chess.White
				if unicode.IsLower(c) {
					side = chess.Black
				}
				if x >= chess.MaxFiles {
					return rankTooWide(positions, column, y)
				}
				setup.Pieces = append(setup.Pieces, chess.NewPiece(kind, side, chess.C(x, y)))
				x++
			}
		}
		x += run
		column++ // separator

		if setup.Width == -1 {
			setup.Width = x
		} else if x != setup.Width {
			return setupError(positions, column-1, fmt.Sprintf("%d files", setup.Width), fmt.Sprintf("rank %d has %d files", y+1, x))
		}
	}

	if setup.Width <= 0 {
		return setupError(positions, 0, "at least one file", "empty rank")
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(setup *Setup, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		setup.ToMove = chess.White
	case "b":
		setup.ToMove = chess.Black
	default:
		return setupError(parts[1], 1, "w or b", "invalid side to move")
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Without the
// field every piece keeps its unmoved state.
func parseCastlingRights(setup *Setup, parts []string) error {
	if len(parts) < 3 {
		return nil
	}
	for _, p := range setup.Pieces {
		if p.Kind == chess.King || p.Kind == chess.Rook {
			p.HasMoved = true
		}
	}
	if parts[2] == "-" {
		return nil
	}

	for i, c := range parts[2] {
		side := chess.White
		if unicode.IsLower(c) {
			side = chess.Black
		}
		cornerX := 0
		switch unicode.ToUpper(c) {
		case 'K':
			cornerX = setup.Width - 1
		case 'Q':
		default:
			return setupError(parts[2], i+1, "K, Q, k, q or -", "invalid castling right")
		}
		home := side.HomeRank(setup.Height)
		for _, p := range setup.Pieces {
			if p.Side != side || p.Pos.Y != home {
				continue
			}
			if p.Kind == chess.King || (p.Kind == chess.Rook && p.Pos.X == cornerX) {
				p.HasMoved = false
			}
		}
	}
	return nil
}

// Placement converts a board to a placement string, the inverse of
// ParsePlacement.
func Placement(board *chess.Board, toMove chess.Side) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for y := board.Height() - 1; y >= 0; y-- {
		emptyCount := 0
		for x := 0; x < board.Width(); x++ {
			p := board.PieceAt(chess.C(x, y))
			if p == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				fmt.Fprintf(sb, "%d", emptyCount)
				emptyCount = 0
			}
			sb.WriteByte(p.Letter())
		}
		if emptyCount > 0 {
			fmt.Fprintf(sb, "%d", emptyCount)
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, right := range []struct {
			letter  rune
			cornerX int
		}{{'K', board.Width() - 1}, {'Q', 0}} {
			if canStillCastle(board, side, right.cornerX) {
				letter := right.letter
				if side == chess.Black {
					letter = unicode.ToLower(letter)
				}
				sb.WriteRune(letter)
				hasCastling = true
			}
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// canStillCastle reports whether side keeps an unmoved king on its home rank
// and an unmoved rook in the given corner.
func canStillCastle(board *chess.Board, side chess.Side, cornerX int) bool {
	king := board.King(side)
	home := side.HomeRank(board.Height())
	if king == nil || king.HasMoved || king.Pos.Y != home {
		return false
	}
	rook := board.PieceAt(chess.C(cornerX, home))
	return rook != nil && rook.Kind == chess.Rook && rook.Side == side && !rook.HasMoved
}
