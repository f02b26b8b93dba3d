// Package chess provides the core chess types: coordinates, sides, pieces and the board.
package chess

// Side represents the colour of a piece or player.
type Side int

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// MarshalText encodes the side by name.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Forward returns the rank direction pawns of this side advance in:
// +1 for White, -1 for Black.
func (s Side) Forward() int {
	if s == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank index of the side's back rank on a board of the given height.
func (s Side) HomeRank(height int) int {
	if s == White {
		return 0
	}
	return height - 1
}

// PawnRank returns the rank index pawns of this side start on.
func (s Side) PawnRank(height int) int {
	if s == White {
		return 1
	}
	return height - 2
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	King PieceKind = iota
	Queen
	Bishop
	Knight
	Rook
	Pawn
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"King", "Queen", "Bishop", "Knight", "Rook", "Pawn"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// MarshalText encodes the piece kind by name.
func (k PieceKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{'K', 'Q', 'B', 'N', 'R', 'P'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter in either case to a piece kind.
func KindFromLetter(c byte) (PieceKind, bool) {
	switch c {
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'B', 'b':
		return Bishop, true
	case 'N', 'n':
		return Knight, true
	case 'R', 'r':
		return Rook, true
	case 'P', 'p':
		return Pawn, true
	}
	return 0, false
}

// Constants for the standard board and the largest board squares can name
// (columns A to Z, rows 1 to 999).
const (
	BoardSize = 8
	MaxFiles  = 26
	MaxRanks  = 999
)

// MoveKind classifies a geometrically valid move.
type MoveKind int

const (
	Quiet MoveKind = iota
	Capture
	DoubleStep
	CastleKingside
	CastleQueenside
)

// String returns the string representation of a move kind.
func (m MoveKind) String() string {
	switch m {
	case Quiet:
		return "quiet"
	case Capture:
		return "capture"
	case DoubleStep:
		return "double-step"
	case CastleKingside:
		return "castle-kingside"
	case CastleQueenside:
		return "castle-queenside"
	}
	return "unknown"
}

// MarshalText encodes the move kind by name.
func (m MoveKind) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// IsCastle reports whether the move kind is either castle.
func (m MoveKind) IsCastle() bool {
	return m == CastleKingside || m == CastleQueenside
}

// CheckStatus indicates whether a move gives check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)

// MarshalText encodes the check status as "", "check" or "checkmate".
func (c CheckStatus) MarshalText() ([]byte, error) {
	switch c {
	case Check:
		return []byte("check"), nil
	case Checkmate:
		return []byte("checkmate"), nil
	}
	return []byte(""), nil
}

// MoveRecord is one accepted ply in a game's history.
type MoveRecord struct {
	Ply      int        `json:"ply"`
	Side     Side       `json:"side"`
	Piece    PieceKind  `json:"piece"`
	PieceID  int        `json:"pieceId"`
	From     Coord      `json:"from"`
	To       Coord      `json:"to"`
	Kind     MoveKind   `json:"kind"`
	Captured *PieceKind `json:"captured,omitempty"`
	// Set for castling: the rook that moved with the king.
	RookFrom *Coord      `json:"rookFrom,omitempty"`
	RookTo   *Coord      `json:"rookTo,omitempty"`
	Check    CheckStatus `json:"check"`
}

// String returns a compact long-form rendering such as "KE1-G1" or "PE4xD5+".
func (m MoveRecord) String() string {
	sep := "-"
	if m.Captured != nil {
		sep = "x"
	}
	s := string(m.Piece.Letter()) + m.From.String() + sep + m.To.String()
	switch m.Check {
	case Check:
		s += "+"
	case Checkmate:
		s += "#"
	}
	return s
}
