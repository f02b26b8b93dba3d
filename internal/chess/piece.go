package chess

import "unicode"

// Piece is one unit on the board. Its identity is stable for the whole game:
// a captured piece is marked dead but stays addressable through the roster.
type Piece struct {
	ID       int       `json:"id"`
	Kind     PieceKind `json:"kind"`
	Side     Side      `json:"side"`
	Pos      Coord     `json:"pos"`
	Alive    bool      `json:"alive"`
	HasMoved bool      `json:"hasMoved"`
}

// NewPiece creates an alive, unmoved piece at pos.
func NewPiece(kind PieceKind, side Side, pos Coord) *Piece {
	return &Piece{Kind: kind, Side: side, Pos: pos, Alive: true}
}

// MoveTo sets the position without any check. Use Board.MovePiece for pieces
// on a board so the square index stays in step.
func (p *Piece) MoveTo(c Coord) {
	p.Pos = c
}

// Kill marks the piece as captured.
func (p *Piece) Kill() {
	p.Alive = false
}

// Revive marks the piece alive again at c.
func (p *Piece) Revive(c Coord) {
	p.Pos = c
	p.Alive = true
}

// Letter returns the piece letter, uppercase for White and lowercase for Black.
func (p *Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Side == Black {
		return byte(unicode.ToLower(rune(l)))
	}
	return l
}

// String returns e.g. "White Knight at B1".
func (p *Piece) String() string {
	return p.Side.String() + " " + p.Kind.String() + " at " + p.Pos.String()
}
