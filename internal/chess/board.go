package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Board holds the pieces of one game and the square index that locates them.
//
// The roster is the fixed list of every piece created for the game, dead or
// alive, in ID order. The square index is the only occupancy store: every
// alive piece appears at its position and nowhere else, dead pieces appear in
// no square. All relocations go through MovePiece, KillAt and Revive to keep
// that true.
type Board struct {
	width  int
	height int

	roster  []*Piece
	squares []*Piece
}

// NewBoard creates a board of the given size holding copies of pieces.
// Only structural problems are rejected: alive pieces off the board or two
// alive pieces on one square. No chess legality check is made.
func NewBoard(width, height int, pieces []*Piece) (*Board, error) {
	if width <= 0 || height <= 0 || width > MaxFiles || height > MaxRanks {
		return nil, fmt.Errorf("board size %dx%d: %w", width, height, errors.ErrInvalidSetup)
	}
	b := &Board{
		width:   width,
		height:  height,
		roster:  make([]*Piece, len(pieces)),
		squares: make([]*Piece, width*height),
	}
	for i, src := range pieces {
		p := *src
		p.ID = i
		b.roster[i] = &p
		if !p.Alive {
			continue
		}
		if !b.InBounds(p.Pos) {
			return nil, fmt.Errorf("%s off the board: %w", p.String(), errors.ErrInvalidSetup)
		}
		if other := b.squares[b.index(p.Pos)]; other != nil {
			return nil, fmt.Errorf("%s and %s share a square: %w", other.String(), p.String(), errors.ErrInvalidSetup)
		}
		b.squares[b.index(p.Pos)] = &p
	}
	return b, nil
}

// StandardPieces returns the standard starting arrangement for an 8x8 board.
// White occupies ranks 0 and 1.
func StandardPieces() []*Piece {
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	// Roster order: royalty, minor pieces, rooks, then pawns, White first.
	order := []int{4, 3, 2, 5, 1, 6, 0, 7}

	pieces := make([]*Piece, 0, 4*BoardSize)
	for _, side := range []Side{White, Black} {
		home := side.HomeRank(BoardSize)
		for _, col := range order {
			pieces = append(pieces, NewPiece(backRank[col], side, C(col, home)))
		}
		for col := 0; col < BoardSize; col++ {
			pieces = append(pieces, NewPiece(Pawn, side, C(col, side.PawnRank(BoardSize))))
		}
	}
	return pieces
}

// NewStandardBoard creates an 8x8 board with the standard starting position.
func NewStandardBoard() *Board {
	b, _ := NewBoard(BoardSize, BoardSize, StandardPieces())
	return b
}

// Width returns the number of files.
func (b *Board) Width() int { return b.width }

// Height returns the number of ranks.
func (b *Board) Height() int { return b.height }

// InBounds reports whether 0 <= x < width and 0 <= y < height.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < b.width && c.Y < b.height
}

func (b *Board) index(c Coord) int {
	return c.Y*b.width + c.X
}

// PieceAt returns the piece on c, or nil for an empty or out-of-bounds square.
func (b *Board) PieceAt(c Coord) *Piece {
	if !b.InBounds(c) {
		return nil
	}
	return b.squares[b.index(c)]
}

// IsEmpty reports whether c is an in-bounds square with no piece.
func (b *Board) IsEmpty(c Coord) bool {
	return b.InBounds(c) && b.squares[b.index(c)] == nil
}

// MovePiece relocates the piece on from to to without any legality check.
// When to is off the board the piece leaves the index but its Pos is still
// updated; callers wanting capture semantics must use KillAt. Any piece
// already on to is not touched, so captures must be made first.
func (b *Board) MovePiece(from, to Coord) {
	p := b.PieceAt(from)
	if p == nil {
		return
	}
	b.squares[b.index(from)] = nil
	p.MoveTo(to)
	if b.InBounds(to) {
		b.squares[b.index(to)] = p
	}
}

// KillAt removes the piece on c from the index and marks it dead.
func (b *Board) KillAt(c Coord) (*Piece, error) {
	p := b.PieceAt(c)
	if p == nil {
		return nil, fmt.Errorf("kill at %s: %w", c, errors.ErrEmptySquare)
	}
	b.squares[b.index(c)] = nil
	p.Kill()
	return p, nil
}

// Revive puts a dead roster piece back on the empty square c.
func (b *Board) Revive(p *Piece, c Coord) error {
	if p == nil || p.ID < 0 || p.ID >= len(b.roster) || b.roster[p.ID] != p {
		return fmt.Errorf("revive: piece not on this board: %w", errors.ErrInvalidSetup)
	}
	if p.Alive {
		return fmt.Errorf("revive %s: piece is alive: %w", p.String(), errors.ErrInvalidSetup)
	}
	if !b.InBounds(c) {
		return fmt.Errorf("revive at %s: %w", c, errors.ErrOutOfBounds)
	}
	if b.squares[b.index(c)] != nil {
		return fmt.Errorf("revive at %s: square occupied: %w", c, errors.ErrInvalidSetup)
	}
	p.Revive(c)
	b.squares[b.index(c)] = p
	return nil
}

// Pieces returns the full roster, dead pieces included, in ID order.
func (b *Board) Pieces() []*Piece {
	return b.roster
}

// AlivePieces returns the alive pieces of side in roster order.
func (b *Board) AlivePieces(side Side) []*Piece {
	var out []*Piece
	for _, p := range b.roster {
		if p.Alive && p.Side == side {
			out = append(out, p)
		}
	}
	return out
}

// FindPieces returns the alive pieces of the given kind and side, scanning the
// roster so the answer follows captures and revivals.
func (b *Board) FindPieces(kind PieceKind, side Side) []*Piece {
	var out []*Piece
	for _, p := range b.roster {
		if p.Alive && p.Kind == kind && p.Side == side {
			out = append(out, p)
		}
	}
	return out
}

// King returns the first alive king of side, or nil if it has none.
func (b *Board) King(side Side) *Piece {
	for _, p := range b.roster {
		if p.Alive && p.Kind == King && p.Side == side {
			return p
		}
	}
	return nil
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := &Board{
		width:   b.width,
		height:  b.height,
		roster:  make([]*Piece, len(b.roster)),
		squares: make([]*Piece, len(b.squares)),
	}
	for i, p := range b.roster {
		cp := *p
		nb.roster[i] = &cp
		if cp.Alive && nb.InBounds(cp.Pos) {
			nb.squares[nb.index(cp.Pos)] = &cp
		}
	}
	return nb
}

// pieceState is the mutable part of a piece.
type pieceState struct {
	Pos      Coord
	Alive    bool
	HasMoved bool
}

// BoardState captures all mutable board state for save/restore operations.
// This is cheaper than Copy() when you need to temporarily modify the board
// and then restore it (e.g., probing whether a move exposes the king).
type BoardState struct {
	pieces []pieceState
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	s := BoardState{pieces: make([]pieceState, len(b.roster))}
	for i, p := range b.roster {
		s.pieces[i] = pieceState{Pos: p.Pos, Alive: p.Alive, HasMoved: p.HasMoved}
	}
	return s
}

// RestoreState restores the board to a previously saved state and rebuilds
// the square index from it.
func (b *Board) RestoreState(s BoardState) {
	for i := range b.squares {
		b.squares[i] = nil
	}
	for i, p := range b.roster {
		if i >= len(s.pieces) {
			break
		}
		ps := s.pieces[i]
		p.Pos, p.Alive, p.HasMoved = ps.Pos, ps.Alive, ps.HasMoved
		if p.Alive && b.InBounds(p.Pos) {
			b.squares[b.index(p.Pos)] = p
		}
	}
}
