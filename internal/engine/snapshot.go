package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// PieceView is a read-only copy of a piece.
type PieceView struct {
	ID   int             `json:"id"`
	Kind chess.PieceKind `json:"kind"`
	Side chess.Side      `json:"side"`
	Pos  chess.Coord     `json:"pos"`
}

// Snapshot is a read-only view of a game for rendering and serialisation.
type Snapshot struct {
	GameID   string            `json:"gameId"`
	Width    int               `json:"width"`
	Height   int               `json:"height"`
	ToMove   chess.Side        `json:"toMove"`
	Ply      int               `json:"ply"`
	Check    bool              `json:"check"`
	Status   Status            `json:"status"`
	Winner   *chess.Side       `json:"winner,omitempty"`
	Pieces   []PieceView       `json:"pieces"`
	Captured []PieceView       `json:"captured"`
	LastMove *chess.MoveRecord `json:"lastMove,omitempty"`
}

// Snapshot copies the current state. Alive and captured pieces are listed in
// roster order.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		GameID:   g.id,
		Width:    g.board.Width(),
		Height:   g.board.Height(),
		ToMove:   g.toMove,
		Ply:      g.ply,
		Check:    g.InCheck(),
		Status:   g.status,
		Pieces:   []PieceView{},
		Captured: []PieceView{},
	}
	if g.winner != nil {
		w := *g.winner
		s.Winner = &w
	}
	for _, p := range g.board.Pieces() {
		v := PieceView{ID: p.ID, Kind: p.Kind, Side: p.Side, Pos: p.Pos}
		if p.Alive {
			s.Pieces = append(s.Pieces, v)
		} else {
			s.Captured = append(s.Captured, v)
		}
	}
	if n := len(g.history); n > 0 {
		last := g.history[n-1]
		s.LastMove = &last
	}
	return s
}

// PieceAt returns the alive piece on c in the snapshot.
func (s Snapshot) PieceAt(c chess.Coord) (PieceView, bool) {
	for _, p := range s.Pieces {
		if p.Pos == c {
			return p, true
		}
	}
	return PieceView{}, false
}

// Letter returns the piece letter, uppercase for White and lowercase for Black.
func (v PieceView) Letter() byte {
	l := v.Kind.Letter()
	if v.Side == chess.Black {
		return l + ('a' - 'A')
	}
	return l
}
