package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Status is the turn controller's state.
type Status int

const (
	StatusAwaitingMove Status = iota
	StatusCheck               // Side to move is in check; play continues
	StatusCheckmate           // Terminal
	StatusStalemate           // Terminal
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusAwaitingMove:
		return "awaiting-move"
	case StatusCheck:
		return "check"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	}
	return "unknown"
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsTerminal reports whether no further moves are accepted.
func (s Status) IsTerminal() bool {
	return s == StatusCheckmate || s == StatusStalemate
}

// Outcome is the result of one AttemptMove call.
type Outcome int

const (
	OutcomeRejected Outcome = iota
	OutcomeAccepted
	OutcomeCheck
	OutcomeCheckmate
	OutcomeStalemate
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeCheck:
		return "check"
	case OutcomeCheckmate:
		return "checkmate"
	case OutcomeStalemate:
		return "stalemate"
	}
	return "unknown"
}

// Game is one game session: a board, whose turn it is and the move history.
// A Game is not safe for concurrent use; each session owns its own Game.
type Game struct {
	id      string
	board   *chess.Board
	toMove  chess.Side
	ply     int
	status  Status
	winner  *chess.Side
	history []chess.MoveRecord
	rules   config.Rules
}

// Option configures a Game in NewGame.
type Option func(*Game)

// WithBoard starts the game on a custom board.
func WithBoard(b *chess.Board) Option {
	return func(g *Game) { g.board = b }
}

// WithSideToMove sets who moves first.
func WithSideToMove(side chess.Side) Option {
	return func(g *Game) { g.toMove = side }
}

// WithRules sets the rule switches.
func WithRules(rules config.Rules) Option {
	return func(g *Game) { g.rules = rules }
}

// WithID overrides the generated game identifier.
func WithID(id string) Option {
	return func(g *Game) { g.id = id }
}

// NewGame creates a game on the standard board with White to move unless
// options say otherwise.
func NewGame(opts ...Option) (*Game, error) {
	g := &Game{
		id:     uuid.NewString(),
		toMove: chess.White,
		rules:  config.DefaultRules(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.board == nil {
		g.board = chess.NewStandardBoard()
	}
	if err := g.rules.Validate(); err != nil {
		return nil, err
	}
	// A custom position may already be decided.
	g.status = positionStatus(g.board, g.toMove, g.rules)
	if g.status == StatusCheckmate {
		winner := g.toMove.Opposite()
		g.winner = &winner
	}
	return g, nil
}

// positionStatus classifies the position for side, the side to move.
func positionStatus(board *chess.Board, side chess.Side, rules config.Rules) Status {
	switch {
	case IsInCheck(board, side):
		if canAnswerCheck(board, side, rules) {
			return StatusCheck
		}
		return StatusCheckmate
	case rules.DetectStalemate && IsStalemate(board, side, rules):
		return StatusStalemate
	}
	return StatusAwaitingMove
}

// NewGameFromPlacement creates a game from a placement string. The side to
// move in the string is used unless an option overrides it.
func NewGameFromPlacement(placement string, opts ...Option) (*Game, error) {
	setup, err := ParsePlacement(placement)
	if err != nil {
		return nil, err
	}
	board, err := setup.Board()
	if err != nil {
		return nil, err
	}
	all := append([]Option{WithBoard(board), WithSideToMove(setup.ToMove)}, opts...)
	return NewGame(all...)
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Board returns the game's board. Callers must not modify it.
func (g *Game) Board() *chess.Board { return g.board }

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Side { return g.toMove }

// Ply returns the number of accepted moves.
func (g *Game) Ply() int { return g.ply }

// Status returns the current state.
func (g *Game) Status() Status { return g.status }

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return g.status == StatusCheck || g.status == StatusCheckmate
}

// Winner returns the side that delivered checkmate.
func (g *Game) Winner() (chess.Side, bool) {
	if g.winner == nil {
		return chess.White, false
	}
	return *g.winner, true
}

// Rules returns the rule switches in effect.
func (g *Game) Rules() config.Rules { return g.rules }

// History returns a copy of the accepted moves.
func (g *Game) History() []chess.MoveRecord {
	out := make([]chess.MoveRecord, len(g.history))
	copy(out, g.history)
	return out
}

// LegalMoves lists the destinations of the piece on from if it belongs to
// the side to move and the game is still running.
func (g *Game) LegalMoves(from chess.Coord) []chess.Coord {
	if g.status.IsTerminal() {
		return nil
	}
	p := g.board.PieceAt(from)
	if p == nil || p.Side != g.toMove {
		return nil
	}
	return LegalMoves(g.board, from, g.rules)
}

// AttemptMove validates and, if legal, plays a move for the side to move.
//
// Checks run in order: game over, source bounds, ownership of the source
// square, destination bounds, no-op, piece geometry and, with KingSafety,
// own-king exposure. A rejected move returns OutcomeRejected with a
// *errors.MoveError and leaves the game untouched. An accepted move captures
// any occupant of to, relocates the piece (and the rook when castling), then
// reports check, checkmate or stalemate against the opponent before passing
// the turn.
func (g *Game) AttemptMove(from, to chess.Coord) (Outcome, error) {
	reject := func(err error, reason string) (Outcome, error) {
		return OutcomeRejected, &errors.MoveError{
			Err:    err,
			From:   from.String(),
			To:     to.String(),
			Ply:    g.ply,
			Reason: reason,
		}
	}

	if g.status.IsTerminal() {
		return reject(errors.ErrGameOver, g.status.String())
	}
	if !g.board.InBounds(from) {
		return reject(errors.ErrOutOfBounds, "source")
	}
	piece := g.board.PieceAt(from)
	if piece == nil || piece.Side != g.toMove {
		return reject(errors.ErrNotCallersPiece, fmt.Sprintf("%s to move", g.toMove))
	}
	if !g.board.InBounds(to) {
		return reject(errors.ErrOutOfBounds, "destination")
	}
	if from == to {
		return reject(errors.ErrNoOpMove, "")
	}
	kind, err := CheckGeometry(g.board, from, to, g.rules)
	if err != nil {
		return reject(err, "")
	}
	if g.rules.KingSafety && LeavesKingInCheck(g.board, from, to, kind) {
		return reject(errors.ErrKingExposed, "")
	}

	applied := applyMove(g.board, from, to, kind)
	rec := chess.MoveRecord{
		Ply:      g.ply,
		Side:     g.toMove,
		Piece:    piece.Kind,
		PieceID:  piece.ID,
		From:     from,
		To:       to,
		Kind:     kind,
		RookFrom: applied.rookFrom,
		RookTo:   applied.rookTo,
	}
	if applied.captured != nil {
		k := applied.captured.Kind
		rec.Captured = &k
	}

	outcome := OutcomeAccepted
	opponent := g.toMove.Opposite()
	g.status = positionStatus(g.board, opponent, g.rules)
	switch g.status {
	case StatusCheck:
		outcome, rec.Check = OutcomeCheck, chess.Check
	case StatusCheckmate:
		outcome, rec.Check = OutcomeCheckmate, chess.Checkmate
		winner := g.toMove
		g.winner = &winner
	case StatusStalemate:
		outcome = OutcomeStalemate
	}

	g.history = append(g.history, rec)
	g.ply++
	g.toMove = opponent
	return outcome, nil
}
