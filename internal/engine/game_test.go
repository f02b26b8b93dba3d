package engine_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestNewGame_Defaults(t *testing.T) {
	g, err := engine.NewGame()
	if err != nil {
		t.Fatalf("NewGame() error: %v", err)
	}
	testutil.AssertTrue(t, g.ID() != "", "game ID should be generated")
	testutil.AssertEqual(t, g.ToMove(), chess.White)
	testutil.AssertEqual(t, g.Ply(), 0)
	testutil.AssertEqual(t, g.Status(), engine.StatusAwaitingMove)
	testutil.AssertEqual(t, g.Rules(), config.DefaultRules())
	testutil.AssertFalse(t, g.InCheck())
	_, ok := g.Winner()
	testutil.AssertFalse(t, ok)

	other, err := engine.NewGame(engine.WithID("fixed"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, other.ID(), "fixed")
}

func TestNewGame_InvalidRules(t *testing.T) {
	rules := config.DefaultRules()
	rules.Checkmate = config.CheckmateRule(9)
	_, err := engine.NewGame(engine.WithRules(rules))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestNewGameFromPlacement(t *testing.T) {
	g := testutil.MustGame(t, "4k3/8/8/8/8/8/8/4R1K1 b")
	testutil.AssertEqual(t, g.ToMove(), chess.Black)
	testutil.AssertEqual(t, g.Status(), engine.StatusCheck)
	testutil.AssertTrue(t, g.InCheck())

	override := testutil.MustGame(t, "4k3/8/8/8/8/8/8/4K3 b", engine.WithSideToMove(chess.White))
	testutil.AssertEqual(t, override.ToMove(), chess.White)

	_, err := engine.NewGameFromPlacement("4k3/8/7")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidSetup)
}

func TestNewGameFromPlacement_DecidedPosition(t *testing.T) {
	stalemateRules := config.DefaultRules()
	stalemateRules.DetectStalemate = true

	tests := []struct {
		name       string
		placement  string
		rules      config.Rules
		wantStatus engine.Status
		wantWinner bool
	}{
		{"checkmated", "R5k1/5ppp/8/8/8/8/8/6K1 b", config.DefaultRules(), engine.StatusCheckmate, true},
		{"checkmated full search", "R5k1/5ppp/8/8/8/8/8/6K1 b", config.Rules{KingSafety: true, Checkmate: config.CheckmateFull}, engine.StatusCheckmate, true},
		{"stalemated", "k7/2Q5/1K6/8/8/8/8/8 b", stalemateRules, engine.StatusStalemate, false},
		{"stalemate not detected", "k7/2Q5/1K6/8/8/8/8/8 b", config.DefaultRules(), engine.StatusAwaitingMove, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustGame(t, tt.placement, engine.WithRules(tt.rules))
			testutil.AssertEqual(t, g.Status(), tt.wantStatus)

			winner, ok := g.Winner()
			testutil.AssertEqual(t, ok, tt.wantWinner)
			if tt.wantWinner {
				testutil.AssertEqual(t, winner, chess.White)
			}

			outcome, err := g.AttemptMove(testutil.Sq("A8"), testutil.Sq("B8"))
			if tt.wantStatus.IsTerminal() {
				testutil.AssertEqual(t, outcome, engine.OutcomeRejected)
				testutil.AssertErrorIs(t, err, errors.ErrGameOver)
			} else {
				testutil.AssertErrorIs(t, err, errors.ErrKingExposed)
			}
		})
	}
}

func TestAttemptMove_Pawn(t *testing.T) {
	g := testutil.MustGame(t, "")
	testutil.AssertEqual(t, testutil.MustMove(t, g, "A2", "A4"), engine.OutcomeAccepted)
	testutil.MustMove(t, g, "H7", "H6")
	testutil.AssertEqual(t, testutil.MustMove(t, g, "A4", "A5"), engine.OutcomeAccepted)

	g = testutil.MustGame(t, "")
	testutil.MustPlay(t, g, "A2 A3", "H7 H6")
	err := testutil.MustReject(t, g, "A3", "A5")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalGeometry)

	// An unmoved pawn blocked on its first square cannot jump.
	g = testutil.MustGame(t, "")
	testutil.MustPlay(t, g, "B1 C3", "H7 H6")
	err = testutil.MustReject(t, g, "C2", "C4")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalGeometry)
}

func TestAttemptMove_Knight(t *testing.T) {
	g := testutil.MustGame(t, "")
	testutil.MustMove(t, g, "B1", "C3")

	snap := g.Snapshot()
	p, ok := snap.PieceAt(testutil.Sq("C3"))
	testutil.AssertTrue(t, ok, "C3 should be occupied")
	testutil.AssertEqual(t, p.Kind, chess.Knight)
	testutil.AssertEqual(t, p.Side, chess.White)
	_, ok = snap.PieceAt(testutil.Sq("B1"))
	testutil.AssertFalse(t, ok, "B1 should be empty")
}

func TestAttemptMove_BlockedBishop(t *testing.T) {
	g := testutil.MustGame(t, "")
	err := testutil.MustReject(t, g, "C1", "E3")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalGeometry)

	testutil.MustPlay(t, g, "D2 D3", "A7 A6")
	testutil.AssertEqual(t, testutil.MustMove(t, g, "C1", "E3"), engine.OutcomeAccepted)
}

func TestAttemptMove_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		from, to chess.Coord
		want     error
	}{
		{"source off board", chess.C(-1, 0), chess.C(0, 2), errors.ErrOutOfBounds},
		{"destination off board", chess.C(0, 1), chess.C(0, 8), errors.ErrOutOfBounds},
		{"opponent piece off board", testutil.Sq("E7"), chess.C(4, 8), errors.ErrNotCallersPiece},
		{"empty square off board", testutil.Sq("E4"), chess.C(4, -1), errors.ErrNotCallersPiece},
		{"opponent piece", testutil.Sq("E7"), testutil.Sq("E5"), errors.ErrNotCallersPiece},
		{"empty square", testutil.Sq("E4"), testutil.Sq("E5"), errors.ErrNotCallersPiece},
		{"no-op", testutil.Sq("A2"), testutil.Sq("A2"), errors.ErrNoOpMove},
		{"capture own piece", testutil.Sq("A1"), testutil.Sq("A2"), errors.ErrIllegalGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustGame(t, "", engine.WithID("g"))
			before := g.Snapshot()

			outcome, err := g.AttemptMove(tt.from, tt.to)
			testutil.AssertEqual(t, outcome, engine.OutcomeRejected)
			testutil.AssertErrorIs(t, err, tt.want)

			var moveErr *errors.MoveError
			testutil.AssertTrue(t, errors.As(err, &moveErr), "error should be a *MoveError")
			testutil.AssertEqual(t, moveErr.Ply, 0)

			if diff := cmp.Diff(before, g.Snapshot()); diff != "" {
				t.Errorf("rejected move changed the game (-before +after):\n%s", diff)
			}
		})
	}
}

func TestAttemptMove_TurnAlternation(t *testing.T) {
	g := testutil.MustGame(t, "")
	testutil.MustMove(t, g, "E2", "E4")
	testutil.AssertEqual(t, g.ToMove(), chess.Black)

	err := testutil.MustReject(t, g, "D2", "D4")
	testutil.AssertErrorIs(t, err, errors.ErrNotCallersPiece)

	testutil.MustMove(t, g, "E7", "E5")
	testutil.AssertEqual(t, g.ToMove(), chess.White)
	testutil.AssertEqual(t, g.Ply(), 2)
}

func TestAttemptMove_Capture(t *testing.T) {
	g := testutil.MustGame(t, "")
	testutil.MustPlay(t, g, "E2 E4", "D7 D5", "E4 D5")

	snap := g.Snapshot()
	testutil.AssertEqual(t, len(snap.Pieces), 31)
	testutil.AssertEqual(t, len(snap.Captured), 1)
	testutil.AssertEqual(t, snap.Captured[0].Kind, chess.Pawn)
	testutil.AssertEqual(t, snap.Captured[0].Side, chess.Black)

	p, ok := snap.PieceAt(testutil.Sq("D5"))
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, p.Side, chess.White)

	history := g.History()
	testutil.AssertEqual(t, len(history), 3)
	testutil.AssertEqual(t, history[2].String(), "PE4xD5")
	testutil.AssertEqual(t, history[2].Kind, chess.Capture)
	testutil.AssertEqual(t, history[0].Kind, chess.DoubleStep)
	testutil.AssertEqual(t, snap.LastMove.String(), "PE4xD5")
}

func TestAttemptMove_Castling(t *testing.T) {
	g := testutil.MustGame(t, "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq")

	testutil.AssertEqual(t, testutil.MustMove(t, g, "E1", "G1"), engine.OutcomeAccepted)
	b := g.Board()
	testutil.AssertEqual(t, b.PieceAt(testutil.Sq("G1")).Kind, chess.King)
	testutil.AssertEqual(t, b.PieceAt(testutil.Sq("F1")).Kind, chess.Rook)
	testutil.AssertNil(t, b.PieceAt(testutil.Sq("H1")))
	testutil.AssertNil(t, b.PieceAt(testutil.Sq("E1")))

	rec := g.History()[0]
	testutil.AssertEqual(t, rec.Kind, chess.CastleKingside)
	testutil.AssertEqual(t, *rec.RookFrom, testutil.Sq("H1"))
	testutil.AssertEqual(t, *rec.RookTo, testutil.Sq("F1"))

	testutil.MustMove(t, g, "E8", "C8")
	testutil.AssertEqual(t, b.PieceAt(testutil.Sq("D8")).Kind, chess.Rook)
	testutil.AssertEqual(t, engine.Placement(b, g.ToMove()), "2kr3r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 w -")
}

func TestAttemptMove_CastlingAfterKingMoved(t *testing.T) {
	g := testutil.MustGame(t, "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq")
	testutil.MustPlay(t, g, "E1 F1", "A7 A6", "F1 E1", "A6 A5")

	err := testutil.MustReject(t, g, "E1", "G1")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalGeometry)
}

func TestAttemptMove_StrictCastling(t *testing.T) {
	placement := "4k3/8/8/8/8/8/5r2/4K2R w K"

	g := testutil.MustGame(t, placement)
	testutil.AssertEqual(t, testutil.MustMove(t, g, "E1", "G1"), engine.OutcomeAccepted)

	rules := config.DefaultRules()
	rules.StrictCastling = true
	g = testutil.MustGame(t, placement, engine.WithRules(rules))
	err := testutil.MustReject(t, g, "E1", "G1")
	testutil.AssertErrorIs(t, err, errors.ErrIllegalGeometry)
}

func TestAttemptMove_KingSafety(t *testing.T) {
	placement := "4k3/4r3/8/8/8/8/4B3/4K3 w"

	g := testutil.MustGame(t, placement)
	err := testutil.MustReject(t, g, "E2", "D3")
	testutil.AssertErrorIs(t, err, errors.ErrKingExposed)
	testutil.AssertEqual(t, g.LegalMoves(testutil.Sq("E2")), []chess.Coord(nil))

	rules := config.DefaultRules()
	rules.KingSafety = false
	g = testutil.MustGame(t, placement, engine.WithRules(rules))
	testutil.AssertEqual(t, testutil.MustMove(t, g, "E2", "D3"), engine.OutcomeAccepted)
}

func TestAttemptMove_Check(t *testing.T) {
	g := testutil.MustGame(t, "4k3/8/8/8/8/8/8/R3K3 w")

	testutil.AssertEqual(t, testutil.MustMove(t, g, "A1", "A8"), engine.OutcomeCheck)
	testutil.AssertEqual(t, g.Status(), engine.StatusCheck)
	testutil.AssertTrue(t, g.InCheck())
	testutil.AssertTrue(t, g.Snapshot().Check)
	testutil.AssertEqual(t, g.History()[0].String(), "RA1-A8+")

	err := testutil.MustReject(t, g, "E8", "D8")
	testutil.AssertErrorIs(t, err, errors.ErrKingExposed)

	testutil.AssertEqual(t, testutil.MustMove(t, g, "E8", "E7"), engine.OutcomeAccepted)
	testutil.AssertEqual(t, g.Status(), engine.StatusAwaitingMove)
	testutil.AssertFalse(t, g.InCheck())
}

func TestAttemptMove_Checkmate(t *testing.T) {
	g := testutil.MustGame(t, "6k1/5ppp/8/8/8/8/8/R3K3 w")

	testutil.AssertEqual(t, testutil.MustMove(t, g, "A1", "A8"), engine.OutcomeCheckmate)
	testutil.AssertEqual(t, g.Status(), engine.StatusCheckmate)
	winner, ok := g.Winner()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, winner, chess.White)
	testutil.AssertEqual(t, g.History()[0].String(), "RA1-A8#")

	snap := g.Snapshot()
	testutil.AssertEqual(t, snap.Status, engine.StatusCheckmate)
	testutil.AssertEqual(t, *snap.Winner, chess.White)

	err := testutil.MustReject(t, g, "F7", "F6")
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
	testutil.AssertEqual(t, g.LegalMoves(testutil.Sq("F7")), []chess.Coord(nil))
	testutil.AssertEqual(t, g.Ply(), 1)
}

func TestAttemptMove_FoolsMate(t *testing.T) {
	for _, rule := range []config.CheckmateRule{config.CheckmateKingEscape, config.CheckmateFull} {
		t.Run(rule.String(), func(t *testing.T) {
			rules := config.DefaultRules()
			rules.Checkmate = rule
			g := testutil.MustGame(t, "", engine.WithRules(rules))

			outcome := testutil.MustPlay(t, g, "F2 F3", "E7 E5", "G2 G4", "D8 H4")
			testutil.AssertEqual(t, outcome, engine.OutcomeCheckmate)
			winner, _ := g.Winner()
			testutil.AssertEqual(t, winner, chess.Black)
		})
	}
}

func TestAttemptMove_FullCheckmateRule(t *testing.T) {
	placement := "6k1/5ppp/8/8/8/8/3r4/R3K3 w"

	g := testutil.MustGame(t, placement)
	testutil.AssertEqual(t, testutil.MustMove(t, g, "A1", "A8"), engine.OutcomeCheckmate)

	rules := config.DefaultRules()
	rules.Checkmate = config.CheckmateFull
	g = testutil.MustGame(t, placement, engine.WithRules(rules))
	testutil.AssertEqual(t, testutil.MustMove(t, g, "A1", "A8"), engine.OutcomeCheck)
	testutil.AssertEqual(t, testutil.MustMove(t, g, "D2", "D8"), engine.OutcomeAccepted)
}

func TestAttemptMove_Stalemate(t *testing.T) {
	placement := "7k/8/6K1/5Q2/8/8/8/8 w"

	g := testutil.MustGame(t, placement)
	testutil.AssertEqual(t, testutil.MustMove(t, g, "F5", "F7"), engine.OutcomeAccepted)
	err := testutil.MustReject(t, g, "H8", "G8")
	testutil.AssertErrorIs(t, err, errors.ErrKingExposed)

	rules := config.DefaultRules()
	rules.DetectStalemate = true
	g = testutil.MustGame(t, placement, engine.WithRules(rules))
	testutil.AssertEqual(t, testutil.MustMove(t, g, "F5", "F7"), engine.OutcomeStalemate)
	testutil.AssertEqual(t, g.Status(), engine.StatusStalemate)
	testutil.AssertTrue(t, g.Status().IsTerminal())
	_, ok := g.Winner()
	testutil.AssertFalse(t, ok)

	err = testutil.MustReject(t, g, "H8", "G8")
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
}

func TestGame_LegalMoves(t *testing.T) {
	g := testutil.MustGame(t, "")
	want := []chess.Coord{testutil.Sq("A3"), testutil.Sq("C3")}
	testutil.AssertEqual(t, g.LegalMoves(testutil.Sq("B1")), want)
	testutil.AssertEqual(t, g.LegalMoves(testutil.Sq("B8")), []chess.Coord(nil))
	testutil.AssertEqual(t, g.LegalMoves(testutil.Sq("E4")), []chess.Coord(nil))
}

func TestGame_HistoryIsCopy(t *testing.T) {
	g := testutil.MustGame(t, "")
	testutil.MustMove(t, g, "E2", "E4")

	h := g.History()
	h[0].Piece = chess.Queen
	testutil.AssertEqual(t, g.History()[0].Piece, chess.Pawn)
}
