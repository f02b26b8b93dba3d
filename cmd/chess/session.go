package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const inputHelp = `Wrong input. Use the correct format or "exit":
	Example: "A2 A4" or "A2 -> A4"`

// Session runs one interactive game: it prints the board, reads moves and
// reports the outcome of each.
type Session struct {
	game   *engine.Game
	cfg    *config.Config
	out    io.Writer
	board  output.SnapshotWriter
	logger *log.Logger

	// Optional: receives every position for a transcript.
	transcript output.SnapshotWriter
}

// NewSession creates a session writing to cfg.OutputFile and logging to logger.
func NewSession(game *engine.Game, cfg *config.Config, logger *log.Logger) *Session {
	return &Session{
		game:   game,
		cfg:    cfg,
		out:    cfg.OutputFile,
		board:  output.NewWriter(cfg.OutputFile, cfg),
		logger: logger,
	}
}

// SetTranscript records every position to w in addition to the display.
func (s *Session) SetTranscript(w output.SnapshotWriter) {
	s.transcript = w
}

// Run reads commands from r until "exit", end of input or the end of the game.
func (s *Session) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	if err := s.show(); err != nil {
		return err
	}
	if s.game.Status().IsTerminal() {
		return s.close()
	}

	for {
		s.prompt()
		if !scanner.Scan() {
			break
		}
		if s.handle(strings.TrimSpace(scanner.Text())) {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}
	return s.close()
}

// handle processes one input line and reports whether the session should stop.
func (s *Session) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "exit", "quit":
		return true
	case "help":
		s.printf("Commands: <from> <to>, moves <square>, history, board, exit\n")
		return false
	case "board":
		s.show() //nolint:errcheck // display output
		return false
	case "history":
		output.RenderHistory(s.out, s.game.History(), int(s.cfg.Output.MaxLineLength))
		return false
	case "moves":
		if len(fields) == 2 {
			s.listMoves(fields[1])
			return false
		}
	}

	from, to, err := notation.ParseMove(line)
	if err != nil {
		s.logf(2, "unreadable input %q: %v", line, err)
		s.printf("%s\n", inputHelp)
		return false
	}
	return s.move(from, to)
}

// move plays one move and reports whether the game has ended.
func (s *Session) move(from, to chess.Coord) bool {
	mover := s.game.ToMove()
	outcome, err := s.game.AttemptMove(from, to)
	if err != nil {
		s.logf(2, "rejected %s-%s for %s: %v", from, to, mover, err)
		s.printf("Invalid move: %v\n", err)
		return false
	}
	s.logf(2, "ply %d: %s played %s-%s (%s)", s.game.Ply()-1, mover, from, to, outcome)

	s.show() //nolint:errcheck // display output
	if s.cfg.Debug {
		s.logger.Print(spew.Sdump(s.game.Snapshot()))
	}

	snap := s.game.Snapshot()
	if line := output.StatusLine(snap); line != "" {
		s.printf("%s\n", line)
	}
	if snap.Status.IsTerminal() {
		s.logf(1, "game %s over after %d plies: %s", snap.GameID, snap.Ply, snap.Status)
		return true
	}
	return false
}

// listMoves prints the legal destinations of the piece on square.
func (s *Session) listMoves(square string) {
	from, err := notation.ParseSquare(square)
	if err != nil {
		s.printf("Invalid square: %v\n", err)
		return
	}
	moves := s.game.LegalMoves(from)
	if len(moves) == 0 {
		s.printf("No legal moves from %s\n", notation.FormatSquare(from))
		return
	}
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = notation.FormatSquare(m)
	}
	s.printf("Legal moves from %s: %s\n", notation.FormatSquare(from), strings.Join(names, " "))
}

// show writes the current position to the display and the transcript.
func (s *Session) show() error {
	snap := s.game.Snapshot()
	if s.transcript != nil {
		if err := s.transcript.WriteSnapshot(snap); err != nil {
			return err
		}
	}
	return s.board.WriteSnapshot(snap)
}

// prompt asks the side to move for input unless output is quiet or JSON.
func (s *Session) prompt() {
	if s.cfg.Verbosity == 0 || s.cfg.Output.Format == config.JSONFormat {
		return
	}
	s.printf("%s to move: ", s.game.ToMove())
}

// close flushes the writers.
func (s *Session) close() error {
	if s.transcript != nil {
		if err := s.transcript.Close(); err != nil {
			return err
		}
	}
	return s.board.Close()
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

// logf logs when the configured verbosity is at least level.
func (s *Session) logf(level int, format string, args ...interface{}) {
	if s.cfg.Verbosity >= level {
		s.logger.Printf(format, args...)
	}
}
