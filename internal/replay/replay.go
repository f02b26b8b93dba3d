// Package replay plays scripted games through the rules engine.
//
// A script is plain text with one move per line in any form the notation
// package reads ("E2 E4", "E2E4", "E2-E4"). Blank lines and lines starting
// with '#' are ignored. An optional "setup <placement>" line before the
// first move selects the start position.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Move is one scripted move with the line it was read from.
type Move struct {
	Line int
	From chess.Coord
	To   chess.Coord
}

// Script is a parsed game script.
type Script struct {
	Name  string
	Setup string // Empty for the standard position
	Moves []Move
}

// Result describes how far a script got.
type Result struct {
	Name      string        `json:"name"`
	GameID    string        `json:"gameId,omitempty"`
	Plies     int           `json:"plies"`
	Status    engine.Status `json:"status"`
	Placement string        `json:"placement,omitempty"`
	Line      int           `json:"line,omitempty"` // Line of the rejected move
	Err       error         `json:"-"`

	// Final position, for duplicate detection. Zero if no game was created.
	Signature hashing.Signature `json:"-"`
}

// OK reports whether every move of the script was accepted.
func (r Result) OK() bool {
	return r.Err == nil
}

// String returns a one-line summary such as "mate.txt: 4 plies, checkmate".
func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %v", r.Name, r.Err)
	}
	return fmt.Sprintf("%s: %d plies, %s", r.Name, r.Plies, r.Status)
}

const setupDirective = "setup"

// Parse reads a script. Move text is checked here; legality is left to Run.
func Parse(name string, r io.Reader) (*Script, error) {
	s := &Script{Name: name}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if rest, ok := cutDirective(line); ok {
			if len(s.Moves) > 0 || s.Setup != "" {
				return nil, fmt.Errorf("%s:%d: setup must come once, before the first move: %w",
					name, lineNo, errors.ErrInvalidSetup)
			}
			if rest == "" {
				return nil, fmt.Errorf("%s:%d: empty setup: %w", name, lineNo, errors.ErrInvalidSetup)
			}
			s.Setup = rest
			continue
		}

		from, to, err := notation.ParseMove(line)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", name, lineNo)
		}
		s.Moves = append(s.Moves, Move{Line: lineNo, From: from, To: to})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return s, nil
}

func cutDirective(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.EqualFold(fields[0], setupDirective) {
		return "", false
	}
	return strings.TrimSpace(line[len(fields[0]):]), true
}

// Run plays the script in a fresh game and stops at the first rejected move.
func Run(s *Script, rules config.Rules) Result {
	res := Result{Name: s.Name}

	opts := []engine.Option{engine.WithRules(rules)}
	var (
		game *engine.Game
		err  error
	)
	if s.Setup != "" {
		game, err = engine.NewGameFromPlacement(s.Setup, opts...)
	} else {
		game, err = engine.NewGame(opts...)
	}
	if err != nil {
		res.Err = errors.Wrap(err, s.Name)
		return res
	}
	res.GameID = game.ID()

	for _, m := range s.Moves {
		if _, err := game.AttemptMove(m.From, m.To); err != nil {
			res.Line = m.Line
			res.Err = errors.Wrapf(err, "%s:%d", s.Name, m.Line)
			break
		}
	}

	res.Plies = game.Ply()
	res.Status = game.Status()
	res.Placement = engine.Placement(game.Board(), game.ToMove())
	res.Signature = hashing.NewSignature(s.Name, game.Board(), game.ToMove(), res.Plies)
	return res
}
