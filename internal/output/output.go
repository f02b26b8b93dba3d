// Package output renders game snapshots as a text grid or JSON.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// RenderBoard writes the board as a character grid, top rank first. White
// pieces are uppercase and Black lowercase; each cell is closed by '|'.
// Captured pieces follow on a Dead=[...] line when enabled.
func RenderBoard(w io.Writer, snap engine.Snapshot, cfg *config.OutputConfig) {
	if cfg == nil {
		cfg = config.NewOutputConfig()
	}
	empty := cfg.EmptySquare
	if empty == 0 {
		empty = '_'
	}

	grid := make([][]byte, snap.Height)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(string(empty), snap.Width))
	}
	for _, p := range snap.Pieces {
		if p.Pos.X >= 0 && p.Pos.X < snap.Width && p.Pos.Y >= 0 && p.Pos.Y < snap.Height {
			grid[p.Pos.Y][p.Pos.X] = p.Letter()
		}
	}

	labelWidth := len(strconv.Itoa(snap.Height))
	var sb strings.Builder
	for y := snap.Height - 1; y >= 0; y-- {
		if cfg.ShowCoordinates {
			fmt.Fprintf(&sb, "%*d ", labelWidth, y+1)
		}
		for _, c := range grid[y] {
			sb.WriteByte(c)
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	if cfg.ShowCoordinates {
		sb.WriteString(strings.Repeat(" ", labelWidth+1))
		for x := 0; x < snap.Width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(fileLetter(x))
		}
		sb.WriteByte('\n')
	}
	if cfg.ShowCaptured {
		sb.WriteString("Dead=[")
		for _, p := range snap.Captured {
			sb.WriteByte(p.Letter())
			sb.WriteByte('|')
		}
		sb.WriteString("]\n")
	}

	io.WriteString(w, sb.String()) //nolint:errcheck // display output
}

// fileLetter returns the column letter for x.
func fileLetter(x int) byte {
	if x < 26 {
		return byte('A' + x)
	}
	return '?'
}

// RenderHistory writes the accepted moves with move numbers, wrapping lines
// at maxLineLength.
func RenderHistory(w io.Writer, history []chess.MoveRecord, maxLineLength int) {
	if len(history) == 0 {
		return
	}
	ow := NewOutputWriter(w, maxLineLength)

	moveNum := 1
	for i, rec := range history {
		if rec.Side == chess.White {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(rec.String())
		if rec.Side == chess.Black {
			moveNum++
		}
	}

	ow.NewLine()
}

// StatusLine describes the game state for the side to move, or returns an
// empty string while play is ordinary.
func StatusLine(snap engine.Snapshot) string {
	switch snap.Status {
	case engine.StatusCheck:
		return "Check!"
	case engine.StatusCheckmate:
		if snap.Winner != nil {
			return fmt.Sprintf("Checkmate! %s wins", *snap.Winner)
		}
		return "Checkmate!"
	case engine.StatusStalemate:
		return "Stalemate!"
	}
	return ""
}
