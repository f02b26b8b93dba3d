// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the rejection taxonomy for move attempts and structured error types that
// preserve context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a coordinate outside the board.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrNotCallersPiece indicates the source square holds no piece of the side to move.
	ErrNotCallersPiece = errors.New("no piece of the side to move on source square")

	// ErrNoOpMove indicates a move whose source and destination are the same square.
	ErrNoOpMove = errors.New("source and destination are the same square")

	// ErrIllegalGeometry indicates a move the piece kind cannot trace.
	ErrIllegalGeometry = errors.New("illegal move geometry")

	// ErrKingExposed indicates a move that would leave the mover's own king attacked.
	ErrKingExposed = errors.New("move leaves own king in check")

	// ErrGameOver indicates a move attempted after the game reached a terminal state.
	ErrGameOver = errors.New("game is over")

	// ErrEmptySquare indicates an operation that requires a piece found none.
	ErrEmptySquare = errors.New("square is empty")

	// ErrInvalidSetup indicates a piece arrangement the board cannot hold.
	ErrInvalidSetup = errors.New("invalid board setup")

	// ErrParseFailure indicates text that could not be read as a square or move.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotReplayed marks a script skipped because an earlier one failed.
	ErrNotReplayed = errors.New("not replayed after an earlier failure")
)

// MoveError wraps a rejection with the move that caused it. It implements the
// error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying sentinel
	From   string // Source square as rendered by the caller
	To     string // Destination square
	Ply    int    // Ply at which the attempt was made (0-based)
	Reason string // Extra detail, e.g. which piece rule failed
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}
	parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure to read user-supplied text such as a square,
// a move or a placement string.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // 1-based offset of the offending character (0 if unknown)
	Expected string // What was expected
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		if e.Column > 0 {
			parts = append(parts, fmt.Sprintf("%q:%d", e.Input, e.Column))
		} else {
			parts = append(parts, fmt.Sprintf("%q", e.Input))
		}
	}
	if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain matches target.
// It re-exports the standard library function so callers need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
