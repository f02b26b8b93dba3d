// Package config provides configuration for the chess rules engine and its CLI.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Setup is an optional piece-placement string for a custom arrangement.
	Setup string

	// Rules selects engine behaviour where chess variants of the rules exist.
	Rules Rules

	// Output controls rendering in the CLI.
	Output *OutputConfig

	// Duplicate controls duplicate detection in batch replay.
	Duplicate *DuplicateConfig

	// StopOnFailure ends a batch replay at the first rejected script.
	StopOnFailure bool

	Verbosity int // 0=nothing, 1=results, 2=running commentary
	Debug     bool

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:      DefaultRules(),
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate reports configuration values the engine cannot work with.
func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	return nil
}
