package config

import (
	"bytes"
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != TextFormat {
		t.Errorf("Format = %v, want %v", cfg.Format, TextFormat)
	}
	if !cfg.ShowCaptured {
		t.Error("ShowCaptured should be true by default")
	}
	if !cfg.ShowCoordinates {
		t.Error("ShowCoordinates should be true by default")
	}
	if cfg.EmptySquare != '_' {
		t.Errorf("EmptySquare = %q, want '_'", cfg.EmptySquare)
	}
}

// TestRules_Defaults verifies the engine defaults
func TestRules_Defaults(t *testing.T) {
	r := DefaultRules()

	if !r.KingSafety {
		t.Error("KingSafety should be true by default")
	}
	if r.Checkmate != CheckmateKingEscape {
		t.Errorf("Checkmate = %v, want %v", r.Checkmate, CheckmateKingEscape)
	}
	if r.StrictCastling {
		t.Error("StrictCastling should be false by default")
	}
	if r.DetectStalemate {
		t.Error("DetectStalemate should be false by default")
	}
}

// TestParseCheckmateRule verifies flag values map onto rules
func TestParseCheckmateRule(t *testing.T) {
	tests := []struct {
		in      string
		want    CheckmateRule
		wantErr bool
	}{
		{"", CheckmateKingEscape, false},
		{"king-escape", CheckmateKingEscape, false},
		{"full", CheckmateFull, false},
		{"blitz", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCheckmateRule(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCheckmateRule(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, chesserrors.ErrInvalidConfig) {
					t.Errorf("error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseCheckmateRule(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.String() != tt.in && tt.in != "" {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

// TestConfig_Validate checks rejected configurations
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"custom 10x10 setup", func(c *Config) { c.Setup = "k9/10/K9" }, false},
		{"bad checkmate rule", func(c *Config) { c.Rules.Checkmate = CheckmateRule(9) }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfigBuilder verifies the fluent builder sets every field
func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer
	cfg := NewConfigBuilder().
		WithSetup("k5/6/6/6/6/K5").
		WithKingSafety(false).
		WithCheckmateRule(CheckmateFull).
		WithStrictCastling(true).
		WithStalemateDetection(true).
		WithOutputFormat(JSONFormat).
		WithOutput(&out).
		WithLog(&log).
		WithVerbosity(2).
		WithDebug(true).
		WithDuplicateDetection(true).
		WithStopOnFailure(true).
		Build()

	if cfg.Setup != "k5/6/6/6/6/K5" {
		t.Errorf("Setup = %q", cfg.Setup)
	}
	want := Rules{KingSafety: false, Checkmate: CheckmateFull, StrictCastling: true, DetectStalemate: true}
	if cfg.Rules != want {
		t.Errorf("Rules = %+v, want %+v", cfg.Rules, want)
	}
	if cfg.Output.Format != JSONFormat {
		t.Errorf("Output.Format = %v, want JSONFormat", cfg.Output.Format)
	}
	if cfg.OutputFile != &out || cfg.LogFile != &log {
		t.Error("writers not set")
	}
	if cfg.Verbosity != 2 || !cfg.Debug {
		t.Errorf("Verbosity = %d, Debug = %v", cfg.Verbosity, cfg.Debug)
	}

	if !cfg.Duplicate.Detect || !cfg.Duplicate.MatchPlies {
		t.Errorf("Duplicate = %+v, want detection with matching plies", *cfg.Duplicate)
	}
	if !cfg.StopOnFailure {
		t.Error("StopOnFailure not set")
	}

	if d := NewConfig().Duplicate; d == nil || d.Detect {
		t.Errorf("default Duplicate = %+v, want detection off", d)
	}

	reset := NewConfigBuilder().WithRules(DefaultRules()).Build()
	if reset.Rules != DefaultRules() {
		t.Errorf("WithRules(DefaultRules()) = %+v", reset.Rules)
	}
}
