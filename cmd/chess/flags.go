// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Game setup
	setupString = flag.String("setup", "", "Piece placement for the start position, e.g. \"4k3/8/8/8/8/8/8/R3K3 w\" (default: standard)")

	// Batch replay
	replayMode = flag.Bool("replay", false, "Replay the game script files named on the command line and report each result")
	workers    = flag.Int("workers", 0, "Number of replay workers (0 = one per CPU core)")
	stopOnFail = flag.Bool("stop", false, "With -replay, stop at the first rejected script")

	// Duplicate detection
	duplicates     = flag.Bool("D", false, "With -replay, report scripts ending in a position an earlier script reached")
	duplicatePlies = flag.Bool("duplicate-plies", false, "With -D, also require the same number of plies")

	// Rule switches
	strictCastling = flag.Bool("strict-castling", false, "Also reject castling across an attacked square")
	noKingSafety   = flag.Bool("no-king-safety", false, "Accept moves that leave your own king attacked")
	checkmateRule  = flag.String("checkmate", "king-escape", "Checkmate search: king-escape or full")
	fullCheckmate  = flag.Bool("full-checkmate", false, "Same as -checkmate full")
	stalemate      = flag.Bool("stalemate", false, "End the game on stalemate")

	// Output options
	outputFile  = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput  = flag.Bool("J", false, "Print positions in JSON format")
	lineLength  = flag.Int("w", 80, "Maximum line length for move history")
	emptySquare = flag.String("empty", "_", "Character drawn for empty squares")
	noCoords    = flag.Bool("nocoords", false, "Don't print rank numbers and file letters")
	noCaptured  = flag.Bool("nodead", false, "Don't print the captured pieces line")
	transcript  = flag.String("transcript", "", "Write every position to this file as a JSON transcript on exit")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	debug     = flag.Bool("debug", false, "Dump the game state to the log after every move")

	// Other options
	verbose = flag.Bool("v", false, "Verbose: log every move attempt")
	quiet   = flag.Bool("s", false, "Silent mode (no prompts)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Note: -A flag is handled manually before flag.Parse() in loadArgsFromFileIfSpecified
	_ = flag.String("A", "", "File containing command-line arguments (one per line, # for comments)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.Setup = *setupString
	if err := applyRulesFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)
	applyDuplicateFlags(cfg)

	cfg.StopOnFailure = *stopOnFail
	cfg.Debug = *debug
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return nil
}

// applyRulesFlags configures the engine rule switches.
func applyRulesFlags(cfg *config.Config) error {
	rule, err := config.ParseCheckmateRule(*checkmateRule)
	if err != nil {
		return err
	}
	if *fullCheckmate {
		rule = config.CheckmateFull
	}

	cfg.Rules.Checkmate = rule
	cfg.Rules.KingSafety = !*noKingSafety
	cfg.Rules.StrictCastling = *strictCastling
	cfg.Rules.DetectStalemate = *stalemate
	return nil
}

// applyOutputFlags configures board rendering.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSONFormat
	} else {
		cfg.Output.Format = config.TextFormat
	}
	cfg.Output.ShowCoordinates = !*noCoords
	cfg.Output.ShowCaptured = !*noCaptured
	if len(*emptySquare) > 0 {
		cfg.Output.EmptySquare = (*emptySquare)[0]
	}
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Detect = *duplicates || *duplicatePlies
	cfg.Duplicate.MatchPlies = *duplicatePlies
}
