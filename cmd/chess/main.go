// chess is an interactive two-player chess game on the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	loadArgsFromFileIfSpecified()
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(cfg.LogFile, "chess: ", log.LstdFlags)

	if *replayMode {
		if failed := replayScripts(flag.Args(), cfg, *workers, logger); failed > 0 {
			os.Exit(1)
		}
		return
	}

	game, err := newGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("game %s started, %s to move", game.ID(), game.ToMove())

	session := NewSession(game, cfg, logger)
	if err := playGame(session, os.Stdin, *transcript); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playGame runs session on in. With a transcript path, every position is
// also written there; the file is closed before playGame returns.
func playGame(session *Session, in io.Reader, transcriptPath string) (err error) {
	if transcriptPath != "" {
		file, createErr := os.Create(transcriptPath) //nolint:gosec // G304: path comes from the command line
		if createErr != nil {
			return errors.Wrapf(createErr, "creating transcript file %s", transcriptPath)
		}
		defer func() {
			if closeErr := file.Close(); err == nil {
				err = closeErr
			}
		}()
		session.SetTranscript(output.NewJSONWriterBatch(file))
	}
	return session.Run(in)
}

// newGame creates the game described by the configuration.
func newGame(cfg *config.Config) (*engine.Game, error) {
	opts := []engine.Option{engine.WithRules(cfg.Rules)}
	if cfg.Setup != "" {
		return engine.NewGameFromPlacement(cfg.Setup, opts...)
	}
	return engine.NewGame(opts...)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n")
	fmt.Fprintf(os.Stderr, "       chess -replay [options] script...\n\n")
	fmt.Fprintf(os.Stderr, "Two players share the terminal and enter moves for the side to move.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  A2 A4        Move the piece on A2 to A4 (also A2A4, A2-A4, A2 -> A4)\n")
	fmt.Fprintf(os.Stderr, "  moves A2     List legal destinations of the piece on A2\n")
	fmt.Fprintf(os.Stderr, "  history      Show the moves played so far\n")
	fmt.Fprintf(os.Stderr, "  board        Show the board again\n")
	fmt.Fprintf(os.Stderr, "  exit, quit   Leave the game\n")
	fmt.Fprintf(os.Stderr, "\nScripts hold one move per line; '#' starts a comment and an optional\n")
	fmt.Fprintf(os.Stderr, "\"setup <placement>\" line before the first move sets the start position.\n")
}
