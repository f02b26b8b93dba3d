// replay.go - Batch replay of game script files
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/replay"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// replayReport is the JSON form of one replay result.
type replayReport struct {
	replay.Result
	Error       string `json:"error,omitempty"`
	DuplicateOf string `json:"duplicateOf,omitempty"`
}

// loadScripts parses every file. Files that cannot be read or parsed come
// back as failed results at their position; scripts holds nil there.
func loadScripts(paths []string) ([]*replay.Script, []replay.Result) {
	scripts := make([]*replay.Script, len(paths))
	results := make([]replay.Result, len(paths))
	for i, path := range paths {
		s, err := loadScript(path)
		if err != nil {
			results[i] = replay.Result{Name: path, Err: errors.Wrap(err, "loading script")}
			continue
		}
		scripts[i] = s
	}
	return scripts, results
}

func loadScript(path string) (*replay.Script, error) {
	file, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return replay.Parse(path, file)
}

// replayScripts replays the scripts in paths on a worker pool and reports
// the results in input order. It returns the number of failed scripts; with
// cfg.StopOnFailure, scripts skipped after the first failure count as failed.
func replayScripts(paths []string, cfg *config.Config, numWorkers int, logger *log.Logger) int {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	scripts, results := loadScripts(paths)

	bufferSize := len(paths)
	if bufferSize > 100 {
		bufferSize = 100
	}
	opts := []worker.PoolOption{worker.WithWorkers(numWorkers), worker.WithBufferSize(bufferSize)}
	if cfg.StopOnFailure {
		opts = append(opts, worker.WithStopOnFailure())
	}
	pool := worker.NewPool(worker.ReplayFunc(cfg.Rules), opts...)
	if cfg.StopOnFailure && countFailed(results) > 0 {
		// A script that could not be loaded ends the batch before any replay.
		pool.Stop()
	}
	pool.Start()

	go func() {
		for i, s := range scripts {
			if s != nil && !pool.Submit(worker.WorkItem{Script: s, Index: i}) {
				break
			}
		}
		pool.Close()
	}()

	// results is only written from this goroutine.
	replayed := make([]bool, len(results))
	for r := range pool.Results() {
		results[r.Index] = r.Result
		replayed[r.Index] = true
		if cfg.Verbosity > 1 {
			logger.Printf("replayed %s", r.Result)
		}
	}
	for i, s := range scripts {
		if s != nil && !replayed[i] {
			results[i] = replay.Result{Name: s.Name, Err: errors.ErrNotReplayed}
		}
	}

	failed := countFailed(results)

	var dups []string
	if cfg.Duplicate.Detect {
		dups = findDuplicates(results, cfg.Duplicate.MatchPlies)
		if cfg.Verbosity > 0 {
			logger.Printf("%d of %d scripts end in a position seen before", countNonEmpty(dups), len(results))
		}
	}

	if err := writeReplayReport(cfg.OutputFile, results, dups, cfg.Output.Format); err != nil {
		logger.Printf("writing replay report: %v", err)
	}
	return failed
}

// findDuplicates returns, for each result, the name of the earlier script
// that ended in the same position, or "". Scripts whose game could not be
// created take no part.
func findDuplicates(results []replay.Result, matchPlies bool) []string {
	detector := hashing.NewDuplicateDetector(matchPlies)
	dups := make([]string, len(results))
	for i, r := range results {
		if r.GameID == "" {
			continue
		}
		if first, dup := detector.CheckAndAdd(r.Signature); dup {
			dups[i] = first.Name
		}
	}
	return dups
}

func countFailed(results []replay.Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}

func countNonEmpty(ss []string) int {
	n := 0
	for _, s := range ss {
		if s != "" {
			n++
		}
	}
	return n
}

// writeReplayReport prints one line per result, or a JSON array. dups may
// be nil.
func writeReplayReport(w io.Writer, results []replay.Result, dups []string, format config.OutputFormat) error {
	duplicateOf := func(i int) string {
		if i < len(dups) {
			return dups[i]
		}
		return ""
	}

	if format == config.JSONFormat {
		reports := make([]replayReport, len(results))
		for i, r := range results {
			reports[i] = replayReport{Result: r, DuplicateOf: duplicateOf(i)}
			if r.Err != nil {
				reports[i].Error = r.Err.Error()
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	for i, r := range results {
		line := r.String()
		if first := duplicateOf(i); first != "" {
			line += " (same position as " + first + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
