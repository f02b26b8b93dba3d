package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// SnapshotWriter is the interface for writing game snapshots to output.
// Different implementations handle different output formats (text, JSON).
type SnapshotWriter interface {
	// WriteSnapshot writes a single snapshot to the output.
	WriteSnapshot(snap engine.Snapshot) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers, this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for the configured output format.
func NewWriter(w io.Writer, cfg *config.Config) SnapshotWriter {
	if cfg.Output != nil && cfg.Output.Format == config.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg.Output)
}

// TextWriter writes snapshots as a character grid.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteSnapshot writes the board grid.
func (tw *TextWriter) WriteSnapshot(snap engine.Snapshot) error {
	RenderBoard(tw.w, snap, tw.cfg)
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONTranscript holds several snapshots for batch output.
type JSONTranscript struct {
	Snapshots []engine.Snapshot `json:"snapshots"`
}

// JSONWriter writes snapshots in JSON format.
// By default each snapshot is written as soon as it arrives; a batch writer
// collects them and writes one transcript on Close or Flush.
type JSONWriter struct {
	w     io.Writer
	snaps []engine.Snapshot
	batch bool
}

// NewJSONWriter creates a JSON writer that writes each snapshot immediately.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterBatch creates a JSON writer that buffers snapshots and writes
// them as a transcript.
func NewJSONWriterBatch(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		snaps: make([]engine.Snapshot, 0),
		batch: true,
	}
}

// WriteSnapshot writes a snapshot (or buffers it in batch mode).
func (jw *JSONWriter) WriteSnapshot(snap engine.Snapshot) error {
	if !jw.batch {
		return WriteSnapshotJSON(jw.w, snap)
	}

	// Buffer for batch output
	jw.snaps = append(jw.snaps, snap)
	return nil
}

// Flush writes all buffered snapshots as one transcript.
func (jw *JSONWriter) Flush() error {
	if !jw.batch || len(jw.snaps) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONTranscript{Snapshots: jw.snaps})

	// Clear buffer after writing
	jw.snaps = jw.snaps[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// WriteSnapshotJSON writes one snapshot as indented JSON.
func WriteSnapshotJSON(w io.Writer, snap engine.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
