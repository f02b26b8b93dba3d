package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// TestSnapshotWriter_Interface verifies that writers implement the interface
func TestSnapshotWriter_Interface(t *testing.T) {
	var buf bytes.Buffer

	var _ SnapshotWriter = NewTextWriter(&buf, config.NewOutputConfig())
	var _ SnapshotWriter = NewJSONWriter(&buf)
	var _ SnapshotWriter = NewJSONWriterBatch(&buf)
}

func TestNewWriter_Format(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	if _, ok := NewWriter(&buf, cfg).(*TextWriter); !ok {
		t.Error("NewWriter() with text format did not return a *TextWriter")
	}
	cfg.Output.Format = config.JSONFormat
	if _, ok := NewWriter(&buf, cfg).(*JSONWriter); !ok {
		t.Error("NewWriter() with JSON format did not return a *JSONWriter")
	}
}

func TestTextWriter_WriteSnapshot(t *testing.T) {
	var buf bytes.Buffer
	writer := NewTextWriter(&buf, config.NewOutputConfig())

	if err := writer.WriteSnapshot(newGame(t, "").Snapshot()); err != nil {
		t.Fatalf("WriteSnapshot failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "8 r|n|b|q|k|b|n|r|\n") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
	if err := writer.Flush(); err != nil {
		t.Errorf("Flush failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestJSONWriter_WriteSnapshot(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)

	if err := writer.WriteSnapshot(newGame(t, "").Snapshot()); err != nil {
		t.Fatalf("WriteSnapshot failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"gameId": "test-game"`) {
		t.Errorf("missing gameId in JSON:\n%s", buf.String())
	}

	// Flush and Close have nothing to do in single mode
	n := buf.Len()
	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if buf.Len() != n {
		t.Error("Close wrote output in single mode")
	}
}

// TestJSONWriterBatch_Close verifies Close flushes pending snapshots
func TestJSONWriterBatch_Close(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriterBatch(&buf)
	g := newGame(t, "")

	writer.WriteSnapshot(g.Snapshot())
	writer.WriteSnapshot(g.Snapshot())
	if buf.Len() != 0 {
		t.Fatal("batch writer wrote before Close")
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var transcript struct {
		Snapshots []map[string]interface{} `json:"snapshots"`
	}
	if err := json.Unmarshal(buf.Bytes(), &transcript); err != nil {
		t.Fatalf("transcript is not valid JSON: %v", err)
	}
	if len(transcript.Snapshots) != 2 {
		t.Errorf("len(Snapshots) = %d, want 2", len(transcript.Snapshots))
	}

	// A second Close has nothing left to write
	n := buf.Len()
	writer.Close()
	if buf.Len() != n {
		t.Error("second Close wrote output")
	}
}
