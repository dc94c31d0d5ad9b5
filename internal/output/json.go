/*
PURPOSE:
  Writes execution records to a JSON Lines file (NDJSON), and loads
  them back for the render command.

REQUIREMENTS:
  User-specified:
  - JSON output for easier parsing.
  - render must consume what solvers wrote here.

  Implementation-discovered:
  - JSON Lines is better for streaming/logging than a single large
    array (append-friendly: one solve, one line).
  - Loading re-validates every status against the closed vocabulary,
    so a corrupted or foreign file fails loudly with the line number.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/stats.ExecutionStats

ERROR HANDLING:
  - Returns error on file creation or write failure; load errors carry
    the offending line number.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder / bufio.Scanner.
  - Thread-safe writer.

USAGE:
  w, err := output.NewJSONWriter("records.jsonl")
  w.Write(rec)
  w.Close()
  recs, err := output.LoadRecords("records.jsonl")

SELF-HEALING INSTRUCTIONS:
  - None specific.

RELATED FILES:
  - internal/stats/json.go

MAINTENANCE:
  - Update if we switch to plain JSON array (not recommended for streaming).
*/

package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/daryltucker/solver-stats/internal/stats"
)

// JSONWriter handles writing records to a JSON Lines file.
type JSONWriter struct {
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter(path string) (*JSONWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &JSONWriter{
		file:    f,
		encoder: json.NewEncoder(f),
	}, nil
}

// Write writes a single record as a JSON line.
func (jw *JSONWriter) Write(rec *stats.ExecutionStats) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	return jw.encoder.Encode(rec)
}

// Close closes the underlying file.
func (jw *JSONWriter) Close() error {
	return jw.file.Close()
}

// LoadRecords reads a JSON Lines file of execution records.
// Blank lines are skipped; any undecodable line aborts the load.
func LoadRecords(path string) ([]*stats.ExecutionStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var recs []*stats.ExecutionStats
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec stats.ExecutionStats
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		recs = append(recs, &rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return recs, nil
}
