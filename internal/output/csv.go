/*
PURPOSE:
  Exports execution records to a CSV file with raw machine-readable
  values (no fixed-width padding), for spreadsheet/jq-style analysis.

REQUIREMENTS:
  User-specified:
  - Output to CSV.
  - Keep file handle open for flushing.

  Implementation-discovered:
  - CSV carries the raw status key, not the description; descriptions
    are for humans, keys are the stable cross-solver vocabulary.
  - solver_specific has no fixed schema, so it travels as one JSON
    cell.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/stats.ExecutionStats

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write (critical for crash resilience).
  - Use Mutex if concurrent writes are expected.

USAGE:
  w, err := output.NewCSVWriter("records.csv")
  w.Write(rec)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - If the column set changes, update csvHeader and Write together.

RELATED FILES:
  - internal/stats/stats.go

MAINTENANCE:
  - Update Write() mapping when the record gains fields.
*/

package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/daryltucker/solver-stats/internal/stats"
)

var csvHeader = []string{
	"status", "objective", "dual_feas", "primal_feas", "iter",
	"elapsed_time", "neval_obj", "neval_grad", "neval_cons",
	"neval_jac", "neval_jprod", "neval_jtprod", "neval_hess",
	"neval_hprod", "solution", "solver_specific",
}

// CSVWriter handles writing execution records to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single record to the CSV file.
// It is thread-safe.
func (cw *CSVWriter) Write(rec *stats.ExecutionStats) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	// encoding/json rejects non-finite floats; a record whose
	// diagnostics carry an Inf must fail loudly, not export an empty
	// cell.
	solBytes, err := json.Marshal(rec.Solution())
	if err != nil {
		return fmt.Errorf("encode solution: %w", err)
	}
	extraBytes, err := json.Marshal(rec.SolverSpecific())
	if err != nil {
		return fmt.Errorf("encode solver_specific: %w", err)
	}
	counters := rec.Counters()

	record := []string{
		string(rec.Status()),
		formatG(rec.Objective()),
		formatG(rec.DualFeas()),
		formatG(rec.PrimalFeas()),
		strconv.Itoa(rec.Iter()),
		formatG(rec.ElapsedTime()),
		strconv.Itoa(counters["neval_obj"]),
		strconv.Itoa(counters["neval_grad"]),
		strconv.Itoa(counters["neval_cons"]),
		strconv.Itoa(counters["neval_jac"]),
		strconv.Itoa(counters["neval_jprod"]),
		strconv.Itoa(counters["neval_jtprod"]),
		strconv.Itoa(counters["neval_hess"]),
		strconv.Itoa(counters["neval_hprod"]),
		string(solBytes),
		string(extraBytes),
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}

func formatG(v float64) string {
	return fmt.Sprintf("%g", v)
}
