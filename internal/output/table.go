/*
PURPOSE:
  Writes execution records as an aligned fixed-width table: one header
  line, then one line per record, suitable for greppable logs.

REQUIREMENTS:
  User-specified:
  - Header and rows must use the same field list so columns line up.

  Implementation-discovered:
  - The header is validated (and written) at construction time, so an
    unheaderable field list fails before any row is produced.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/stats.ExecutionStats

ERROR HANDLING:
  - Propagates ErrMissingHeaderLabel / ErrUnknownField from the stats
    package; never writes a partial row.

IMPLEMENTATION RULES:
  - Write to any io.Writer; the engine decides where it goes.
  - Use Mutex if concurrent writes are expected.

USAGE:
  w, err := output.NewTableWriter(os.Stdout, fields)
  w.Write(rec)

SELF-HEALING INSTRUCTIONS:
  - Column misalignment means a width changed in internal/stats, not
    here.

RELATED FILES:
  - internal/stats/fields.go

MAINTENANCE:
  - None; all formatting lives in internal/stats.
*/

package output

import (
	"fmt"
	"io"
	"sync"

	"github.com/daryltucker/solver-stats/internal/stats"
)

// TableWriter renders execution records as aligned columns.
type TableWriter struct {
	w      io.Writer
	fields []string
	mu     sync.Mutex
}

// NewTableWriter writes the header line immediately and returns a
// writer producing one row per record for the same field list.
func NewTableWriter(w io.Writer, fields []string) (*TableWriter, error) {
	head, err := stats.Head(fields)
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(w, head); err != nil {
		return nil, err
	}
	return &TableWriter{
		w:      w,
		fields: append([]string(nil), fields...),
	}, nil
}

// Write writes a single record as one table row.
// It is thread-safe.
func (tw *TableWriter) Write(rec *stats.ExecutionStats) error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	line, err := rec.Line(tw.fields)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(tw.w, line)
	return err
}
