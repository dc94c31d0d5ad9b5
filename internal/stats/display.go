/*
PURPOSE:
  Human-readable multi-line report for a single ExecutionStats record,
  plus the reusable solution-vector formatter.

REQUIREMENTS:
  User-specified:
  - Fixed line order: status, objective, primal/dual feasibility,
    solution, iterations, elapsed time, then solver-specific pairs
    (only when present).
  - Long vectors are truncated: first four elements, an ellipsis, the
    last element. Empty vectors render as the empty-set glyph.

  Implementation-discovered:
  - The vector formatter is parameterizable (hosts with huge or
    structured solutions want their own rendering).
  - Solver-specific keys print sorted, so repeated runs diff cleanly.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/cli (demo)

ERROR HANDLING:
  - Print only fails if the io.Writer fails; a valid record always
    renders.

IMPLEMENTATION RULES:
  - Output is free-form for humans, not machine-parsed; no stability
    guarantee beyond what the tests pin down.

USAGE:
  rec.Print(os.Stdout)
  rec.Print(os.Stdout, stats.WithVectorFormatter(myFmt))

SELF-HEALING INSTRUCTIONS:
  - New record fields get a line here if they belong in the report.

RELATED FILES:
  - internal/stats/stats.go

MAINTENANCE:
  - Keep in step with the record's field set.
*/

package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// VectorFormatter renders a solution vector for display.
type VectorFormatter func([]float64) string

// PrintOption adjusts Print's behavior.
type PrintOption func(*printConfig)

type printConfig struct {
	vecFmt VectorFormatter
}

// WithVectorFormatter overrides how the solution vector is rendered.
func WithVectorFormatter(f VectorFormatter) PrintOption {
	return func(c *printConfig) { c.vecFmt = f }
}

// FormatVector renders a vector compactly: the empty set glyph for an
// empty vector, all elements when there are at most five, otherwise
// the first four, an ellipsis, and the last element.
func FormatVector(x []float64) string {
	if len(x) == 0 {
		return "∅"
	}
	parts := make([]string, 0, 6)
	if len(x) <= 5 {
		for _, v := range x {
			parts = append(parts, fmt.Sprintf("%g", v))
		}
	} else {
		for _, v := range x[:4] {
			parts = append(parts, fmt.Sprintf("%g", v))
		}
		parts = append(parts, "⋯", fmt.Sprintf("%g", x[len(x)-1]))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Print writes the full multi-line report for the record.
func (s *ExecutionStats) Print(w io.Writer, opts ...PrintOption) error {
	cfg := printConfig{vecFmt: FormatVector}
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder
	b.WriteString("Execution stats\n")
	fmt.Fprintf(&b, "  status: %s\n", s.StatusDescription())
	fmt.Fprintf(&b, "  objective value: %.8e\n", s.objective)
	fmt.Fprintf(&b, "  primal feasibility: %.8e\n", s.primalFeas)
	fmt.Fprintf(&b, "  dual feasibility: %.8e\n", s.dualFeas)
	fmt.Fprintf(&b, "  solution: %s\n", cfg.vecFmt(s.solution))
	fmt.Fprintf(&b, "  iterations: %d\n", s.iter)
	fmt.Fprintf(&b, "  elapsed time: %.8e\n", s.elapsedTime)

	if len(s.solverSpecific) > 0 {
		b.WriteString("  solver specific:\n")
		keys := make([]string, 0, len(s.solverSpecific))
		for k := range s.solverSpecific {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "    %s: %v\n", k, s.solverSpecific[k])
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
