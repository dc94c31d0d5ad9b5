/*
PURPOSE:
  Generic field access and tabular rendering for ExecutionStats.
  Maps a requested field name to a typed, fixed-width textual
  representation so headers and rows line up as columns in a log.

REQUIREMENTS:
  User-specified:
  - Resolve, in order: status (as its description), evaluation-counter
    names, declared record fields; anything else is an unknown field.
  - Fixed widths: integers %7d, reals %15.8e, everything else %8s.
  - Head/Line joined with a two-space separator, matching 1:1.

  Implementation-discovered:
  - One static lookup table built at init, no reflection.
  - The header-label table and the field table are maintained
    separately and can drift; a headered-but-unformattable field is a
    registration bug (init panic), a formattable-but-unheadered field
    is a legitimate runtime error (ErrMissingHeaderLabel).

ARCHITECTURE INTEGRATION:
  - Used by: internal/output/table.go, internal/engine

ERROR HANDLING:
  - ErrUnknownField, ErrMissingHeaderLabel. Programmer errors;
    propagate immediately, no silent defaults.

IMPLEMENTATION RULES:
  - Counter names resolve against the record's own snapshot: residual
    counters exist only on records built from least-squares models, so
    asking a base record for neval_residual is an unknown field.
  - Keep header label widths aligned with the value widths (7 for
    ints, 15 for reals, 8 for status).

USAGE:
  head, _ := stats.Head([]string{"status", "iter"})
  line, _ := rec.Line([]string{"status", "iter"})

SELF-HEALING INSTRUCTIONS:
  - Adding a field: fieldTable entry (+ headerLabels if it should be
    headerable). The init check catches a header without a field.

RELATED FILES:
  - internal/stats/stats.go
  - internal/nlp/model.go

MAINTENANCE:
  - Keep counter names in sync with nlp.Counters/NLSCounters Snapshot.
*/

package stats

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownField is returned when a requested field name is neither a
// counter nor a declared record field.
var ErrUnknownField = errors.New("unknown field")

// ErrMissingHeaderLabel is returned by Head for a field with no entry
// in the header-label table.
var ErrMissingHeaderLabel = errors.New("no header label for field")

// fieldSep separates columns in Head and Line output.
const fieldSep = "  "

type fieldKind int

const (
	kindInt fieldKind = iota
	kindFloat
	kindString
)

type fieldSpec struct {
	kind fieldKind
	get  func(*ExecutionStats) any
}

// fieldTable maps the record's declared field names to accessors.
// Built once; read-only afterwards.
var fieldTable = map[string]fieldSpec{
	"status":          {kindString, func(s *ExecutionStats) any { return s.StatusDescription() }},
	"solution":        {kindString, func(s *ExecutionStats) any { return FormatVector(s.solution) }},
	"objective":       {kindFloat, func(s *ExecutionStats) any { return s.objective }},
	"dual_feas":       {kindFloat, func(s *ExecutionStats) any { return s.dualFeas }},
	"primal_feas":     {kindFloat, func(s *ExecutionStats) any { return s.primalFeas }},
	"iter":            {kindInt, func(s *ExecutionStats) any { return s.iter }},
	"elapsed_time":    {kindFloat, func(s *ExecutionStats) any { return s.elapsedTime }},
	"solver_specific": {kindString, func(s *ExecutionStats) any { return formatSolverSpecific(s.solverSpecific) }},
}

// counterNames is the full evaluation-counter vocabulary (base +
// least-squares). Whether a given record actually carries a name
// depends on the model it was built from.
var counterNames = map[string]struct{}{
	"neval_obj":             {},
	"neval_grad":            {},
	"neval_cons":            {},
	"neval_jac":             {},
	"neval_jprod":           {},
	"neval_jtprod":          {},
	"neval_hess":            {},
	"neval_hprod":           {},
	"neval_residual":        {},
	"neval_jac_residual":    {},
	"neval_jprod_residual":  {},
	"neval_jtprod_residual": {},
	"neval_hprod_residual":  {},
}

// headerLabels holds the fixed display header per field name. Widths
// match the formatted value widths so columns align. Residual
// counters, solution and solver_specific intentionally have no label.
var headerLabels = map[string]string{
	"status":       "  Status",
	"iter":         "   Iter",
	"neval_obj":    "   #obj",
	"neval_grad":   "  #grad",
	"neval_cons":   "  #cons",
	"neval_jac":    "   #jac",
	"neval_jprod":  " #jprod",
	"neval_jtprod": "#jtprod",
	"neval_hess":   "  #hess",
	"neval_hprod":  " #hprod",
	"objective":    "              f",
	"dual_feas":    "      dual_feas",
	"primal_feas":  "    primal_feas",
	"elapsed_time": "   elapsed_time",
}

func init() {
	// Every headered field must be formattable; catch drift at
	// registration time rather than in a log line.
	for name := range headerLabels {
		if _, isCounter := counterNames[name]; isCounter {
			continue
		}
		if _, isField := fieldTable[name]; isField {
			continue
		}
		panic(fmt.Sprintf("stats: header label %q has no formattable field", name))
	}
}

// GetField formats one field of the record by name.
// status resolves to its description; counter names to their
// snapshotted counts; declared fields to their values. The width is
// fixed by the field's kind: %7d, %15.8e or %8s.
func (s *ExecutionStats) GetField(name string) (string, error) {
	if name == "status" {
		return fmt.Sprintf("%8s", s.StatusDescription()), nil
	}
	if _, isCounter := counterNames[name]; isCounter {
		n, ok := s.counters[name]
		if !ok {
			// e.g. a residual counter requested on a record built
			// from a non-least-squares model.
			return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		return fmt.Sprintf("%7d", n), nil
	}
	spec, ok := fieldTable[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	switch spec.kind {
	case kindInt:
		return fmt.Sprintf("%7d", spec.get(s)), nil
	case kindFloat:
		return fmt.Sprintf("%15.8e", spec.get(s)), nil
	default:
		return fmt.Sprintf("%8s", spec.get(s)), nil
	}
}

// Head renders the header row for the given field names, two-space
// separated. Pairs 1:1 with Line over the same field list.
func Head(fields []string) (string, error) {
	labels := make([]string, len(fields))
	for i, name := range fields {
		label, ok := headerLabels[name]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrMissingHeaderLabel, name)
		}
		labels[i] = label
	}
	return strings.Join(labels, fieldSep), nil
}

// Line renders one table row for the record, two-space separated, in
// the given field order.
func (s *ExecutionStats) Line(fields []string) (string, error) {
	cols := make([]string, len(fields))
	for i, name := range fields {
		v, err := s.GetField(name)
		if err != nil {
			return "", err
		}
		cols[i] = v
	}
	return strings.Join(cols, fieldSep), nil
}

func formatSolverSpecific(m map[string]any) string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s: %v", k, m[k])
	}
	return strings.Join(pairs, ", ")
}
