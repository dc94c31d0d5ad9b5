/*
PURPOSE:
  Defines ExecutionStats, the record of one solve attempt: status,
  solution vector, objective/feasibility measures, iteration count,
  timing, and a snapshot of the model's evaluation counters.
  solver-stats does not compute anything; this record only stores.

REQUIREMENTS:
  User-specified:
  - Mandatory status (validated against the closed vocabulary) and a
    model reference at construction; everything else optional.
  - Counter snapshot taken exactly once, at construction, independent
    of the model afterwards.
  - Defaults: objective/dual feasibility/elapsed time +Inf, iter -1,
    primal feasibility 0 for unconstrained problems else +Inf.

  Implementation-discovered:
  - Treat the record as immutable after construction: unexported
    fields, functional options, getters. The usage pattern is "finished
    report", not a scratch struct.
  - solver_specific is an open bag; the record stores and iterates it,
    nothing more.

ARCHITECTURE INTEGRATION:
  - Consumes: internal/nlp.Model (capability query + counters)
  - Consumed by: internal/output, internal/engine, internal/cli

ERROR HANDLING:
  - ErrInvalidStatus from New; no partial record is returned.

IMPLEMENTATION RULES:
  - New reads the model's counters synchronously, once. Least-squares
    models contribute their extended counter set (base included once).
  - Getters returning slices/maps return copies; callers cannot mutate
    the record through them.

USAGE:
  rec, err := stats.New(stats.StatusFirstOrder, model,
      stats.WithObjective(1.5), stats.WithIter(10))

SELF-HEALING INSTRUCTIONS:
  - New scalar fields need: a struct field, a default in New, an
    option, a getter, and a fieldTable entry in fields.go.

RELATED FILES:
  - internal/stats/fields.go
  - internal/stats/display.go

MAINTENANCE:
  - Update alongside the nlp counter vocabulary.
*/

package stats

import (
	"fmt"
	"math"

	"github.com/daryltucker/solver-stats/internal/nlp"
)

// ExecutionStats records the outcome of a single solve attempt.
// Built once via New, then read-only.
type ExecutionStats struct {
	status         Status
	solution       []float64
	objective      float64
	dualFeas       float64
	primalFeas     float64
	iter           int
	elapsedTime    float64
	counters       map[string]int
	solverSpecific map[string]any
}

// Option overrides a default field value at construction.
type Option func(*ExecutionStats)

// WithSolution sets the approximate solution vector. The slice is
// copied.
func WithSolution(x []float64) Option {
	return func(s *ExecutionStats) {
		s.solution = append([]float64(nil), x...)
	}
}

// WithObjective sets the objective value at the solution.
func WithObjective(f float64) Option {
	return func(s *ExecutionStats) { s.objective = f }
}

// WithDualFeas sets the dual feasibility (stationarity) measure.
func WithDualFeas(v float64) Option {
	return func(s *ExecutionStats) { s.dualFeas = v }
}

// WithPrimalFeas sets the primal feasibility measure.
func WithPrimalFeas(v float64) Option {
	return func(s *ExecutionStats) { s.primalFeas = v }
}

// WithIter sets the iteration count.
func WithIter(n int) Option {
	return func(s *ExecutionStats) { s.iter = n }
}

// WithElapsedTime sets the wall-clock solve time in seconds.
func WithElapsedTime(secs float64) Option {
	return func(s *ExecutionStats) { s.elapsedTime = secs }
}

// WithSolverSpecific attaches one solver-specific diagnostic
// (e.g. trust-region radius, penalty parameter). Repeatable.
func WithSolverSpecific(key string, value any) Option {
	return func(s *ExecutionStats) {
		if s.solverSpecific == nil {
			s.solverSpecific = make(map[string]any)
		}
		s.solverSpecific[key] = value
	}
}

// New builds an execution record for a solve of the given model.
// The status key must belong to the closed vocabulary. The model's
// evaluation counters are snapshotted here, exactly once; later
// mutation of the model does not affect the record.
func New(status Status, m nlp.Model, opts ...Option) (*ExecutionStats, error) {
	if !status.Valid() {
		// Reuse Describe's error so the caller sees the valid keys.
		_, err := Describe(status)
		return nil, fmt.Errorf("new execution stats: %w", err)
	}

	inf := math.Inf(1)
	s := &ExecutionStats{
		status:      status,
		objective:   inf,
		dualFeas:    inf,
		primalFeas:  inf,
		iter:        -1,
		elapsedTime: inf,
	}
	if m.IsUnconstrained() {
		s.primalFeas = 0
	}

	// Snapshot the counters. Least-squares models contribute the
	// extended set; the embedded base counters appear exactly once.
	if nls, ok := m.(nlp.LeastSquaresModel); ok {
		s.counters = nls.NLSCounters().Snapshot()
	} else {
		s.counters = m.Counters().Snapshot()
	}

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Status returns the termination status key.
func (s *ExecutionStats) Status() Status { return s.status }

// StatusDescription returns the human-readable form of the status.
// Always succeeds for a record built via New.
func (s *ExecutionStats) StatusDescription() string {
	desc, err := Describe(s.status)
	if err != nil {
		// Unreachable for records built via New; keep the key visible
		// rather than hiding it.
		return string(s.status)
	}
	return desc
}

// Solution returns a copy of the approximate solution vector.
func (s *ExecutionStats) Solution() []float64 {
	return append([]float64(nil), s.solution...)
}

// Objective returns the objective value.
func (s *ExecutionStats) Objective() float64 { return s.objective }

// DualFeas returns the dual feasibility measure.
func (s *ExecutionStats) DualFeas() float64 { return s.dualFeas }

// PrimalFeas returns the primal feasibility measure.
func (s *ExecutionStats) PrimalFeas() float64 { return s.primalFeas }

// Iter returns the iteration count (-1 when not recorded).
func (s *ExecutionStats) Iter() int { return s.iter }

// ElapsedTime returns the solve time in seconds.
func (s *ExecutionStats) ElapsedTime() float64 { return s.elapsedTime }

// Counter returns the snapshotted count for an evaluation kind, and
// whether that kind was present on the producing model.
func (s *ExecutionStats) Counter(name string) (int, bool) {
	n, ok := s.counters[name]
	return n, ok
}

// Counters returns a copy of the full counter snapshot.
func (s *ExecutionStats) Counters() map[string]int {
	out := make(map[string]int, len(s.counters))
	for k, v := range s.counters {
		out[k] = v
	}
	return out
}

// SolverSpecific returns a copy of the solver-specific diagnostics.
func (s *ExecutionStats) SolverSpecific() map[string]any {
	out := make(map[string]any, len(s.solverSpecific))
	for k, v := range s.solverSpecific {
		out[k] = v
	}
	return out
}

// String is the one-line summary form: a label plus the status
// description.
func (s *ExecutionStats) String() string {
	return "Execution stats: " + s.StatusDescription()
}
