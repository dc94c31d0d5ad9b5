/*
PURPOSE:
  Defines the contract between solver-stats and the optimization model
  that produced a solve. solver-stats never evaluates anything itself;
  it only reads evaluation counters and capabilities off the model.

REQUIREMENTS:
  User-specified:
  - Expose an "is this problem unconstrained?" capability query.
  - Expose named, non-negative evaluation counters.
  - Least-squares models carry residual-specific counters on top of the
    base set.

  Implementation-discovered:
  - Snapshots must be independent copies (records outlive the model's
    counter state).
  - Counter names are the stable vocabulary used by tabular output, so
    they live here as constants of the snapshot keys.

ARCHITECTURE INTEGRATION:
  - Used by: internal/stats (construction-time counter snapshot)
  - Implemented by: the hosting solver; test doubles in _test files.

ERROR HANDLING:
  - None (pure data contract).

IMPLEMENTATION RULES:
  - Counters() returns by value; a returned Counters is already a copy.
  - NLSCounters embeds Counters; Snapshot() must not double-count the
    embedded base fields.

USAGE:
  snap := model.Counters().Snapshot()

SELF-HEALING INSTRUCTIONS:
  - If a new evaluation kind is added, extend the struct, Snapshot(),
    and the header-label table in internal/stats/fields.go.

RELATED FILES:
  - internal/stats/stats.go

MAINTENANCE:
  - Update when the evaluation-counter vocabulary grows.
*/

package nlp

// Counters tracks how many times each mathematical operator of a
// nonlinear program was evaluated during a solve.
type Counters struct {
	Obj    int // objective f(x)
	Grad   int // gradient of f
	Cons   int // constraint vector c(x)
	Jac    int // constraint Jacobian
	JProd  int // Jacobian-vector products
	JTProd int // Jacobian-transpose-vector products
	Hess   int // Lagrangian Hessian
	HProd  int // Hessian-vector products
}

// NLSCounters extends Counters for nonlinear-least-squares models,
// adding residual-specific evaluation counts.
type NLSCounters struct {
	Counters

	Residual       int
	JacResidual    int
	JProdResidual  int
	JTProdResidual int
	HProdResidual  int
}

// Snapshot returns the counters as an independent name->count map.
// Keys follow the neval_* naming used by tabular output.
func (c Counters) Snapshot() map[string]int {
	return map[string]int{
		"neval_obj":    c.Obj,
		"neval_grad":   c.Grad,
		"neval_cons":   c.Cons,
		"neval_jac":    c.Jac,
		"neval_jprod":  c.JProd,
		"neval_jtprod": c.JTProd,
		"neval_hess":   c.Hess,
		"neval_hprod":  c.HProd,
	}
}

// Snapshot returns the extended counter set as one flat map.
// The embedded base counters appear exactly once.
func (c NLSCounters) Snapshot() map[string]int {
	snap := c.Counters.Snapshot()
	snap["neval_residual"] = c.Residual
	snap["neval_jac_residual"] = c.JacResidual
	snap["neval_jprod_residual"] = c.JProdResidual
	snap["neval_jtprod_residual"] = c.JTProdResidual
	snap["neval_hprod_residual"] = c.HProdResidual
	return snap
}

// Model is the minimal view of an optimization model that solver-stats
// needs: a capability query and the evaluation counters.
//
// Implementations work in float64; default numeric values seeded from a
// model (infinities, zero feasibility) are float64 as well.
type Model interface {
	// IsUnconstrained reports whether the problem has no constraints.
	// Records built from an unconstrained model default their primal
	// feasibility to zero instead of +Inf.
	IsUnconstrained() bool

	// Counters returns the current evaluation counts. Returned by
	// value, so the caller holds a copy.
	Counters() Counters
}

// LeastSquaresModel is a Model whose objective is a sum of squared
// residuals. It exposes the extended counter set.
type LeastSquaresModel interface {
	Model

	NLSCounters() NLSCounters
}
