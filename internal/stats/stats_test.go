package stats

import (
	"math"
	"testing"

	"github.com/daryltucker/solver-stats/internal/nlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeModel is a plain (non-least-squares) model double.
type fakeModel struct {
	unconstrained bool
	counters      nlp.Counters
}

func (m *fakeModel) IsUnconstrained() bool  { return m.unconstrained }
func (m *fakeModel) Counters() nlp.Counters { return m.counters }

// fakeNLSModel is a least-squares model double.
type fakeNLSModel struct {
	unconstrained bool
	counters      nlp.NLSCounters
}

func (m *fakeNLSModel) IsUnconstrained() bool        { return m.unconstrained }
func (m *fakeNLSModel) Counters() nlp.Counters       { return m.counters.Counters }
func (m *fakeNLSModel) NLSCounters() nlp.NLSCounters { return m.counters }

func TestNewDefaultsUnconstrained(t *testing.T) {
	rec, err := New(StatusUnknown, &fakeModel{unconstrained: true})
	require.NoError(t, err)

	assert.True(t, math.IsInf(rec.Objective(), 1))
	assert.True(t, math.IsInf(rec.DualFeas(), 1))
	assert.Equal(t, 0.0, rec.PrimalFeas())
	assert.Equal(t, -1, rec.Iter())
	assert.True(t, math.IsInf(rec.ElapsedTime(), 1))
	assert.Empty(t, rec.Solution())
	assert.Empty(t, rec.SolverSpecific())
}

func TestNewDefaultsConstrained(t *testing.T) {
	rec, err := New(StatusUnknown, &fakeModel{unconstrained: false})
	require.NoError(t, err)

	assert.True(t, math.IsInf(rec.PrimalFeas(), 1))
}

func TestNewInvalidStatus(t *testing.T) {
	for _, key := range []Status{"", "optimal", "does_not_exist"} {
		_, err := New(key, &fakeModel{})
		require.ErrorIs(t, err, ErrInvalidStatus, "key %q", key)
	}
}

func TestNewOptions(t *testing.T) {
	rec, err := New(StatusFirstOrder, &fakeModel{unconstrained: true},
		WithSolution([]float64{1, 2, 3}),
		WithObjective(1.5),
		WithDualFeas(1e-9),
		WithPrimalFeas(2e-8),
		WithIter(10),
		WithElapsedTime(0.25),
		WithSolverSpecific("radius", 0.5),
		WithSolverSpecific("penalty", 10.0),
	)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, rec.Solution())
	assert.Equal(t, 1.5, rec.Objective())
	assert.Equal(t, 1e-9, rec.DualFeas())
	assert.Equal(t, 2e-8, rec.PrimalFeas())
	assert.Equal(t, 10, rec.Iter())
	assert.Equal(t, 0.25, rec.ElapsedTime())
	assert.Equal(t, map[string]any{"radius": 0.5, "penalty": 10.0}, rec.SolverSpecific())
}

func TestCountersAreSnapshot(t *testing.T) {
	m := &fakeModel{counters: nlp.Counters{Obj: 3, Grad: 2}}
	rec, err := New(StatusFirstOrder, m)
	require.NoError(t, err)

	// Mutating the model after construction must not leak into the
	// record.
	m.counters.Obj = 100
	m.counters.Grad = 100

	n, ok := rec.Counter("neval_obj")
	require.True(t, ok)
	assert.Equal(t, 3, n)
	n, ok = rec.Counter("neval_grad")
	require.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestLeastSquaresCounters(t *testing.T) {
	m := &fakeNLSModel{counters: nlp.NLSCounters{
		Counters:      nlp.Counters{Obj: 4, Grad: 1},
		Residual:      7,
		JProdResidual: 2,
	}}
	rec, err := New(StatusSmallResidual, m)
	require.NoError(t, err)

	snap := rec.Counters()
	assert.Equal(t, 4, snap["neval_obj"])
	assert.Equal(t, 7, snap["neval_residual"])
	assert.Equal(t, 2, snap["neval_jprod_residual"])
	// The base set appears once, not nested.
	assert.Len(t, snap, 13)
}

func TestBaseModelHasNoResidualCounters(t *testing.T) {
	rec, err := New(StatusFirstOrder, &fakeModel{})
	require.NoError(t, err)

	_, ok := rec.Counter("neval_residual")
	assert.False(t, ok)
	assert.Len(t, rec.Counters(), 8)
}

func TestSolutionIsCopied(t *testing.T) {
	x := []float64{1, 2}
	rec, err := New(StatusFirstOrder, &fakeModel{}, WithSolution(x))
	require.NoError(t, err)

	x[0] = 99
	assert.Equal(t, []float64{1, 2}, rec.Solution())

	got := rec.Solution()
	got[1] = 99
	assert.Equal(t, []float64{1, 2}, rec.Solution())
}

func TestStringOneLineSummary(t *testing.T) {
	rec, err := New(StatusMaxTime, &fakeModel{})
	require.NoError(t, err)

	assert.Equal(t, "Execution stats: maximum elapsed time", rec.String())
}
