package stats

import (
	"regexp"
	"strings"
	"testing"

	"github.com/daryltucker/solver-stats/internal/nlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecord(t *testing.T, opts ...Option) *ExecutionStats {
	t.Helper()
	rec, err := New(StatusFirstOrder, &fakeModel{
		unconstrained: true,
		counters:      nlp.Counters{Obj: 3, Grad: 2},
	}, opts...)
	require.NoError(t, err)
	return rec
}

func TestGetFieldStatusUsesDescription(t *testing.T) {
	rec := mustRecord(t)
	got, err := rec.GetField("status")
	require.NoError(t, err)
	// Description, not the raw key; %8s widens short strings only.
	assert.Equal(t, "first-order stationary", got)

	rec2, err := New(StatusUnknown, &fakeModel{})
	require.NoError(t, err)
	got, err = rec2.GetField("status")
	require.NoError(t, err)
	assert.Equal(t, " unknown", got)
	assert.Len(t, got, 8)
}

func TestGetFieldIntegerWidth(t *testing.T) {
	rec := mustRecord(t, WithIter(10))

	got, err := rec.GetField("iter")
	require.NoError(t, err)
	assert.Equal(t, "     10", got)
	assert.Len(t, got, 7)

	got, err = rec.GetField("neval_obj")
	require.NoError(t, err)
	assert.Equal(t, "      3", got)
}

func TestGetFieldFloatFormat(t *testing.T) {
	rec := mustRecord(t, WithObjective(1.5))

	got, err := rec.GetField("objective")
	require.NoError(t, err)
	assert.Equal(t, " 1.50000000e+00", got)
	assert.Len(t, got, 15)
	assert.Regexp(t, regexp.MustCompile(`^\s*-?\d\.\d{8}e[+-]\d+$`), got)

	got, err = rec.GetField("primal_feas")
	require.NoError(t, err)
	assert.Equal(t, " 0.00000000e+00", got)
}

func TestGetFieldVectorAndSolverSpecific(t *testing.T) {
	rec := mustRecord(t,
		WithSolution([]float64{1, 2}),
		WithSolverSpecific("radius", 0.5),
	)

	got, err := rec.GetField("solution")
	require.NoError(t, err)
	assert.Equal(t, "   [1 2]", got)

	got, err = rec.GetField("solver_specific")
	require.NoError(t, err)
	assert.Equal(t, "radius: 0.5", got)
}

func TestGetFieldUnknown(t *testing.T) {
	rec := mustRecord(t)
	for _, name := range []string{"", "bogus", "Objective", "neval_bogus"} {
		_, err := rec.GetField(name)
		require.ErrorIs(t, err, ErrUnknownField, "name %q", name)
	}
}

func TestGetFieldResidualCounterOnBaseRecord(t *testing.T) {
	// Residual counters only exist on least-squares records.
	rec := mustRecord(t)
	_, err := rec.GetField("neval_residual")
	require.ErrorIs(t, err, ErrUnknownField)

	nlsRec, err := New(StatusSmallResidual, &fakeNLSModel{
		counters: nlp.NLSCounters{Residual: 5},
	})
	require.NoError(t, err)
	got, err := nlsRec.GetField("neval_residual")
	require.NoError(t, err)
	assert.Equal(t, "      5", got)
}

func TestHead(t *testing.T) {
	got, err := Head([]string{"status", "iter"})
	require.NoError(t, err)
	assert.Equal(t, "  Status     Iter", got)
}

func TestHeadMissingLabel(t *testing.T) {
	for _, name := range []string{"solution", "solver_specific", "neval_residual", "bogus"} {
		_, err := Head([]string{"status", name})
		require.ErrorIs(t, err, ErrMissingHeaderLabel, "name %q", name)
	}
}

func TestHeadLinePairing(t *testing.T) {
	fields := []string{"status", "iter", "neval_obj", "objective", "elapsed_time"}
	rec := mustRecord(t, WithIter(3), WithObjective(2.0), WithElapsedTime(0.5))

	head, err := Head(fields)
	require.NoError(t, err)
	line, err := rec.Line(fields)
	require.NoError(t, err)

	assert.Equal(t, len(fields), len(strings.Split(head, fieldSep)))
	assert.Equal(t, len(fields), len(strings.Split(line, fieldSep)))
}

func TestLineEndToEnd(t *testing.T) {
	rec := mustRecord(t, WithObjective(1.5), WithIter(10))

	line, err := rec.Line([]string{"status", "neval_obj"})
	require.NoError(t, err)
	assert.Equal(t, "first-order stationary        3", line)
}

func TestLinePropagatesUnknownField(t *testing.T) {
	rec := mustRecord(t)
	_, err := rec.Line([]string{"status", "bogus"})
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestEveryHeaderLabelResolves(t *testing.T) {
	// The init check panics on drift; this keeps the property visible
	// in the test log as well.
	nlsRec, err := New(StatusFirstOrder, &fakeNLSModel{})
	require.NoError(t, err)
	for name := range headerLabels {
		_, err := nlsRec.GetField(name)
		assert.NoError(t, err, "header label %q", name)
	}
}
