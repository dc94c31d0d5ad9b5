package stats

import (
	"strings"
	"testing"

	"github.com/daryltucker/solver-stats/internal/nlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVector(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want string
	}{
		{"empty", nil, "∅"},
		{"single", []float64{1.5}, "[1.5]"},
		{"five shown fully", []float64{1, 2, 3, 4, 5}, "[1 2 3 4 5]"},
		{"six truncated", []float64{1, 2, 3, 4, 5, 6}, "[1 2 3 4 ⋯ 6]"},
		{"long truncated", []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 99}, "[0.1 0.2 0.3 0.4 ⋯ 99]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatVector(tt.x))
		})
	}
}

func TestPrintFullReport(t *testing.T) {
	// The end-to-end scenario: 3 objective evals, 2 gradient evals,
	// unconstrained model, first-order stop after 10 iterations.
	rec, err := New(StatusFirstOrder, &fakeModel{
		unconstrained: true,
		counters:      nlp.Counters{Obj: 3, Grad: 2},
	}, WithObjective(1.5), WithIter(10))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, rec.Print(&buf))
	out := buf.String()

	assert.Contains(t, out, "status: first-order stationary")
	assert.Contains(t, out, "objective value: 1.50000000e+00")
	assert.Contains(t, out, "primal feasibility: 0.00000000e+00")
	assert.Contains(t, out, "iterations: 10")
	assert.Contains(t, out, "solution: ∅")
	// No diagnostics attached, so no solver specific block.
	assert.NotContains(t, out, "solver specific")
}

func TestPrintLineOrder(t *testing.T) {
	rec, err := New(StatusFirstOrder, &fakeModel{unconstrained: true})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, rec.Print(&buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	prefixes := []string{
		"Execution stats",
		"  status:",
		"  objective value:",
		"  primal feasibility:",
		"  dual feasibility:",
		"  solution:",
		"  iterations:",
		"  elapsed time:",
	}
	require.Len(t, lines, len(prefixes))
	for i, p := range prefixes {
		assert.True(t, strings.HasPrefix(lines[i], p), "line %d: %q", i, lines[i])
	}
}

func TestPrintSolverSpecificSorted(t *testing.T) {
	rec, err := New(StatusStalled, &fakeModel{},
		WithSolverSpecific("radius", 0.5),
		WithSolverSpecific("active_set_size", 3),
		WithSolverSpecific("penalty", 10.0),
	)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, rec.Print(&buf))
	out := buf.String()

	assert.Contains(t, out, "solver specific:")
	a := strings.Index(out, "active_set_size: 3")
	p := strings.Index(out, "penalty: 10")
	r := strings.Index(out, "radius: 0.5")
	require.True(t, a >= 0 && p >= 0 && r >= 0)
	assert.Less(t, a, p)
	assert.Less(t, p, r)
}

func TestPrintVectorFormatterOverride(t *testing.T) {
	rec, err := New(StatusFirstOrder, &fakeModel{},
		WithSolution([]float64{1, 2, 3}))
	require.NoError(t, err)

	var buf strings.Builder
	err = rec.Print(&buf, WithVectorFormatter(func(x []float64) string {
		return "<3 elems>"
	}))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "solution: <3 elems>")
}
