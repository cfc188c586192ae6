package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optigon/stoneflow/approx"
	"github.com/optigon/stoneflow/solver"
	"github.com/optigon/stoneflow/transport"
)

func reference34(t *testing.T) *transport.Problem {
	t.Helper()
	p, err := transport.NewProblem(
		[][]float64{
			{4, 6, 8, 8},
			{6, 8, 6, 7},
			{5, 7, 6, 8},
		},
		[]float64{40, 60, 50},
		[]float64{20, 30, 50, 50},
	)
	require.NoError(t, err)
	return p
}

// TestSolve_VogelPipeline runs the full seed+refine pipeline with Vogel
// seeding and checks the hand-verified costs of both stages.
func TestSolve_VogelPipeline(t *testing.T) {
	res, err := solver.Solve(reference34(t), solver.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, approx.MethodVogel, res.Method)
	assert.Equal(t, 960.0, res.SeedCost)
	assert.Equal(t, 920.0, res.Plan.Cost)
	assert.True(t, res.Plan.Optimal)
}

// TestSolve_MethodIndependence refines both seeds to the same certified
// optimal cost.
func TestSolve_MethodIndependence(t *testing.T) {
	p := reference34(t)

	optsV := solver.DefaultOptions()
	optsV.Method = approx.MethodVogel
	vogel, err := solver.Solve(p, optsV)
	require.NoError(t, err)

	optsR := solver.DefaultOptions()
	optsR.Method = approx.MethodRussell
	russell, err := solver.Solve(p, optsR)
	require.NoError(t, err)

	assert.Equal(t, vogel.Plan.Cost, russell.Plan.Cost)
	assert.True(t, vogel.Plan.Optimal)
	assert.True(t, russell.Plan.Optimal)
	assert.NotEqual(t, vogel.SeedCost, russell.SeedCost,
		"the two heuristics seed differently on this instance")
}

// TestSeedOnly returns the BFS stage alone with its cost.
func TestSeedOnly(t *testing.T) {
	p := reference34(t)

	allocs, cost, err := solver.SeedOnly(p, approx.MethodRussell)
	require.NoError(t, err)
	assert.Len(t, allocs, 5)
	assert.Equal(t, 930.0, cost)

	_, _, err = solver.SeedOnly(nil, approx.MethodVogel)
	assert.ErrorIs(t, err, solver.ErrNilProblem)
}

// TestRace times both branches and agrees on the certified optimum.
func TestRace(t *testing.T) {
	res, err := solver.Race(reference34(t), solver.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, approx.MethodVogel, res.Vogel.Method)
	assert.Equal(t, approx.MethodRussell, res.Russell.Method)
	assert.Equal(t, res.Vogel.OptimalCost, res.Russell.OptimalCost)
	assert.True(t, res.Vogel.Optimal)
	assert.True(t, res.Russell.Optimal)
	assert.Equal(t, 960.0, res.Vogel.SeedCost)
	assert.Equal(t, 930.0, res.Russell.SeedCost)
	assert.GreaterOrEqual(t, res.Vogel.Total(), res.Vogel.SeedTime)
}

// TestSolve_NilProblem verifies the nil guards.
func TestSolve_NilProblem(t *testing.T) {
	_, err := solver.Solve(nil, solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrNilProblem)

	_, err = solver.Race(nil, solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrNilProblem)
}

// TestSolve_UnknownMethod propagates the approx dispatch error.
func TestSolve_UnknownMethod(t *testing.T) {
	opts := solver.DefaultOptions()
	opts.Method = approx.Method(42)
	_, err := solver.Solve(reference34(t), opts)
	assert.ErrorIs(t, err, approx.ErrUnknownMethod)
}
