package sensitivity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optigon/stoneflow/approx"
	"github.com/optigon/stoneflow/sensitivity"
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

// TestFromCrisp_Shift checks that a positive perturbation level moves the
// defuzzified value by exactly level·x above the crisp original.
func TestFromCrisp_Shift(t *testing.T) {
	f := sensitivity.FromCrisp(10, 0.05)

	assert.InDelta(t, 10.5, f.Defuzzify(), 1e-9)
	assert.Equal(t, 1.0, f.UpperHeight)
	assert.Equal(t, 0.7, f.LowerHeight)
}

// TestFromCrisp_ZeroLevel checks the zero-shift round trip: the eight
// vertices are symmetric around x, so defuzzification recovers it.
func TestFromCrisp_ZeroLevel(t *testing.T) {
	f := sensitivity.FromCrisp(8, 0)
	assert.InDelta(t, 8.0, f.Defuzzify(), 1e-9)
}

// TestFromCrisp_VertexOrder checks that both trapezoids are well formed,
// with the LMF support nested inside the UMF support.
func TestFromCrisp_VertexOrder(t *testing.T) {
	f := sensitivity.FromCrisp(25, 0.10)

	for i := 0; i < 3; i++ {
		assert.LessOrEqual(t, f.Upper[i], f.Upper[i+1], "UMF vertex %d", i)
		assert.LessOrEqual(t, f.Lower[i], f.Lower[i+1], "LMF vertex %d", i)
	}
	assert.LessOrEqual(t, f.Upper[0], f.Lower[0])
	assert.LessOrEqual(t, f.Lower[3], f.Upper[3])
}

// TestFromCrisp_ClampTinyValue checks that left supports of a near-zero
// coefficient are pinned at the positivity floor instead of going negative.
func TestFromCrisp_ClampTinyValue(t *testing.T) {
	f := sensitivity.FromCrisp(0.01, 0)

	assert.Equal(t, 0.01, f.Upper[0])
	assert.Equal(t, 0.01, f.Lower[0])
	assert.Greater(t, f.Defuzzify(), 0.01, "clamping skews the centroid upward")
}

// TestWorstCell_Reference pins the probe target of the Vogel seed on the
// reference instance: cell (2,3) carries 8·40 = 320, the largest product.
func TestWorstCell_Reference(t *testing.T) {
	p := reference34(t)
	seed, _, err := solver.SeedOnly(p, approx.MethodVogel)
	require.NoError(t, err)

	cell, product, err := sensitivity.WorstCell(p, seed)
	require.NoError(t, err)

	assert.Equal(t, transport.Cell{Row: 2, Col: 3}, cell)
	assert.Equal(t, 320.0, product)
}

// TestWorstCell_Empty checks the empty-plan guard.
func TestWorstCell_Empty(t *testing.T) {
	p := reference34(t)
	_, _, err := sensitivity.WorstCell(p, nil)
	assert.ErrorIs(t, err, sensitivity.ErrNoAllocations)
}

// TestAnalyze_Reference runs the full two-method study on the reference
// instance and checks the structural invariants of the report.
func TestAnalyze_Reference(t *testing.T) {
	p := reference34(t)
	levels := []float64{0.05, 0.10, 0.15}

	rep, err := sensitivity.Analyze(p, levels, solver.DefaultOptions())
	require.NoError(t, err)

	for _, mr := range []sensitivity.MethodReport{rep.Vogel, rep.Russell} {
		assert.Equal(t, 920.0, mr.OptimalCost, "%s base optimum", mr.Method)
		require.Len(t, mr.Levels, len(levels), "%s level count", mr.Method)
		for i, lr := range mr.Levels {
			assert.Equal(t, levels[i], lr.Level)
			base := p.Cost(mr.Worst.Row, mr.Worst.Col)
			assert.Greater(t, lr.PerturbedCost, base,
				"%s level %v shifts the coefficient upward", mr.Method, lr.Level)
			assert.GreaterOrEqual(t, lr.Change, 0.0)
		}
		assert.GreaterOrEqual(t, mr.AverageChange, 0.0)
	}

	assert.Equal(t, transport.Cell{Row: 2, Col: 3}, rep.Vogel.Worst)
	assert.Equal(t, 960.0, rep.Vogel.SeedCost)
	assert.Equal(t, 930.0, rep.Russell.SeedCost)

	if rep.Conclusion != sensitivity.BothRobust {
		assert.GreaterOrEqual(t, rep.Ratio, 1.0)
	} else {
		assert.Equal(t, 1.0, rep.Ratio)
	}
}

// TestAnalyze_Guards checks the argument validation of Analyze.
func TestAnalyze_Guards(t *testing.T) {
	p := reference34(t)

	_, err := sensitivity.Analyze(nil, []float64{0.05}, solver.DefaultOptions())
	assert.ErrorIs(t, err, sensitivity.ErrNilProblem)

	_, err = sensitivity.Analyze(p, nil, solver.DefaultOptions())
	assert.ErrorIs(t, err, sensitivity.ErrNoLevels)
}

// TestConclusion_String covers the report labels.
func TestConclusion_String(t *testing.T) {
	assert.Equal(t, "both methods robust", sensitivity.BothRobust.String())
	assert.Equal(t, "Vogel more sensitive", sensitivity.VogelMoreSensitive.String())
	assert.Equal(t, "Russell more sensitive", sensitivity.RussellMoreSensitive.String())
	assert.Equal(t, "unknown", sensitivity.Conclusion(99).String())
}
