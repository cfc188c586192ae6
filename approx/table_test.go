package approx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optigon/stoneflow/transport"
)

func tableFixture(t *testing.T) *table {
	t.Helper()
	p, err := transport.NewProblem(
		[][]float64{{1, 2}, {3, 4}},
		[]float64{30, 20},
		[]float64{10, 40},
	)
	require.NoError(t, err)
	return newTable(p)
}

// TestTable_AllocateRemovesColumn: demand < supply retires the column and
// leaves the row playing with reduced supply.
func TestTable_AllocateRemovesColumn(t *testing.T) {
	tb := tableFixture(t)
	tb.allocate(0, 0) // supply 30 vs demand 10

	assert.Equal(t, []int{0, 1}, tb.activeRows)
	assert.Equal(t, []int{1}, tb.activeCols)
	assert.Equal(t, 20.0, tb.supply[0])
	assert.Equal(t, 0.0, tb.demand[0])
	require.Len(t, tb.allocs, 1)
	assert.Equal(t, transport.Allocation{Cell: transport.Cell{Row: 0, Col: 0}, Amount: 10}, tb.allocs[0])
}

// TestTable_AllocateRemovesRow: supply < demand retires the row and
// decrements the column's demand.
func TestTable_AllocateRemovesRow(t *testing.T) {
	tb := tableFixture(t)
	tb.allocate(1, 1) // supply 20 vs demand 40

	assert.Equal(t, []int{0}, tb.activeRows)
	assert.Equal(t, []int{0, 1}, tb.activeCols)
	assert.Equal(t, 0.0, tb.supply[1])
	assert.Equal(t, 20.0, tb.demand[1])
}

// TestTable_AllocateTieRemovesBoth: an exact supply/demand tie retires the
// row and the column in one degenerate step.
func TestTable_AllocateTieRemovesBoth(t *testing.T) {
	p, err := transport.NewProblem(
		[][]float64{{1, 2}, {3, 4}},
		[]float64{10, 30},
		[]float64{10, 30},
	)
	require.NoError(t, err)
	tb := newTable(p)

	tb.allocate(0, 0) // 10 vs 10
	assert.Equal(t, []int{1}, tb.activeRows)
	assert.Equal(t, []int{1}, tb.activeCols)
	assert.False(t, tb.done())

	tb.allocate(1, 1) // final cell
	assert.True(t, tb.done())
	assert.Len(t, tb.allocs, 2)
}

// TestTable_LastCellAbsorbsResidue: a rounded-but-balanced instance may
// leave the final supply and demand differing by up to the balance
// tolerance; the last allocation must still retire both lines.
func TestTable_LastCellAbsorbsResidue(t *testing.T) {
	p, err := transport.NewProblem(
		[][]float64{{1, 2}, {3, 4}},
		[]float64{10, 20.004},
		[]float64{10, 20},
	)
	require.NoError(t, err)
	tb := newTable(p)

	tb.allocate(0, 0)
	tb.allocate(1, 1) // 20.004 vs 20 — unequal, but the table must close
	assert.True(t, tb.done())
}

// TestTable_FlushStrandedZeroColumn: when a tie step retires the last row
// while a zero-demand column is still active, the column is retired in the
// same step with a degenerate allocation against that row.
func TestTable_FlushStrandedZeroColumn(t *testing.T) {
	p, err := transport.NewProblem(
		[][]float64{{1, 2, 5}, {3, 4, 5}},
		[]float64{10, 30},
		[]float64{10, 30, 0},
	)
	require.NoError(t, err)
	tb := newTable(p)

	tb.allocate(0, 0) // 10 vs 10, tie
	tb.allocate(1, 1) // 30 vs 30, tie retires the last row
	assert.True(t, tb.done(), "stranded zero column must be retired")
	require.Len(t, tb.allocs, 3)
	assert.Equal(t, transport.Allocation{Cell: transport.Cell{Row: 1, Col: 2}}, tb.allocs[2])
	assert.Equal(t, 0.0, tb.demand[2])
}

// TestTable_FlushStrandedZeroRow is the transposed case: a zero-supply row
// surviving the last column.
func TestTable_FlushStrandedZeroRow(t *testing.T) {
	p, err := transport.NewProblem(
		[][]float64{{1, 3}, {2, 4}, {5, 5}},
		[]float64{10, 30, 0},
		[]float64{10, 30},
	)
	require.NoError(t, err)
	tb := newTable(p)

	tb.allocate(0, 0)
	tb.allocate(1, 1)
	assert.True(t, tb.done(), "stranded zero row must be retired")
	require.Len(t, tb.allocs, 3)
	assert.Equal(t, transport.Allocation{Cell: transport.Cell{Row: 2, Col: 1}}, tb.allocs[2])
	assert.Equal(t, 0.0, tb.supply[2])
}

// TestRemoveIndex removes by value and preserves order.
func TestRemoveIndex(t *testing.T) {
	assert.Equal(t, []int{0, 2}, removeIndex([]int{0, 1, 2}, 1))
	assert.Equal(t, []int{1, 2}, removeIndex([]int{0, 1, 2}, 0))
	assert.Equal(t, []int{0, 1}, removeIndex([]int{0, 1, 2}, 2))
	assert.Equal(t, []int{0, 1}, removeIndex([]int{0, 1}, 7), "missing value is a no-op")
}
