package approx

import (
	"math"

	"github.com/optigon/stoneflow/transport"
)

// Vogel computes an initial basis for p using Vogel's approximation
// (penalty) method.
//
// One elimination step:
//  1. For every active row and column compute its penalty — the gap
//     between the two cheapest active cells of that line. A line with a
//     single active cell is scored against a sentinel cost of 0, i.e. its
//     penalty is the lone cost itself.
//  2. Take the line with the maximum penalty. Among all lines tied at the
//     maximum, and among all minimum-cost cells within each tied line,
//     pick the cell admitting the largest feasible allocation
//     min(supply, demand); remaining ties fall to the first cell found.
//  3. Allocate there and retire the exhausted line(s).
//
// Returns the ordered allocations; the caller derives the seed cost via
// Problem.TotalCost. Errors: ErrNilProblem; ErrIncompleteSweep on an
// internal protocol fault (never expected for a validated Problem).
//
// Complexity: O((n+m)·n·m) time, O(n+m) extra memory.
func Vogel(p *transport.Problem) ([]transport.Allocation, error) {
	if p == nil {
		return nil, ErrNilProblem
	}

	var (
		t        = newTable(p)
		maxSteps = p.Rows() + p.Cols() // each step retires ≥ 1 line
		step     int
		row, col int
	)
	for step = 0; step < maxSteps; step++ {
		if t.done() {
			return t.allocs, nil
		}
		if len(t.activeRows) == 0 || len(t.activeCols) == 0 {
			return nil, ErrIncompleteSweep
		}
		row, col = vogelSelect(t)
		t.allocate(row, col)
	}
	if t.done() {
		return t.allocs, nil
	}
	return nil, ErrIncompleteSweep
}

// vogelSelect applies the penalty policy to the current table state and
// returns the original (row, col) of the cell to allocate next.
// Precondition: at least one active row and one active column.
func vogelSelect(t *table) (row, col int) {
	var (
		nr = len(t.activeRows)
		nc = len(t.activeCols)
		// Combined penalty vector: rows first, then columns, matching the
		// scan order of the tie-break pass below.
		pen    = make([]float64, nr+nc)
		maxPen = math.Inf(-1)
		ri, ci int
	)
	for ri = 0; ri < nr; ri++ {
		pen[ri] = t.rowPenalty(t.activeRows[ri])
		if pen[ri] > maxPen {
			maxPen = pen[ri]
		}
	}
	for ci = 0; ci < nc; ci++ {
		pen[nr+ci] = t.colPenalty(t.activeCols[ci])
		if pen[nr+ci] > maxPen {
			maxPen = pen[nr+ci]
		}
	}

	// Tie-break across every line sharing the maximum penalty: inspect the
	// minimum-cost cell(s) of each and keep whichever admits the largest
	// feasible allocation. Strict '>' keeps the first found on equal amounts.
	var (
		bestAmount = math.Inf(-1)
		k, r, c    int
		amount     float64
	)
	for k = 0; k < nr+nc; k++ {
		if pen[k] != maxPen {
			continue
		}
		if k < nr {
			r = t.activeRows[k]
			for _, c = range minCostCols(t, r) {
				amount = math.Min(t.supply[r], t.demand[c])
				if amount > bestAmount {
					bestAmount, row, col = amount, r, c
				}
			}
		} else {
			c = t.activeCols[k-nr]
			for _, r = range minCostRows(t, c) {
				amount = math.Min(t.supply[r], t.demand[c])
				if amount > bestAmount {
					bestAmount, row, col = amount, r, c
				}
			}
		}
	}
	return row, col
}

// rowPenalty returns the Vogel penalty of active row r: the difference
// between its two smallest active costs, or the single cost when only one
// active cell remains. Complexity: O(m).
func (t *table) rowPenalty(r int) float64 {
	lo, lo2 := math.Inf(1), math.Inf(1)
	for _, c := range t.activeCols {
		v := t.p.Cost(r, c)
		switch {
		case v < lo:
			lo, lo2 = v, lo
		case v < lo2:
			lo2 = v
		}
	}
	if math.IsInf(lo2, 1) {
		// Single-cell line: score against the 0 sentinel.
		return math.Abs(lo)
	}
	return lo2 - lo
}

// colPenalty is rowPenalty transposed. Complexity: O(n).
func (t *table) colPenalty(c int) float64 {
	lo, lo2 := math.Inf(1), math.Inf(1)
	for _, r := range t.activeRows {
		v := t.p.Cost(r, c)
		switch {
		case v < lo:
			lo, lo2 = v, lo
		case v < lo2:
			lo2 = v
		}
	}
	if math.IsInf(lo2, 1) {
		return math.Abs(lo)
	}
	return lo2 - lo
}

// minCostCols returns every active column whose cost in row r equals the
// row minimum, in ascending column order. Complexity: O(m).
func minCostCols(t *table, r int) []int {
	lo := math.Inf(1)
	for _, c := range t.activeCols {
		if v := t.p.Cost(r, c); v < lo {
			lo = v
		}
	}
	out := make([]int, 0, 2)
	for _, c := range t.activeCols {
		if t.p.Cost(r, c) == lo {
			out = append(out, c)
		}
	}
	return out
}

// minCostRows is minCostCols transposed. Complexity: O(n).
func minCostRows(t *table, c int) []int {
	lo := math.Inf(1)
	for _, r := range t.activeRows {
		if v := t.p.Cost(r, c); v < lo {
			lo = v
		}
	}
	out := make([]int, 0, 2)
	for _, r := range t.activeRows {
		if t.p.Cost(r, c) == lo {
			out = append(out, r)
		}
	}
	return out
}
