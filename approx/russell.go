package approx

import (
	"math"

	"github.com/optigon/stoneflow/transport"
)

// Russell computes an initial basis for p using Russell's approximation
// (maximum-reduced-cost) method.
//
// One elimination step:
//  1. For every active row i take U_i = the maximum active cost of that
//     row; for every active column j take V_j = the maximum active cost of
//     that column.
//  2. Score every active cell Δ_ij = c_ij − (U_i + V_j). Δ is always ≤ 0;
//     the most negative Δ marks the cell furthest below both its row's and
//     its column's worst cost — the best relative deal.
//  3. Allocate at the cell with the globally most negative Δ (first found
//     in row-major order on ties) and retire the exhausted line(s).
//
// Δ is recomputed from the original cost matrix every step; reduced costs
// never accumulate across iterations.
//
// Returns the ordered allocations. Errors: ErrNilProblem;
// ErrIncompleteSweep on an internal protocol fault.
//
// Complexity: O((n+m)·n·m) time, O(n+m) extra memory.
func Russell(p *transport.Problem) ([]transport.Allocation, error) {
	if p == nil {
		return nil, ErrNilProblem
	}

	var (
		t        = newTable(p)
		maxSteps = p.Rows() + p.Cols()
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
		row, col = russellSelect(t)
		t.allocate(row, col)
	}
	if t.done() {
		return t.allocs, nil
	}
	return nil, ErrIncompleteSweep
}

// russellSelect applies the reduced-cost policy to the current table state
// and returns the original (row, col) of the cell to allocate next.
// Precondition: at least one active row and one active column.
func russellSelect(t *table) (row, col int) {
	u := make(map[int]float64, len(t.activeRows)) // U_i by original row
	v := make(map[int]float64, len(t.activeCols)) // V_j by original col

	var (
		r, c int
		cost float64
	)
	for _, r = range t.activeRows {
		hi := math.Inf(-1)
		for _, c = range t.activeCols {
			if cost = t.p.Cost(r, c); cost > hi {
				hi = cost
			}
		}
		u[r] = hi
	}
	for _, c = range t.activeCols {
		hi := math.Inf(-1)
		for _, r = range t.activeRows {
			if cost = t.p.Cost(r, c); cost > hi {
				hi = cost
			}
		}
		v[c] = hi
	}

	// Row-major scan; strict '<' keeps the first cell found on Δ ties.
	best := math.Inf(1)
	for _, r = range t.activeRows {
		for _, c = range t.activeCols {
			if delta := t.p.Cost(r, c) - (u[r] + v[c]); delta < best {
				best, row, col = delta, r, c
			}
		}
	}
	return row, col
}

// Seed dispatches to the heuristic selected by method. It is the single
// entry point external collaborators (solver, CLI, benchmarks) use when
// the method is data-driven rather than hardwired.
//
// Errors: ErrUnknownMethod for out-of-range method values, plus anything
// the dispatched heuristic returns.
func Seed(p *transport.Problem, method Method) ([]transport.Allocation, error) {
	switch method {
	case MethodVogel:
		return Vogel(p)
	case MethodRussell:
		return Russell(p)
	default:
		return nil, ErrUnknownMethod
	}
}
