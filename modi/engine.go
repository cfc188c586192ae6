package modi

import (
	"fmt"

	"github.com/optigon/stoneflow/transport"
)

// Optimize refines the seed basis to optimality and returns the final
// Plan: the complete basis (zero-valued cells included) in row-major
// order, its total cost, the number of pivot iterations spent, and the
// Optimal certificate flag.
//
// Contracts:
//   - p must be a validated Problem; seed must be a feasible basis from a
//     BFS constructor (package approx) with at most n+m−1 cells.
//   - Optimize owns its Basis exclusively for the duration of the call and
//     never mutates p or seed.
//   - Calling Optimize on an already-optimal seed performs zero pivots and
//     returns the same allocations and cost with Iterations==0.
//
// Errors:
//   - ErrNilProblem, ErrBadSeed, ErrRepairFailed — before any pivoting;
//   - ErrDisconnectedBasis, ErrNoLoop — internal invariant violations,
//     returned together with the Plan state reached so far for diagnosis;
//   - ErrIterationLimit — cap exceeded; the Plan carries the best basis
//     found, flagged Optimal=false.
//
// Complexity: O(iters·n·m); each iteration is dominated by the
// entering-cell scan; iters is finitely bounded for non-degenerate pivot
// sequences and hard-capped by Options.MaxIterations.
func Optimize(p *transport.Problem, seed []transport.Allocation, opts Options) (transport.Plan, error) {
	if p == nil {
		return transport.Plan{}, ErrNilProblem
	}
	b, err := NewBasis(p, seed)
	if err != nil {
		return transport.Plan{}, err
	}

	var (
		n, m    = p.Rows(), p.Cols()
		eps     = opts.Epsilon
		maxIter = opts.MaxIterations
	)
	if eps <= 0 {
		eps = defaultEpsilon
	}
	if maxIter <= 0 {
		maxIter = iterationCapFactor * (n + m)
	}

	var (
		iter     int
		u, v     []float64
		entering transport.Cell
		improves bool
		loop     []transport.Cell
	)
	for iter = 0; iter < maxIter; iter++ {
		// COMPUTE_DUALS
		u, v, err = b.Potentials(p)
		if err != nil {
			return planFrom(p, b, iter, false), err
		}

		// SELECT_ENTERING: best positive opportunity u_i + v_j − c_ij over
		// the non-basic cells; ≤ 0 everywhere certifies optimality.
		entering, improves = selectEntering(p, b, u, v, eps)
		if !improves {
			return planFrom(p, b, iter, true), nil
		}

		// FIND_LOOP
		loop = b.FindLoop(entering)
		if loop == nil {
			return planFrom(p, b, iter, false), fmt.Errorf("%w at (%d,%d)", ErrNoLoop, entering.Row, entering.Col)
		}

		// REALLOCATE
		reallocate(b, loop, eps)
	}
	return planFrom(p, b, maxIter, false), ErrIterationLimit
}

// selectEntering scans all non-basic cells row-major and returns the cell
// with the strictly largest opportunity value above eps, first found on
// ties. improves=false means the optimality certificate holds.
// Complexity: O(n·m).
func selectEntering(p *transport.Problem, b *Basis, u, v []float64, eps float64) (best transport.Cell, improves bool) {
	var (
		bestGain = eps
		i, j     int
		gain     float64
	)
	for i = 0; i < p.Rows(); i++ {
		for j = 0; j < p.Cols(); j++ {
			cell := transport.Cell{Row: i, Col: j}
			if b.Has(cell) {
				continue
			}
			if gain = u[i] + v[j] - p.Cost(i, j); gain > bestGain {
				bestGain, best, improves = gain, cell, true
			}
		}
	}
	return best, improves
}

// reallocate shifts flow around the found cycle: cells at even positions
// (the entering cell included) gain θ, cells at odd positions lose θ,
// where θ is the minimum flow among the minus cells. The entering cell is
// admitted with flow θ and exactly one emptied minus cell (the first
// found in cycle order) leaves the basis, preserving the size invariant.
// Any further minus cells that hit zero stay as degenerate basic cells.
// Complexity: O(len(loop)).
func reallocate(b *Basis, loop []transport.Cell, eps float64) {
	var (
		theta float64
		idx   int
		cell  transport.Cell
		set   bool
	)
	for idx = 1; idx < len(loop); idx += 2 {
		if amt := b.Amount(loop[idx]); !set || amt < theta {
			theta, set = amt, true
		}
	}

	b.Insert(loop[0], theta)
	var (
		next    float64
		removed bool
	)
	for idx = 1; idx < len(loop); idx++ {
		cell = loop[idx]
		if idx%2 == 0 {
			b.SetAmount(cell, b.Amount(cell)+theta)
			continue
		}
		next = b.Amount(cell) - theta
		if next < 0 {
			next = 0 // clamp float residue
		}
		if next <= eps && !removed {
			b.Remove(cell)
			removed = true
			continue
		}
		b.SetAmount(cell, next)
	}
}

// planFrom snapshots the basis into a Plan. Complexity: O(k log k).
func planFrom(p *transport.Problem, b *Basis, iters int, optimal bool) transport.Plan {
	allocs := b.Allocations()
	return transport.Plan{
		Allocations: allocs,
		Cost:        p.TotalCost(allocs),
		Iterations:  iters,
		Optimal:     optimal,
	}
}
