// Package approx constructs initial basic feasible solutions (BFS) for a
// balanced transportation problem using two interchangeable greedy
// heuristics:
//
//   - Vogel — penalty method
//
//   - Policy: per active row/column, penalty = gap between its two
//     cheapest cells; allocate at the cheapest cell of the line with the
//     maximum penalty; penalty ties are broken by the largest feasible
//     allocation amount, remaining ties by first found.
//
//   - Time:   O((n+m)·n·m) — one penalty sweep per elimination step.
//
//   - Quality: typically optimal or near-optimal seed.
//
//   - Russell — maximum-reduced-cost method
//
//   - Policy: per active row take U_i = max row cost, per active column
//     V_j = max column cost; allocate at the cell with the most negative
//     Δ_ij = c_ij − (U_i + V_j), ties broken first-found in row-major
//     order. Δ is recomputed from the original costs every step.
//
//   - Time:   O((n+m)·n·m).
//
// Both heuristics share one elimination protocol (see Table): each step
// allocates min(remaining supply, remaining demand) at the chosen cell and
// retires the exhausted row, column, or both on an exact tie. The ordered
// allocations they return form a feasible (possibly degenerate) basis; the
// refinement engine in package modi repairs degeneracy and drives the seed
// to optimality.
//
// # Entry points
//
//	allocs, err := approx.Vogel(p)
//	allocs, err := approx.Russell(p)
//	allocs, err := approx.Seed(p, approx.MethodRussell) // dispatch by Method
//
// All entry points are deterministic: the same Problem always yields the
// same allocation sequence.
package approx
