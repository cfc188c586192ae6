// Package solver wires the two solving stages into one pipeline: seed a
// basic feasible solution with a greedy heuristic (package approx), then
// refine it to certified optimality with the MODI engine (package modi).
//
// # Entry points
//
//	res, err := solver.Solve(p, solver.DefaultOptions())   // seed + refine
//	res, err := solver.SeedOnly(p, approx.MethodVogel)     // seed only
//	cmp, err := solver.Race(p, solver.DefaultOptions())    // timed VAM vs RAM
//
// Solve returns the seed allocations and cost next to the final Plan, so
// callers can report how much refinement bought. Race runs both
// heuristics end to end on the same problem, timing the seeding and
// refinement phases separately; both branches must agree on the optimal
// cost (the optimum is a property of the problem, not of the seed), which
// Race verifies and reports.
//
// The pipeline is strictly sequential and owns all intermediate state of
// one call; distinct calls are independent and may run concurrently on
// distinct Problems.
package solver
