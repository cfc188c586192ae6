// Package stoneflow solves the classical balanced transportation problem:
// given an n×m cost matrix, a supply vector and a demand vector with equal
// totals, it finds the minimum-cost allocation plan and certifies its
// optimality.
//
// The pipeline has two phases:
//
//	(cost, supply, demand) → seed BFS → refine → optimal plan + total cost
//
// Seeding builds an initial basic feasible solution with one of two greedy
// heuristics over a shrinking table (Vogel's penalty method or Russell's
// maximum-reduced-cost method); refinement drives that seed to the global
// optimum with the MODI dual-potential method and stepping-stone
// reallocation.
//
// Everything is organized in small focused subpackages:
//
//	transport/   — problem model: validated cost/supply/demand, cells, plans
//	approx/      — shrinking table + the Vogel and Russell BFS constructors
//	modi/        — basis store, dual potentials, loop finder, refinement engine
//	solver/      — seed+refine pipeline, timed VAM-vs-RAM races
//	dataset/     — instance files in JSON, YAML and MessagePack
//	gen/         — deterministic synthetic instance generators
//	sensitivity/ — IT2 fuzzy one-at-a-time cost-perturbation studies
//	cmd/         — the stoneflow CLI (solve, generate, race, sensitivity)
//
// Quick example:
//
//	p, err := transport.NewProblem(costs, supply, demand)
//	res, err := solver.Solve(p, solver.DefaultOptions())
//	fmt.Println(res.Plan.Cost, res.Plan.Optimal)
//
// All solvers are deterministic; no goroutines, no I/O, and no hidden
// randomness anywhere in the core.
package stoneflow
