package solver

import (
	"math"
	"time"

	"github.com/optigon/stoneflow/approx"
	"github.com/optigon/stoneflow/modi"
	"github.com/optigon/stoneflow/transport"
)

// Solve seeds a basic feasible solution with opts.Method and refines it to
// optimality, returning the seed, its cost, and the final Plan.
//
// Errors: ErrNilProblem here; seeding errors from package approx;
// refinement errors from package modi (an ErrIterationLimit result still
// carries the best Plan found, flagged Optimal=false).
//
// Complexity: seeding O((n+m)·n·m) + refinement O(iters·n·m).
func Solve(p *transport.Problem, opts Options) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}
	seed, err := approx.Seed(p, opts.Method)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Method:   opts.Method,
		Seed:     seed,
		SeedCost: p.TotalCost(seed),
	}
	res.Plan, err = modi.Optimize(p, seed, opts.modiOptions())
	return res, err
}

// SeedOnly runs just the BFS-construction stage and returns the ordered
// allocations with their cost, skipping refinement entirely.
func SeedOnly(p *transport.Problem, method approx.Method) ([]transport.Allocation, float64, error) {
	if p == nil {
		return nil, 0, ErrNilProblem
	}
	seed, err := approx.Seed(p, method)
	if err != nil {
		return nil, 0, err
	}
	return seed, p.TotalCost(seed), nil
}

// Race runs both heuristics end to end on the same problem, timing the
// seeding and refinement phases of each branch separately, and verifies
// that both branches certify the same optimal cost.
//
// Errors: any branch error; ErrCostMismatch when both branches certify
// optimality but disagree on the cost beyond raceCostTolerance.
func Race(p *transport.Problem, opts Options) (RaceResult, error) {
	if p == nil {
		return RaceResult{}, ErrNilProblem
	}
	var (
		out RaceResult
		err error
	)
	if out.Vogel, err = timedRun(p, approx.MethodVogel, opts); err != nil {
		return out, err
	}
	if out.Russell, err = timedRun(p, approx.MethodRussell, opts); err != nil {
		return out, err
	}
	if out.Vogel.Optimal && out.Russell.Optimal &&
		math.Abs(out.Vogel.OptimalCost-out.Russell.OptimalCost) > raceCostTolerance {
		return out, ErrCostMismatch
	}
	return out, nil
}

// timedRun executes one seeded-and-refined branch with phase timings.
func timedRun(p *transport.Problem, method approx.Method, opts Options) (Timing, error) {
	t := Timing{Method: method}

	start := time.Now()
	seed, err := approx.Seed(p, method)
	t.SeedTime = time.Since(start)
	if err != nil {
		return t, err
	}
	t.SeedCost = p.TotalCost(seed)

	mo := opts.modiOptions()
	start = time.Now()
	plan, err := modi.Optimize(p, seed, mo)
	t.RefineTime = time.Since(start)
	if err != nil {
		return t, err
	}
	t.OptimalCost = plan.Cost
	t.Iterations = plan.Iterations
	t.Optimal = plan.Optimal
	return t, nil
}
