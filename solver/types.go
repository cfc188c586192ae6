package solver

import (
	"errors"
	"time"

	"github.com/optigon/stoneflow/approx"
	"github.com/optigon/stoneflow/modi"
	"github.com/optigon/stoneflow/transport"
)

var (
	// ErrNilProblem indicates a nil *transport.Problem was passed.
	ErrNilProblem = errors.New("solver: problem must be non-nil")
	// ErrCostMismatch indicates the two refined branches of a Race reached
	// different optimal costs, which a correct refiner never produces.
	ErrCostMismatch = errors.New("solver: refined costs disagree between seeding methods")
)

// raceCostTolerance bounds the allowed float drift between the optimal
// costs of the two Race branches.
const raceCostTolerance = 1e-6

// Options configures a Solve run.
//
//	Method        — seeding heuristic (MethodVogel by default).
//	MaxIterations — refinement cap, forwarded to modi (0 ⇒ modi default).
//	Epsilon       — refinement tolerance, forwarded to modi (0 ⇒ default).
type Options struct {
	Method        approx.Method
	MaxIterations int
	Epsilon       float64
}

// DefaultOptions returns Vogel seeding with the modi engine defaults.
func DefaultOptions() Options {
	return Options{Method: approx.MethodVogel}
}

// modiOptions projects the solver Options onto the modi engine.
func (o Options) modiOptions() modi.Options {
	return modi.Options{MaxIterations: o.MaxIterations, Epsilon: o.Epsilon}
}

// Result is the outcome of one full Solve: the seed the heuristic built,
// its cost, and the refined Plan.
type Result struct {
	Method   approx.Method
	Seed     []transport.Allocation
	SeedCost float64
	Plan     transport.Plan
}

// Timing captures one timed branch of a Race.
type Timing struct {
	Method      approx.Method
	SeedTime    time.Duration
	RefineTime  time.Duration
	SeedCost    float64
	OptimalCost float64
	Iterations  int
	Optimal     bool
}

// Total returns seeding plus refinement wall time.
func (t Timing) Total() time.Duration { return t.SeedTime + t.RefineTime }

// RaceResult holds both timed branches of a head-to-head run.
type RaceResult struct {
	Vogel   Timing
	Russell Timing
}
