package modi

import "errors"

var (
	// ErrNilProblem indicates a nil *transport.Problem was passed.
	ErrNilProblem = errors.New("modi: problem must be non-nil")
	// ErrBadSeed indicates a seed allocation referencing a cell outside the
	// matrix, a negative amount, or a duplicate cell.
	ErrBadSeed = errors.New("modi: seed allocation is out of range, negative, or duplicated")
	// ErrDisconnectedBasis indicates dual-potential propagation stalled with
	// unknown potentials left: the basis is not a spanning tree. This is an
	// internal invariant violation, not a caller error.
	ErrDisconnectedBasis = errors.New("modi: basis is disconnected, potentials undetermined")
	// ErrNoLoop indicates no alternating cycle exists for a chosen entering
	// cell, which contradicts the spanning-tree invariant. Internal.
	ErrNoLoop = errors.New("modi: no stepping-stone loop for entering cell")
	// ErrRepairFailed indicates degeneracy repair could not extend the basis
	// to n+m−1 cells without closing a cycle. Internal.
	ErrRepairFailed = errors.New("modi: degeneracy repair could not complete the basis")
	// ErrIterationLimit indicates the refinement loop hit its safety cap
	// before certifying optimality. The returned Plan still carries the best
	// basis found, flagged Optimal=false.
	ErrIterationLimit = errors.New("modi: iteration limit reached before optimality")
)

// defaultEpsilon is the float comparison threshold used for improvement
// tests and zero-flow detection inside the refinement loop.
const defaultEpsilon = 1e-9

// iterationCapFactor scales the default iteration cap: 10·(n+m).
const iterationCapFactor = 10

// Options configures the refinement engine.
//
//	MaxIterations — hard cap on pivot iterations. ≤ 0 selects the default
//	                iterationCapFactor·(n+m), which the finite-termination
//	                argument comfortably bounds for non-degenerate pivots.
//	Epsilon       — comparison tolerance for improvement tests and emptied
//	                minus cells. ≤ 0 selects defaultEpsilon.
type Options struct {
	MaxIterations int
	Epsilon       float64
}

// DefaultOptions returns the engine defaults: derived iteration cap,
// defaultEpsilon tolerance.
func DefaultOptions() Options {
	return Options{MaxIterations: 0, Epsilon: defaultEpsilon}
}
