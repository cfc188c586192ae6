package approx

import "errors"

var (
	// ErrNilProblem indicates a nil *transport.Problem was passed.
	ErrNilProblem = errors.New("approx: problem must be non-nil")
	// ErrUnknownMethod indicates a Method value outside the declared enum.
	ErrUnknownMethod = errors.New("approx: unknown seeding method")
	// ErrIncompleteSweep indicates the elimination loop failed to consume
	// the whole table. The protocol retires at least one row or column per
	// step, so hitting this on a validated Problem is an internal fault,
	// not a caller error.
	ErrIncompleteSweep = errors.New("approx: elimination sweep did not consume the table")
)

// Method selects which BFS-construction heuristic Seed dispatches to.
type Method int

const (
	// MethodVogel is Vogel's approximation (penalty) method.
	MethodVogel Method = iota
	// MethodRussell is Russell's approximation (maximum-reduced-cost) method.
	MethodRussell
)

// String returns the conventional short name of the method
// ("VAM" or "RAM"), or "unknown" for out-of-range values.
func (m Method) String() string {
	switch m {
	case MethodVogel:
		return "VAM"
	case MethodRussell:
		return "RAM"
	default:
		return "unknown"
	}
}
