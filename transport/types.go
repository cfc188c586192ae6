package transport

import "errors"

var (
	// ErrEmptyMatrix indicates a cost matrix with zero rows or zero columns.
	ErrEmptyMatrix = errors.New("transport: cost matrix must have at least one row and one column")
	// ErrRaggedMatrix indicates cost rows of differing lengths.
	ErrRaggedMatrix = errors.New("transport: all cost rows must have the same length")
	// ErrDimensionMismatch indicates supply/demand lengths that do not match the matrix shape.
	ErrDimensionMismatch = errors.New("transport: supply/demand length must match cost matrix shape")
	// ErrBadValue indicates a NaN or negative cost, supply, or demand entry.
	ErrBadValue = errors.New("transport: costs, supply and demand must be finite and non-negative")
	// ErrUnbalanced indicates total supply and total demand differ beyond BalanceTolerance.
	ErrUnbalanced = errors.New("transport: total supply must equal total demand")
)

// BalanceTolerance is the absolute tolerance used to compare total supply
// against total demand. Instance files round values to two decimals, so the
// totals of a balanced instance may legitimately differ by up to 1e-2.
const BalanceTolerance = 1e-2

// Cell identifies one position of the cost matrix by its original
// (row, col) indices. Cells are comparable and safe as map keys.
type Cell struct {
	Row int
	Col int
}

// Allocation is a Cell together with the amount shipped through it.
// Amount is always ≥ 0; a zero Amount marks a degenerate basic cell.
type Allocation struct {
	Cell
	Amount float64
}

// Plan is the outcome of a solve: the final allocations (zero-valued basic
// cells included), their total cost, how many refinement iterations were
// spent, and whether the optimality certificate holds.
//
// Optimal=false together with a non-nil error from the refinement engine
// means the Plan carries the best basis found before the iteration cap.
type Plan struct {
	Allocations []Allocation
	Cost        float64
	Iterations  int
	Optimal     bool
}
