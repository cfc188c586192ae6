// Package transport defines the data model of the balanced transportation
// problem: an n×m cost matrix, a length-n supply vector and a length-m
// demand vector with equal totals, together with the allocation types
// shared by every solver stage.
//
// # What lives here
//
//   - Problem    — validated, immutable snapshot of (costs, supply, demand).
//   - Cell       — (row, col) identity of one matrix position.
//   - Allocation — a Cell plus its shipped amount.
//   - Plan       — a full solution: allocations, total cost, optimality flag.
//
// # Validation
//
// NewProblem is the single entry gate: it deep-copies its inputs and
// rejects ragged or empty matrices, NaN or negative values, dimension
// mismatches, and supply/demand totals that differ by more than the
// balance tolerance. Downstream packages (approx, modi, solver) assume a
// Problem they receive has already passed this gate and never re-validate.
//
// # Invariants
//
//   - Costs, Supply and Demand are never mutated after construction;
//     accessors return the stored values, CopyCosts returns a fresh matrix.
//   - ΣSupply == ΣDemand within BalanceTolerance (1e-2 absolute by default,
//     matching the precision at which instance generators round values).
//
// The package has no dependencies beyond the standard library and performs
// no I/O; persistence of problems lives in package dataset.
package transport
