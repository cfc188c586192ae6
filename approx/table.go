package approx

import "github.com/optigon/stoneflow/transport"

// table is the shrinking working view both heuristics operate on.
//
// Rather than physically deleting rows and columns of a matrix, the table
// keeps index sets over the original Problem (activeRows, activeCols) plus
// mutable remaining supply/demand vectors indexed by original position.
// Retiring a line removes its index from the set; original identities
// survive for free, so every recorded Allocation already carries source
// indices.
type table struct {
	p          *transport.Problem
	activeRows []int     // original row indices still in play, ascending
	activeCols []int     // original column indices still in play, ascending
	supply     []float64 // remaining supply, indexed by original row
	demand     []float64 // remaining demand, indexed by original column
	allocs     []transport.Allocation
}

// newTable builds the initial full-size view of p.
// Complexity: O(n+m) time and memory (the cost matrix is shared, not copied).
func newTable(p *transport.Problem) *table {
	n, m := p.Rows(), p.Cols()
	t := &table{
		p:          p,
		activeRows: make([]int, n),
		activeCols: make([]int, m),
		supply:     p.CopySupply(),
		demand:     p.CopyDemand(),
		allocs:     make([]transport.Allocation, 0, n+m-1),
	}
	var i int
	for i = 0; i < n; i++ {
		t.activeRows[i] = i
	}
	for i = 0; i < m; i++ {
		t.activeCols[i] = i
	}
	return t
}

// done reports whether every row and column has been retired — the
// header-only remainder of the classical tableau formulation.
func (t *table) done() bool {
	return len(t.activeRows) == 0 && len(t.activeCols) == 0
}

// allocate records amount = min(supply[row], demand[col]) at (row, col)
// and retires exactly one line — or both on a tie:
//
//   - supply < demand: the row is exhausted and removed; the column keeps
//     playing with its demand reduced by amount;
//   - demand < supply: symmetric, the column is removed;
//   - equal: both are removed at once (a degenerate step — one allocation
//     satisfied two constraints, so the final basis may come up short of
//     n+m−1 cells; package modi repairs that).
//
// The very last cell (one active row and one active column) always retires
// both lines, which absorbs the ≤ BalanceTolerance residue a rounded but
// balanced instance may carry.
//
// When one dimension empties while lines of the other survive (possible
// with zero-quantity inputs, where a tie step retires the last row before a
// zero-demand column was ever selected), the stranded lines are retired
// immediately with degenerate allocations against the just-exhausted line.
// Only residues within BalanceTolerance qualify; a larger leftover stays
// active and surfaces as ErrIncompleteSweep in the caller.
//
// row and col are original indices and must be active.
// Complexity: O(n+m) time for the index-set removal.
func (t *table) allocate(row, col int) {
	s, d := t.supply[row], t.demand[col]
	amount := s
	if d < s {
		amount = d
	}
	t.allocs = append(t.allocs, transport.Allocation{
		Cell:   transport.Cell{Row: row, Col: col},
		Amount: amount,
	})

	last := len(t.activeRows) == 1 && len(t.activeCols) == 1
	switch {
	case last || s == d:
		t.activeRows = removeIndex(t.activeRows, row)
		t.activeCols = removeIndex(t.activeCols, col)
		t.supply[row] = 0
		t.demand[col] = 0
	case s < d:
		t.activeRows = removeIndex(t.activeRows, row)
		t.supply[row] = 0
		t.demand[col] = d - amount
	default:
		t.activeCols = removeIndex(t.activeCols, col)
		t.demand[col] = 0
		t.supply[row] = s - amount
	}

	switch {
	case len(t.activeRows) == 0:
		t.flushCols(row)
	case len(t.activeCols) == 0:
		t.flushRows(col)
	}
}

// flushCols retires columns stranded after the last row left the table,
// recording each residual demand (at most BalanceTolerance on a balanced
// instance) as a degenerate allocation against row. The seed never grows
// past n+m−1 cells; beyond that the residue is absorbed the same way the
// last-cell step absorbs it.
func (t *table) flushCols(row int) {
	limit := t.p.Rows() + t.p.Cols() - 1
	for _, c := range append([]int(nil), t.activeCols...) {
		if t.demand[c] > transport.BalanceTolerance {
			continue
		}
		if len(t.allocs) < limit {
			t.allocs = append(t.allocs, transport.Allocation{
				Cell:   transport.Cell{Row: row, Col: c},
				Amount: t.demand[c],
			})
		}
		t.activeCols = removeIndex(t.activeCols, c)
		t.demand[c] = 0
	}
}

// flushRows is the row counterpart of flushCols.
func (t *table) flushRows(col int) {
	limit := t.p.Rows() + t.p.Cols() - 1
	for _, r := range append([]int(nil), t.activeRows...) {
		if t.supply[r] > transport.BalanceTolerance {
			continue
		}
		if len(t.allocs) < limit {
			t.allocs = append(t.allocs, transport.Allocation{
				Cell:   transport.Cell{Row: r, Col: col},
				Amount: t.supply[r],
			})
		}
		t.activeRows = removeIndex(t.activeRows, r)
		t.supply[r] = 0
	}
}

// removeIndex deletes value v from the ascending index set s, preserving
// order. The sets are small (≤ max(n,m)) and shrink monotonically, so a
// linear scan beats any fancier structure here.
// Complexity: O(len(s)).
func removeIndex(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
