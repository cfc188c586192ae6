package modi

import (
	"sort"

	"github.com/optigon/stoneflow/transport"
)

// Basis is the current allocation set of the refinement engine: a mapping
// from cell identity to flow amount, mirrored by per-row and per-column
// adjacency indices so that cycle searches never rescan the whole set.
//
// Logically the basis is a spanning tree of the bipartite graph whose
// vertices are the n rows and m columns and whose edges are basic cells.
// NewBasis establishes that shape; Insert and Remove keep the indices in
// sync but do not re-verify acyclicity on every mutation; the engine's
// pivots preserve it.
//
// A Basis is exclusively owned by one solve; no method is safe for
// concurrent use.
type Basis struct {
	flow  map[transport.Cell]float64
	byRow map[int][]transport.Cell
	byCol map[int][]transport.Cell
	rows  int
	cols  int
}

// NewBasis builds a Basis from an ordered seed produced by a BFS
// constructor and repairs degeneracy: while the basis holds fewer than
// n+m−1 cells, it scans all non-basic cells in row-major order and admits
// the first zero-valued cell that closes no cycle with the existing basis,
// repeating until the size invariant holds.
//
// Errors: ErrNilProblem, ErrBadSeed for malformed seeds, ErrRepairFailed
// if no acyclic insertion exists (only possible when the seed itself
// already contains a cycle).
//
// Complexity: O(n·m·L) worst case for the repair scan, where L bounds the
// loop search; degenerate seeds in practice need only a handful of
// insertions.
func NewBasis(p *transport.Problem, seed []transport.Allocation) (*Basis, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	n, m := p.Rows(), p.Cols()

	b := &Basis{
		flow:  make(map[transport.Cell]float64, n+m-1),
		byRow: make(map[int][]transport.Cell, n),
		byCol: make(map[int][]transport.Cell, m),
		rows:  n,
		cols:  m,
	}
	for _, a := range seed {
		if a.Row < 0 || a.Row >= n || a.Col < 0 || a.Col >= m || a.Amount < 0 {
			return nil, ErrBadSeed
		}
		if b.Has(a.Cell) {
			return nil, ErrBadSeed
		}
		b.Insert(a.Cell, a.Amount)
	}

	required := n + m - 1
	if b.Len() > required {
		return nil, ErrBadSeed
	}
	var i, j int
	for b.Len() < required {
		inserted := false
		for i = 0; i < n && !inserted; i++ {
			for j = 0; j < m && !inserted; j++ {
				cell := transport.Cell{Row: i, Col: j}
				if b.Has(cell) {
					continue
				}
				if b.FindLoop(cell) == nil {
					b.Insert(cell, 0)
					inserted = true
				}
			}
		}
		if !inserted {
			return nil, ErrRepairFailed
		}
	}
	return b, nil
}

// Len returns the number of basic cells. Complexity: O(1).
func (b *Basis) Len() int { return len(b.flow) }

// Has reports whether c is currently basic. Complexity: O(1).
func (b *Basis) Has(c transport.Cell) bool {
	_, ok := b.flow[c]
	return ok
}

// Amount returns the flow of basic cell c, or 0 when c is not basic.
// Complexity: O(1).
func (b *Basis) Amount(c transport.Cell) float64 { return b.flow[c] }

// Insert admits c with the given flow and updates both adjacency indices.
// Inserting an already-basic cell just overwrites its flow.
// Complexity: O(1) amortized.
func (b *Basis) Insert(c transport.Cell, amount float64) {
	if _, ok := b.flow[c]; !ok {
		b.byRow[c.Row] = append(b.byRow[c.Row], c)
		b.byCol[c.Col] = append(b.byCol[c.Col], c)
	}
	b.flow[c] = amount
}

// Remove retires c from the basis and both adjacency indices. Removing a
// non-basic cell is a no-op. Complexity: O(line length).
func (b *Basis) Remove(c transport.Cell) {
	if _, ok := b.flow[c]; !ok {
		return
	}
	delete(b.flow, c)
	b.byRow[c.Row] = dropCell(b.byRow[c.Row], c)
	b.byCol[c.Col] = dropCell(b.byCol[c.Col], c)
}

// SetAmount overwrites the flow of an already-basic cell.
// Precondition: b.Has(c). Complexity: O(1).
func (b *Basis) SetAmount(c transport.Cell, amount float64) {
	if _, ok := b.flow[c]; ok {
		b.flow[c] = amount
	}
}

// RowCells returns the basic cells of row i in insertion order. The
// returned slice is the live index; callers must not mutate it.
// Complexity: O(1).
func (b *Basis) RowCells(i int) []transport.Cell { return b.byRow[i] }

// ColCells returns the basic cells of column j in insertion order; the
// slice is the live index. Complexity: O(1).
func (b *Basis) ColCells(j int) []transport.Cell { return b.byCol[j] }

// Allocations returns the basis as an ordered (row-major) slice of
// allocations, zero-valued degenerate cells included.
// Complexity: O(k log k) for k basic cells.
func (b *Basis) Allocations() []transport.Allocation {
	out := make([]transport.Allocation, 0, len(b.flow))
	for c, amt := range b.flow {
		out = append(out, transport.Allocation{Cell: c, Amount: amt})
	}
	sort.Slice(out, func(x, y int) bool {
		if out[x].Row != out[y].Row {
			return out[x].Row < out[y].Row
		}
		return out[x].Col < out[y].Col
	})
	return out
}

// dropCell removes the first occurrence of c from s, preserving order.
func dropCell(s []transport.Cell, c transport.Cell) []transport.Cell {
	for i, x := range s {
		if x == c {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
