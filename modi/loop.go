package modi

import "github.com/optigon/stoneflow/transport"

// FindLoop returns the unique stepping-stone cycle the entering cell
// closes through the basis, or nil when no cycle exists.
//
// The cycle is returned as an ordered cell sequence starting at entering,
// alternating "next cell shares the row" and "next cell shares the column"
// moves, with every cell except entering taken from the basis. Because the
// row/column graph is bipartite, a valid cycle always has an even number
// of cells, at least four; the closing move back to entering is implied by
// the sequence and not repeated.
//
// A nil result has two readings, both intentional:
//   - during degeneracy repair it means the candidate cell is safe to add
//     as a zero-valued basic cell (no cycle ⇒ the tree stays a tree);
//   - during refinement it means the spanning-tree invariant is broken
//     (the engine surfaces ErrNoLoop).
//
// The search is a depth-first walk with backtracking over the per-line
// adjacency indices, deterministic for a given basis history.
//
// Complexity: O(k·L) worst case over k basic cells with line length L;
// the alternation rule prunes almost everything in practice.
func (b *Basis) FindLoop(entering transport.Cell) []transport.Cell {
	path := make([]transport.Cell, 0, b.Len()+1)
	path = append(path, entering)
	return b.extendLoop(entering, entering, path, true)
}

// extendLoop grows path from curr by one alternating move and recurses.
// alongRow selects the line to scan for the next cell. Returns the closed
// cycle, or nil when every continuation dead-ends.
func (b *Basis) extendLoop(entering, curr transport.Cell, path []transport.Cell, alongRow bool) []transport.Cell {
	var line []transport.Cell
	if alongRow {
		line = b.byRow[curr.Row]
	} else {
		line = b.byCol[curr.Col]
	}

	// The first move out of the entering cell runs along its row, so a
	// proper alternating cycle must close back to it along its column.
	// Together with the ≥ 4 cell floor this guarantees even cycle length,
	// the only shape a bipartite row/column graph admits.
	if !alongRow && curr.Col == entering.Col && curr != entering && len(path) >= 4 {
		return path
	}

	for _, next := range line {
		if next == curr || next == entering || containsCell(path, next) {
			continue
		}
		if res := b.extendLoop(entering, next, append(path, next), !alongRow); res != nil {
			return res
		}
	}
	return nil
}

// containsCell reports whether path already visits c. Loops are short, so
// a linear scan beats a side map. Complexity: O(len(path)).
func containsCell(path []transport.Cell, c transport.Cell) bool {
	for _, x := range path {
		if x == c {
			return true
		}
	}
	return false
}
