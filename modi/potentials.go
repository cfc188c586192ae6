package modi

import "github.com/optigon/stoneflow/transport"

// Potentials solves the dual system u_i + v_j = c_ij over the basic cells
// of b by propagation and returns the row potentials u and the column
// potentials v.
//
// The system has n+m unknowns and n+m−1 equations (one per basic cell of a
// spanning-tree basis), so one degree of freedom remains; it is fixed by
// anchoring u_0 = 0. Propagation repeatedly sweeps the basic cells,
// deriving the unknown endpoint of any cell whose other endpoint is known,
// until every potential is known.
//
// A sweep that makes no progress while unknowns remain means the basis
// graph is disconnected, a broken invariant reported as
// ErrDisconnectedBasis.
//
// The result is independent of sweep order: on a spanning tree each
// potential is forced by a unique path to the anchor.
//
// Complexity: O((n+m)·k) worst case over k basic cells; a long path basis
// needs one sweep per tree depth.
func (b *Basis) Potentials(p *transport.Problem) (u, v []float64, err error) {
	n, m := p.Rows(), p.Cols()
	u = make([]float64, n)
	v = make([]float64, m)
	uKnown := make([]bool, n)
	vKnown := make([]bool, m)

	uKnown[0] = true // anchor; potentials are defined up to a constant shift
	remaining := n + m - 1

	var (
		cell     transport.Cell
		progress bool
	)
	for remaining > 0 {
		progress = false
		for cell = range b.flow {
			switch {
			case uKnown[cell.Row] && !vKnown[cell.Col]:
				v[cell.Col] = p.Cost(cell.Row, cell.Col) - u[cell.Row]
				vKnown[cell.Col] = true
				remaining--
				progress = true
			case vKnown[cell.Col] && !uKnown[cell.Row]:
				u[cell.Row] = p.Cost(cell.Row, cell.Col) - v[cell.Col]
				uKnown[cell.Row] = true
				remaining--
				progress = true
			}
		}
		if !progress {
			return nil, nil, ErrDisconnectedBasis
		}
	}
	return u, v, nil
}
