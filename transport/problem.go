package transport

import "math"

// Problem is a validated, immutable balanced transportation instance.
// Construct only via NewProblem; the zero value is not usable.
type Problem struct {
	costs  [][]float64 // n×m, deep-copied at construction
	supply []float64   // length n
	demand []float64   // length m
}

// NewProblem validates (costs, supply, demand) and returns an immutable
// Problem holding deep copies of all three.
//
// Contracts:
//   - costs must be a non-empty rectangular n×m matrix of finite values ≥ 0;
//   - len(supply)==n, len(demand)==m, every entry finite and ≥ 0;
//   - |Σsupply − Σdemand| ≤ BalanceTolerance (the caller pre-balances;
//     this gate only refuses to start on an unbalanced instance).
//
// Errors: ErrEmptyMatrix, ErrRaggedMatrix, ErrDimensionMismatch,
// ErrBadValue, ErrUnbalanced.
//
// Complexity: O(n·m) time and memory.
func NewProblem(costs [][]float64, supply, demand []float64) (*Problem, error) {
	n := len(costs)
	if n == 0 || len(costs[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	m := len(costs[0])

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		if len(costs[i]) != m {
			return nil, ErrRaggedMatrix
		}
		for j = 0; j < m; j++ {
			v = costs[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return nil, ErrBadValue
			}
		}
	}
	if len(supply) != n || len(demand) != m {
		return nil, ErrDimensionMismatch
	}

	var totalSupply, totalDemand float64
	for i = 0; i < n; i++ {
		v = supply[i]
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, ErrBadValue
		}
		totalSupply += v
	}
	for j = 0; j < m; j++ {
		v = demand[j]
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, ErrBadValue
		}
		totalDemand += v
	}
	if math.Abs(totalSupply-totalDemand) > BalanceTolerance {
		return nil, ErrUnbalanced
	}

	p := &Problem{
		costs:  make([][]float64, n),
		supply: make([]float64, n),
		demand: make([]float64, m),
	}
	for i = 0; i < n; i++ {
		p.costs[i] = make([]float64, m)
		copy(p.costs[i], costs[i])
	}
	copy(p.supply, supply)
	copy(p.demand, demand)

	return p, nil
}

// Rows returns n, the number of sources. Complexity: O(1).
func (p *Problem) Rows() int { return len(p.costs) }

// Cols returns m, the number of destinations. Complexity: O(1).
func (p *Problem) Cols() int { return len(p.costs[0]) }

// Cost returns the immutable unit cost of shipping from source i to
// destination j. Indices must be in range; out-of-range access panics as
// any slice access would. Complexity: O(1).
func (p *Problem) Cost(i, j int) float64 { return p.costs[i][j] }

// Supply returns the supply of source i. Complexity: O(1).
func (p *Problem) Supply(i int) float64 { return p.supply[i] }

// Demand returns the demand of destination j. Complexity: O(1).
func (p *Problem) Demand(j int) float64 { return p.demand[j] }

// CopySupply returns a fresh copy of the supply vector, suitable for
// in-place consumption by a table-shrinking heuristic.
// Complexity: O(n) time and memory.
func (p *Problem) CopySupply() []float64 {
	out := make([]float64, len(p.supply))
	copy(out, p.supply)
	return out
}

// CopyDemand returns a fresh copy of the demand vector.
// Complexity: O(m) time and memory.
func (p *Problem) CopyDemand() []float64 {
	out := make([]float64, len(p.demand))
	copy(out, p.demand)
	return out
}

// CopyCosts returns a deep copy of the cost matrix.
// Complexity: O(n·m) time and memory.
func (p *Problem) CopyCosts() [][]float64 {
	out := make([][]float64, len(p.costs))
	for i := range p.costs {
		out[i] = make([]float64, len(p.costs[i]))
		copy(out[i], p.costs[i])
	}
	return out
}

// TotalCost sums cost·amount over allocs against this problem's costs.
// Zero-valued degenerate allocations contribute nothing but are accepted.
// Complexity: O(len(allocs)).
func (p *Problem) TotalCost(allocs []Allocation) float64 {
	var total float64
	for _, a := range allocs {
		total += p.costs[a.Row][a.Col] * a.Amount
	}
	return total
}
