package gen

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/optigon/stoneflow/dataset"
)

var (
	// ErrBadShape indicates fewer than two rows or columns were requested.
	ErrBadShape = errors.New("gen: instance needs at least 2 rows and 2 columns")
	// ErrBadRatio indicates a dominant-column ratio outside (0, 1].
	ErrBadRatio = errors.New("gen: dominant ratio must be in (0, 1]")
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// Arbitrary but stable, to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// Cost and quantity ranges of the two families. Integer values keep the
// generated instances exactly balanced and free of float residue.
const (
	uniformCostLo = 1
	uniformCostHi = 100
	canyonLowLo   = 1
	canyonLowHi   = 5
	canyonHighLo  = 60
	canyonHighHi  = 120
	quantityLo    = 10
	quantityHi    = 40
)

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// Uniform generates a rows×cols instance with flat integer costs in
// [uniformCostLo, uniformCostHi] and quantities in [quantityLo, quantityHi],
// demand patched to balance exactly.
//
// Errors: ErrBadShape. Complexity: O(rows·cols).
func Uniform(rows, cols int, seed int64) (*dataset.Instance, error) {
	if rows < 2 || cols < 2 {
		return nil, ErrBadShape
	}
	rng := rngFromSeed(seed)

	costs := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		costs[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			costs[i][j] = float64(randRange(rng, uniformCostLo, uniformCostHi))
		}
	}
	supply, demand := balancedQuantities(rng, rows, cols)

	in := &dataset.Instance{Costs: costs, Supply: supply, Demand: demand}
	in.Meta = describe(in, "uniform", seed, nil)
	return in, nil
}

// Canyon generates a rows×cols instance where ceil(ratio·cols) randomly
// chosen dominant columns carry low costs [canyonLowLo, canyonLowHi] and
// every other column carries high costs [canyonHighLo, canyonHighHi].
// Quantities follow the same balanced scheme as Uniform.
//
// Errors: ErrBadShape, ErrBadRatio. Complexity: O(rows·cols).
func Canyon(rows, cols int, ratio float64, seed int64) (*dataset.Instance, error) {
	if rows < 2 || cols < 2 {
		return nil, ErrBadShape
	}
	if ratio <= 0 || ratio > 1 {
		return nil, ErrBadRatio
	}
	rng := rngFromSeed(seed)

	k := int(float64(cols) * ratio)
	if k < 1 {
		k = 1
	}
	dominant := pickColumns(rng, cols, k)

	isDominant := make([]bool, cols)
	for _, j := range dominant {
		isDominant[j] = true
	}

	costs := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		costs[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			if isDominant[j] {
				costs[i][j] = float64(randRange(rng, canyonLowLo, canyonLowHi))
			} else {
				costs[i][j] = float64(randRange(rng, canyonHighLo, canyonHighHi))
			}
		}
	}
	supply, demand := balancedQuantities(rng, rows, cols)

	in := &dataset.Instance{Costs: costs, Supply: supply, Demand: demand}
	in.Meta = describe(in, "canyon", seed, dominant)
	return in, nil
}

// balancedQuantities draws integer supplies, then draws raw demands,
// rescales them to the supply total and patches the rounding residue one
// unit at a time round-robin until the totals agree exactly.
func balancedQuantities(rng *rand.Rand, rows, cols int) (supply, demand []float64) {
	supply = make([]float64, rows)
	var total int
	for i := 0; i < rows; i++ {
		s := randRange(rng, quantityLo, quantityHi)
		supply[i] = float64(s)
		total += s
	}

	raw := make([]int, cols)
	var rawTotal int
	for j := 0; j < cols; j++ {
		raw[j] = randRange(rng, quantityLo, quantityHi)
		rawTotal += raw[j]
	}

	demand = make([]float64, cols)
	scale := float64(total) / float64(rawTotal)
	var demandTotal int
	for j := 0; j < cols; j++ {
		d := int(float64(raw[j])*scale + 0.5)
		if d < 1 {
			d = 1
		}
		demand[j] = float64(d)
		demandTotal += d
	}

	// Patch the rounding residue one unit at a time, round-robin, never
	// driving a demand below 1.
	diff := total - demandTotal
	for j := 0; diff != 0; j = (j + 1) % cols {
		if diff > 0 {
			demand[j]++
			diff--
		} else if demand[j] > 1 {
			demand[j]--
			diff++
		}
	}
	return supply, demand
}

// pickColumns samples k distinct column indices, returned ascending for a
// stable metadata record.
func pickColumns(rng *rand.Rand, cols, k int) []int {
	perm := rng.Perm(cols)
	out := make([]int, k)
	copy(out, perm[:k])
	sort.Ints(out)
	return out
}

// randRange returns a uniform integer in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// describe fills the metadata block for a freshly generated instance.
func describe(in *dataset.Instance, family string, seed int64, dominant []int) *dataset.Metadata {
	var totalSupply, totalDemand float64
	for _, s := range in.Supply {
		totalSupply += s
	}
	for _, d := range in.Demand {
		totalDemand += d
	}
	return &dataset.Metadata{
		Dimensions:   fmt.Sprintf("%dx%d", len(in.Supply), len(in.Demand)),
		TotalSupply:  totalSupply,
		TotalDemand:  totalDemand,
		Family:       family,
		Seed:         seed,
		DominantCols: dominant,
	}
}
