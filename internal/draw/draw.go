// Package draw provides the random primitives used for badge selection:
// uniform draws and a weighted categorical sampler.
package draw

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"time"
)

// Source is the random source consumed by the badge factory.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// New returns a deterministic source for the given seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandom returns a source seeded from the wall clock.
func NewRandom() *rand.Rand {
	return New(uint64(time.Now().UnixNano()))
}

// Categorical samples an index with probability proportional to its weight.
// Prefix sums are computed once; Pick binary-searches them.
type Categorical struct {
	prefix []float64
	total  float64
}

// NewCategorical builds a sampler over weights. Weights must be finite and
// non-negative with a positive total.
func NewCategorical(weights []float64) (*Categorical, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("categorical: no weights")
	}
	prefix := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("categorical: invalid weight %v at index %d", w, i)
		}
		total += w
		prefix[i] = total
	}
	if total <= 0 {
		return nil, fmt.Errorf("categorical: weights sum to %v", total)
	}
	return &Categorical{prefix: prefix, total: total}, nil
}

// Total returns the sum of all weights.
func (c *Categorical) Total() float64 {
	return c.total
}

// Len returns the number of categories.
func (c *Categorical) Len() int {
	return len(c.prefix)
}

// Pick draws a value in [0, total) and returns the first index whose
// cumulative weight is >= the draw. A draw landing exactly on a boundary
// resolves to the earlier entry.
func (c *Categorical) Pick(src Source) int {
	return c.IndexOf(src.Float64() * c.total)
}

// IndexOf returns the index selected by the draw r in [0, total).
// Draws past the last prefix (float accumulation error) select the last entry.
func (c *Categorical) IndexOf(r float64) int {
	i := sort.SearchFloat64s(c.prefix, r)
	if i >= len(c.prefix) {
		return len(c.prefix) - 1
	}
	return i
}
