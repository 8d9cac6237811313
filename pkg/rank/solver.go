package rank

import (
	"cmp"
	"math"
	"slices"

	"github.com/matzehuels/filerank/pkg/errors"
)

const (
	// Alpha is the PageRank damping factor: the share of probability
	// mass that follows edges rather than teleporting uniformly.
	Alpha = 0.85

	// Epsilon is the L1 convergence tolerance of the power iteration.
	Epsilon = 0.00001

	// maxIterations bounds the power iteration. The damped transition
	// matrix is properly stochastic, so hitting this ceiling indicates
	// a construction bug, not slow input.
	maxIterations = 10000
)

// Solve computes a stationary importance weight per candidate and
// returns the candidates sorted by descending weight, ties broken by
// descending dependents, remaining ties by encounter order.
//
// Edge weights accumulate the source's line count per edge and are
// normalized by total outbound mass, which cancels to a uniform
// per-edge transition probability; duplicate edges to the same target
// inflate its share. Dangling candidates (no outbound mass) leak their
// weight, which is damped and redistributed uniformly each iteration.
func Solve(set *Set) ([]*Candidate, error) {
	n := len(set.candidates)
	if n == 0 {
		return nil, nil
	}

	weigh(set)

	inverse := 1 / float64(n)
	for _, c := range set.candidates {
		c.Weight = inverse
	}

	collected := make(map[string]float64, n)
	for range maxIterations {
		for _, c := range set.candidates {
			collected[c.Key] = c.Weight
		}

		leaked := 0.0
		for _, c := range set.candidates {
			if c.outbound == 0 {
				leaked += collected[c.Key]
			}
		}

		for _, c := range set.candidates {
			c.Weight = 0
		}
		leaked *= Alpha

		for _, c := range set.candidates {
			mass := collected[c.Key]
			for target, edgeWeight := range c.links {
				// Unresolved targets drop their share silently.
				if t, ok := set.index[target]; ok {
					t.Weight += Alpha * mass * edgeWeight
				}
			}
		}

		base := (1-Alpha)*inverse + leaked*inverse
		delta := 0.0
		for _, c := range set.candidates {
			c.Weight += base
			delta += math.Abs(c.Weight - collected[c.Key])
		}

		if delta <= Epsilon {
			ranked := slices.Clone(set.candidates)
			slices.SortStableFunc(ranked, Compare)
			return ranked, nil
		}
	}

	return nil, errors.New(errors.ErrCodeConvergence,
		"power iteration did not converge within %d iterations", maxIterations)
}

// weigh builds the normalized transition weights. It resets solver
// state first, so Solve can run repeatedly on the same set.
func weigh(set *Set) {
	for _, c := range set.candidates {
		c.links = make(map[string]float64, len(c.Dependencies))
		c.outbound = 0
		for _, target := range c.Dependencies {
			c.outbound += float64(c.Lines)
			c.links[target] += float64(c.Lines)
		}
		if c.outbound > 0 {
			for target := range c.links {
				c.links[target] /= c.outbound
			}
		}
	}
}

// Compare orders candidates by descending weight, then descending
// dependents. It reports zero for full ties, so stable sorts preserve
// encounter order. The dependency sequencer uses the same ordering.
func Compare(a, b *Candidate) int {
	if d := cmp.Compare(b.Weight, a.Weight); d != 0 {
		return d
	}
	return cmp.Compare(b.Dependents, a.Dependents)
}
