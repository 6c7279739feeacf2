// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// WeightFn draws one edge weight.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn is uniform over [MinWeight, MaxWeight].
func DefaultWeightFn(rng *rand.Rand) int64 {
	return MinWeight + rng.Int63n(MaxWeight-MinWeight+1)
}

// ConstantWeightFn always returns value. Panics on negative value, which
// Dijkstra would reject.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}
	return func(*rand.Rand) int64 { return value }
}

// UniformWeightFn is uniform over [lo, hi]. Panics unless 0 <= lo <= hi.
func UniformWeightFn(lo, hi int64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	return func(rng *rand.Rand) int64 {
		if hi == lo {
			return lo
		}
		return lo + rng.Int63n(hi-lo+1)
	}
}
