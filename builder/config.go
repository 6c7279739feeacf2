// SPDX-License-Identifier: MIT

package builder

import (
	"golang.org/x/exp/rand"
)

// builderConfig is the resolved option set shared by all generators.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn

	// inclusive value range for arrays, trees and targets
	minValue, maxValue int

	// inclusive bounds on edges drawn per graph node
	minEdges, maxEdges int
}

// newBuilderConfig applies opts over the defaults. Without WithSeed or
// WithRand the generator is seeded with 1, so an unconfigured builder is
// still deterministic.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
		minValue: MinValue,
		maxValue: MaxValue,
		minEdges: MinEdgesPerNode,
		maxEdges: MaxEdgesPerNode,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(1))
	}

	return cfg
}

// between draws uniformly from [lo, hi].
func (c builderConfig) between(lo, hi int) int {
	return lo + c.rng.Intn(hi-lo+1)
}

// value draws one array, tree or target value.
func (c builderConfig) value() int {
	return c.between(c.minValue, c.maxValue)
}
