// SPDX-License-Identifier: MIT
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; generators
// themselves never panic.

package builder

import (
	"golang.org/x/exp/rand"
)

// BuilderOption customizes a generator by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: idx -> string. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a fresh RNG, making every draw reproducible.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithValueRange sets the inclusive range for values and targets. Panics
// when lo > hi.
func WithValueRange(lo, hi int) BuilderOption {
	if lo > hi {
		panic("builder: WithValueRange(lo>hi)")
	}
	return func(c *builderConfig) { c.minValue, c.maxValue = lo, hi }
}

// WithEdgesPerNode sets the inclusive number of edges drawn per graph
// node. Panics unless 1 <= lo <= hi.
func WithEdgesPerNode(lo, hi int) BuilderOption {
	if lo < 1 || lo > hi {
		panic("builder: WithEdgesPerNode requires 1 <= lo <= hi")
	}
	return func(c *builderConfig) { c.minEdges, c.maxEdges = lo, hi }
}
