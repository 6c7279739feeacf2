// SPDX-License-Identifier: MIT

// Package builder generates random inputs for every algorithm family:
// value arrays for the sorts and searches, edge-list graphs for the graph
// algorithms, insertion sequences for the trees, and search targets.
//
// The package follows the functional-options pattern:
//
//   - BuilderOption mutates an unexported builderConfig before use.
//   - Option constructors validate eagerly and panic on meaningless
//     arguments (nil functions, empty ranges). Generators never panic; they
//     return sentinel errors wrapped with context.
//   - Randomness flows only through the configured *rand.Rand
//     (golang.org/x/exp/rand). WithSeed makes every generator reproducible.
//
// Vertex-ID schemes (IDFn):
//
//   - DefaultIDFn:      decimal strings ("0","1",…), the default.
//   - SymbolIDFn:       single letters ("A".."Z").
//   - ExcelColumnIDFn:  Excel-style columns ("A","Z","AA",…).
//
// Edge-weight distributions (WeightFn):
//
//   - DefaultWeightFn:  uniform over [MinWeight, MaxWeight] (1..9).
//   - ConstantWeightFn: a fixed weight.
//   - UniformWeightFn:  uniform over a caller-chosen closed range.
//
// Random graphs give every node i between 1 and 3 outgoing edges whose
// targets are drawn from the other nodes, so the generated edge list never
// contains a self-loop but may contain parallel edges.
package builder
