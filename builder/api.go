// SPDX-License-Identifier: MIT
//
// api.go - public generators. Each resolves its own builderConfig, so two
// calls with the same seed produce the same output.

package builder

import (
	"github.com/katalvlaran/algostep/core"
)

// RandomArray returns n values drawn from the value range.
// Complexity: O(n).
func RandomArray(n int, opts ...BuilderOption) ([]int, error) {
	if n < 0 {
		return nil, builderErrorf(MethodRandomArray, ErrBadSize, "n=%d", n)
	}
	cfg := newBuilderConfig(opts...)

	return cfg.values(n), nil
}

// RandomTree returns n tree insertion values. Duplicates may occur; the
// trees ignore them.
// Complexity: O(n).
func RandomTree(n int, opts ...BuilderOption) ([]int, error) {
	if n < 0 {
		return nil, builderErrorf(MethodRandomTree, ErrBadSize, "n=%d", n)
	}
	cfg := newBuilderConfig(opts...)

	return cfg.values(n), nil
}

// RandomTarget returns one value from the value range.
func RandomTarget(opts ...BuilderOption) int {
	return newBuilderConfig(opts...).value()
}

// RandomGraph builds an undirected graph on n labelled nodes (see the
// package doc for the edge rule).
// Complexity: O(n·maxEdges).
func RandomGraph(n int, opts ...BuilderOption) (*core.Graph, error) {
	if n < MinGraphNodes {
		return nil, builderErrorf(MethodRandomGraph, ErrTooFewVertices, "n=%d < %d", n, MinGraphNodes)
	}
	cfg := newBuilderConfig(opts...)
	g := core.NewGraph()
	if err := cfg.randomEdges(g, n); err != nil {
		return nil, builderErrorf(MethodRandomGraph, err, "n=%d", n)
	}

	return g, nil
}

// RandomGraphText is RandomGraph rendered in the source,target,weight
// input format.
func RandomGraphText(n int, opts ...BuilderOption) (string, error) {
	g, err := RandomGraph(n, opts...)
	if err != nil {
		return "", err
	}

	return core.FormatEdges(g), nil
}
