// SPDX-License-Identifier: MIT

package builder

const (
	// MinValue and MaxValue bound generated array values, tree values and
	// targets (inclusive).
	MinValue = 1
	MaxValue = 100

	// MinWeight and MaxWeight bound DefaultWeightFn (inclusive).
	MinWeight int64 = 1
	MaxWeight int64 = 9

	// MinGraphNodes is the smallest graph RandomGraph builds; with fewer
	// nodes no edge target can differ from its source.
	MinGraphNodes = 2

	// MinEdgesPerNode and MaxEdgesPerNode bound the edges drawn per node.
	MinEdgesPerNode = 1
	MaxEdgesPerNode = 3

	// Method tokens used in error context.
	MethodRandomArray  = "RandomArray"
	MethodRandomGraph  = "RandomGraph"
	MethodRandomTree   = "RandomTree"
	MethodRandomTarget = "RandomTarget"
)
