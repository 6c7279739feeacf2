// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/algostep/core"
)

func (c builderConfig) values(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = c.value()
	}

	return out
}

// randomEdges gives node i between minEdges and maxEdges edges to
// (i + 1 + r) mod n with r in [0, n-2], so the target is never i.
func (c builderConfig) randomEdges(g *core.Graph, n int) error {
	for i := 0; i < n; i++ {
		k := c.between(c.minEdges, c.maxEdges)
		for j := 0; j < k; j++ {
			to := (i + 1 + c.rng.Intn(n-1)) % n
			if _, err := g.AddEdge(c.idFn(i), c.idFn(to), c.weightFn(c.rng)); err != nil {
				return err
			}
		}
	}

	return nil
}
