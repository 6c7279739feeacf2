// Package prim_kruskal computes minimum spanning trees on undirected
// weighted graphs with Prim's and Kruskal's algorithms, recording each
// candidate edge as a step.
//
// Algorithms Provided
//
//   - Kruskal(g, opts...) (*Result, error)
//
//   - Strategy: stable-sort all edges by weight, then walk them with a
//     union-find (package unionfind). Check per edge, Edge on union, Skip on
//     cycle. Produces a spanning forest when the graph is disconnected.
//
//   - Complexity: O(E log E + α(V)·E).
//
//   - Prim(g, opts...) (*Result, error)
//
//   - Strategy: grow from the root; each round checks every cut-crossing
//     edge in edge order and accepts the lightest. A round with no crossing
//     edge emits Unreachable and ends the run.
//
//   - Complexity: O(V·E) (linear scan, no heap).
//
// Tie-breaking
//
//	Both algorithms prefer the edge that appears first in the input among
//	equal weights.
//
// Usage
//
//	res, err := prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: prim_kruskal.MethodPrim})
//	if err != nil { ... }
//	fmt.Println(res.Weight, len(res.Edges))
package prim_kruskal
