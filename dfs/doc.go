// Package dfs implements recursive depth-first search over a core.Graph,
// recording entry, descent and backtracking as steps.
//
// Log shape for a single root:
//
//	Init(root)
//	Visit(v, depth) on entry
//	Edge(v→w) before descending into each still-unvisited neighbor w
//	Backtrack(v) after v's neighbor list is exhausted
//
// Neighbors are explored in edge-list order. Recursion depth is bounded by
// |V|; the inputs this package serves stay small enough for the goroutine
// stack.
//
// Complexity: O(V + E) time, O(V) memory.
package dfs
