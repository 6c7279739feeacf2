// Package bfs provides breadth-first search over a core.Graph that records
// every enqueue and visit as a step.
//
// What
//
//   - Explore vertices level by level from a start vertex (the first vertex
//     of the graph unless WithStart is given).
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → level from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Log: Init, then Visit (with level) per first dequeue and Edge per enqueue
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	core.Neighbors returns edges in edge-list order and BFS enqueues in that
//	order, so the log is fully reproducible for the same input text.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E)   (a vertex may be queued once per incident edge)
//
// Usage
//
//	res, err := bfs.BFS(g, bfs.WithContext(ctx))
//	if err != nil {
//		// ErrGraphNil, core.ErrEmptyGraph, ErrStartVertexNotFound, ErrOptionViolation
//	}
//	for _, s := range res.Log.Steps() { ... }
package bfs
