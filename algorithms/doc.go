// Package algorithms is the registry of every visualizable algorithm.
//
// Each algorithm has a stable string identifier (see IDs), a Family that
// decides which input it consumes and how a player paces it, and display
// metadata (Lookup). Run validates the Input for the identifier, then
// dispatches to the implementing package and returns the complete step log:
//
//	sorting      bubble quick merge insertion selection heap
//	searching    binary linear
//	graph        dijkstra bfs dfs prim kruskal
//	tree         bst avl inorder preorder postorder
//
// Validation always happens before the first step. When Run fails it
// returns no log at all, never a partial one.
//
// Input defaults:
//
//   - binary and linear search for Input.Target, or the middle value of the
//     array when no target is given.
//   - bst searches for Input.Target, or the middle value of Input.Tree.
//   - inorder, preorder and postorder build their BST from Input.Tree, or
//     from Input.Array when no tree values are given.
//   - graph algorithms start from the graph's first vertex.
package algorithms
