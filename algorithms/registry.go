package algorithms

import (
	"github.com/cockroachdb/errors"
)

// ErrUnknownAlgorithm is returned for identifiers outside IDs().
var ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

// ID is a stable algorithm identifier.
type ID string

const (
	Bubble    ID = "bubble"
	Quick     ID = "quick"
	Merge     ID = "merge"
	Insertion ID = "insertion"
	Selection ID = "selection"
	Heap      ID = "heap"
	Binary    ID = "binary"
	Linear    ID = "linear"
	Dijkstra  ID = "dijkstra"
	BFS       ID = "bfs"
	DFS       ID = "dfs"
	Prim      ID = "prim"
	Kruskal   ID = "kruskal"
	BST       ID = "bst"
	AVL       ID = "avl"
	Inorder   ID = "inorder"
	Preorder  ID = "preorder"
	Postorder ID = "postorder"
)

// Family groups algorithms by the input they consume.
type Family uint8

const (
	FamilySorting Family = iota + 1
	FamilySearching
	FamilyGraph
	FamilyTree
)

func (f Family) String() string {
	switch f {
	case FamilySorting:
		return "sorting"
	case FamilySearching:
		return "searching"
	case FamilyGraph:
		return "graph"
	case FamilyTree:
		return "tree"
	default:
		return "unknown"
	}
}

// Info is display metadata. It never affects execution.
type Info struct {
	ID              ID
	Family          Family
	Name            string
	Description     string
	TimeComplexity  string
	SpaceComplexity string
}

var registry = []Info{
	{Bubble, FamilySorting, "Bubble Sort",
		"Repeatedly steps through the list, compares adjacent elements and swaps them if they are in the wrong order.",
		"O(n²)", "O(1)"},
	{Quick, FamilySorting, "Quick Sort",
		"Divide-and-conquer sort that selects a pivot element and partitions the array around it.",
		"O(n log n)", "O(log n)"},
	{Merge, FamilySorting, "Merge Sort",
		"Divide-and-conquer sort that splits the array into halves, sorts them, and merges the sorted halves.",
		"O(n log n)", "O(n)"},
	{Insertion, FamilySorting, "Insertion Sort",
		"Builds the sorted array one item at a time by inserting each element into the sorted prefix.",
		"O(n²)", "O(1)"},
	{Selection, FamilySorting, "Selection Sort",
		"Repeatedly selects the smallest element of the unsorted region and appends it to the sorted region.",
		"O(n²)", "O(1)"},
	{Heap, FamilySorting, "Heap Sort",
		"Builds a max heap, then repeatedly moves the maximum to the end of the unsorted region.",
		"O(n log n)", "O(1)"},
	{Binary, FamilySearching, "Binary Search",
		"Finds a target in a sorted array by repeatedly halving the search interval.",
		"O(log n)", "O(1)"},
	{Linear, FamilySearching, "Linear Search",
		"Checks each element in turn until the target is found or the array ends.",
		"O(n)", "O(1)"},
	{Dijkstra, FamilyGraph, "Dijkstra's Algorithm",
		"Finds the shortest distance from a start node to every other node of a non-negatively weighted graph.",
		"O(V²)", "O(V)"},
	{BFS, FamilyGraph, "Breadth-First Search",
		"Explores a graph level by level, visiting all neighbors of a node before moving to the next level.",
		"O(V + E)", "O(V)"},
	{DFS, FamilyGraph, "Depth-First Search",
		"Explores a graph by going as deep as possible along each branch before backtracking.",
		"O(V + E)", "O(V)"},
	{Prim, FamilyGraph, "Prim's Algorithm",
		"Grows a minimum spanning tree from a start node by repeatedly adding the lightest edge leaving the tree.",
		"O(V·E)", "O(V)"},
	{Kruskal, FamilyGraph, "Kruskal's Algorithm",
		"Finds a minimum spanning forest by adding edges in weight order unless they close a cycle.",
		"O(E log E)", "O(V)"},
	{BST, FamilyTree, "Binary Search Tree",
		"Inserts values into an unbalanced binary search tree, then searches it.",
		"O(h) where h is the height", "O(n)"},
	{AVL, FamilyTree, "AVL Tree",
		"Self-balancing binary search tree where the heights of the two child subtrees of any node differ by at most one.",
		"O(log n)", "O(n)"},
	{Inorder, FamilyTree, "Inorder Traversal",
		"Visits the left subtree, then the root, and finally the right subtree.",
		"O(n)", "O(h) where h is the height"},
	{Preorder, FamilyTree, "Preorder Traversal",
		"Visits the root first, then the left subtree, and finally the right subtree.",
		"O(n)", "O(h) where h is the height"},
	{Postorder, FamilyTree, "Postorder Traversal",
		"Visits the left subtree, then the right subtree, and finally the root.",
		"O(n)", "O(h) where h is the height"},
}

var byID = func() map[ID]Info {
	m := make(map[ID]Info, len(registry))
	for _, in := range registry {
		m[in.ID] = in
	}
	return m
}()

// IDs returns every identifier, grouped by family.
func IDs() []ID {
	out := make([]ID, len(registry))
	for i, in := range registry {
		out[i] = in.ID
	}
	return out
}

// All returns the metadata of every algorithm in IDs() order.
func All() []Info {
	return append([]Info(nil), registry...)
}

// Lookup returns the metadata for id.
func Lookup(id ID) (Info, error) {
	in, ok := byID[id]
	if !ok {
		return Info{}, errors.WithHint(
			errors.Wrapf(ErrUnknownAlgorithm, "%q", string(id)),
			"run `algostep list` for the available identifiers")
	}
	return in, nil
}

// FamilyOf returns the family of id, or 0 when id is unknown.
func FamilyOf(id ID) Family { return byID[id].Family }
