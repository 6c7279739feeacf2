// Package core provides the in-memory Graph used by the graph algorithms,
// and the parsers for graph and value-list input.
//
// The Graph is an edge list, not an adjacency matrix:
//
//   - Vertices are the endpoints of edges, ordered by first appearance.
//   - Edges keep insertion order; parallel edges are allowed.
//   - Undirected edges (the default) are traversable both ways.
//   - Self-loops are rejected unless WithLoops is given.
//
// Determinism
//
//	Vertices(), Edges() and Neighbors() never depend on map iteration, so
//	every algorithm built on them produces the same step log for the same
//	input text.
//
// Input format
//
//	ParseEdges accepts one "source,target,weight" edge per line:
//
//	    0,1,4
//	    1,2,3
//	    2,0,5
//
//	Blank lines are ignored. A malformed line fails the parse with its line
//	number and a hint (see errors.FlattenHints). ParseValues accepts
//	"5,3,8,1".
package core
