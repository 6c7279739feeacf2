// File: types.go
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
//	ErrEmptyGraph     - parsed input holds no edges.
//	ErrMalformedEdge  - a graph line is not "source,target,weight".
//	ErrMalformedValue - a value list token is not an integer.

package core

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates an edge endpoint is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEmptyGraph indicates graph input produced no edges at all.
	ErrEmptyGraph = errors.New("core: graph has no edges")

	// ErrMalformedEdge indicates a graph line could not be parsed.
	ErrMalformedEdge = errors.New("core: malformed edge")

	// ErrMalformedValue indicates a value list token is not an integer.
	ErrMalformedValue = errors.New("core: malformed value")
)

// Edge represents a weighted connection between two vertices.
//
// Neighbors returns edges oriented away from the queried vertex, so for an
// undirected edge From may be the endpoint that was written second.
type Edge struct {
	// ID is "e<n>", where n is the 1-based position in the edge list.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of the edge.
	Weight int64

	// Directed restricts traversal to From→To.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all new edges
// (true = directed, false = undirected, the default).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an insertion-ordered edge list.
//
// The vertex set is the union of edge endpoints, ordered by first appearance
// in the edge list; that order is what "first vertex" means to every
// algorithm. Parallel edges are kept. mu guards all fields so a graph can be
// shared between a player and concurrent readers.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	allowLoops bool

	edges    []Edge
	order    []string         // vertex IDs by first appearance
	incident map[string][]int // vertex ID → indices into edges, in edge order
}

// NewGraph creates an empty Graph. By default it is undirected and rejects
// self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{incident: make(map[string][]int)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
