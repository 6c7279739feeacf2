// Package dfs defines types and options for depth-first search traversal,
// including cancellation, depth limiting and full-graph (forest) traversal.
package dfs

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/step"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Start is the root vertex. Empty means the first vertex of the graph.
	Start string

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FullTraversal, if true, restarts from every unvisited vertex in
	// vertex order, covering disconnected components. Default is false.
	FullTraversal bool

	// Record configures the step recorder (context, observer).
	Record []step.Option
}

// DefaultOptions returns a DFSOptions struct with:
//   - start at the first vertex
//   - No depth limit (MaxDepth = -1)
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{MaxDepth: -1}
}

// WithStart overrides the root vertex.
func WithStart(id string) Option {
	return func(o *DFSOptions) { o.Start = id }
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return WithStepOptions(step.WithContext(ctx))
}

// WithStepOptions forwards recorder options such as step.WithObserver.
func WithStepOptions(opts ...step.Option) Option {
	return func(o *DFSOptions) { o.Record = append(o.Record, opts...) }
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Discovery records vertices in the sequence they were entered (pre-order).
	Discovery []string

	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Depth maps each vertex ID to its distance (#edges) from its root.
	Depth map[string]int

	// Parent maps each vertex ID to the ID of the vertex from which it was first discovered.
	// Roots do not appear in this map.
	Parent map[string]string

	// Visited flags which vertices were reached during the traversal.
	Visited map[string]bool

	// Log is the recorded step sequence.
	Log *step.Log
}
