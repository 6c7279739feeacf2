// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/step"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize BFS execution.
type BFSOptions struct {
	// Start is the source vertex. Empty means the first vertex of the graph.
	Start string

	// MaxDepth, if > 0, stops enqueuing beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// Record configures the step recorder (context, observer).
	Record []step.Option

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions that starts at the first vertex with
// no depth limit.
func DefaultOptions() BFSOptions {
	return BFSOptions{}
}

// WithStart overrides the source vertex.
func WithStart(id string) Option {
	return func(o *BFSOptions) { o.Start = id }
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return WithStepOptions(step.WithContext(ctx))
}

// WithStepOptions forwards recorder options such as step.WithObserver.
func WithStepOptions(opts ...step.Option) Option {
	return func(o *BFSOptions) { o.Record = append(o.Record, opts...) }
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex ID to its level (in edges) from the start.
//   - Parent: map from vertex ID to its predecessor in the BFS tree.
//   - Log: the recorded steps.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
	Log    *step.Log
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, errors.Newf("bfs: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
