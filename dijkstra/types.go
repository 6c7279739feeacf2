// Package dijkstra defines types and configuration options for Dijkstra's
// shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– Source:     ID of the starting vertex (default: the graph's first vertex).
//	– ReturnPath: if true, Result.Prev is populated for path reconstruction.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.

package dijkstra

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/step"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Infinity is the distance reported for unreachable vertices.
const Infinity int64 = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source     string        // The ID of the source vertex; empty means first vertex
	ReturnPath bool          // Whether to populate Result.Prev
	Record     []step.Option // Recorder options (context, observer)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with the given source and no path map.
func DefaultOptions(source string) Options {
	return Options{Source: source}
}

// Source sets the Source field of Options to the given string.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return WithStepOptions(step.WithContext(ctx))
}

// WithStepOptions forwards recorder options such as step.WithObserver.
func WithStepOptions(opts ...step.Option) Option {
	return func(o *Options) { o.Record = append(o.Record, opts...) }
}

// Result is the outcome of one run.
type Result struct {
	// Source actually used.
	Source string

	// Dist maps every vertex to its shortest distance, Infinity if unreachable.
	Dist map[string]int64

	// Prev maps v to its predecessor on a shortest path (only with
	// WithReturnPath). Unreachable vertices and the source are absent.
	Prev map[string]string

	// Unreachable lists vertices never settled, in vertex order.
	Unreachable []string

	// Log is the recorded step sequence.
	Log *step.Log
}

// PathTo walks Prev back from dest. It needs WithReturnPath.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Dist[dest]
	if !ok || d == Infinity {
		return nil, errors.Newf("dijkstra: no path to %q", dest)
	}
	if r.Prev == nil {
		return nil, errors.New("dijkstra: predecessor map not recorded, use WithReturnPath")
	}
	path := []string{dest}
	for cur := dest; cur != r.Source; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
