// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.

package prim_kruskal

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/step"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected graph.
// Returned when graph is nil or directed.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected graph")

// ErrUnknownMethod is returned by Compute for a method name it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// ErrRootNotFound indicates that the Prim root is not a vertex of the graph.
var ErrRootNotFound = errors.New("prim_kruskal: root vertex not found")

// MethodPrim selects Prim's algorithm (grow from a root across the cut).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Root   string - start vertex ID for Prim (empty: first vertex); ignored by Kruskal.
//	Record        - recorder options (context, observer).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string

	// Record configures the step recorder.
	Record []step.Option
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm and ignore by Kruskal.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithStepOptions forwards recorder options such as step.WithContext.
func WithStepOptions(o ...step.Option) Option {
	return func(opts *MSTOptions) {
		opts.Record = append(opts.Record, o...)
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = "" (ignored by Kruskal).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
	}
}

// Result is a minimum spanning tree, or forest when the graph is
// disconnected.
type Result struct {
	// Edges accepted, in acceptance order, with their input orientation.
	Edges []core.Edge

	// Weight is the sum of accepted edge weights.
	Weight int64

	// Unreachable lists vertices Prim could not reach from the root.
	// Always empty for Kruskal, which spans every component.
	Unreachable []string

	// Log is the recorded step sequence.
	Log *step.Log
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal(graph).
//	– If opts.Method == MethodPrim:    calls Prim(graph) rooted at opts.Root.
//	– Otherwise:                        returns ErrUnknownMethod.
func Compute(graph *core.Graph, opts MSTOptions) (*Result, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph, WithStepOptions(opts.Record...))
	case MethodPrim:
		return Prim(graph, WithRoot(opts.Root), WithStepOptions(opts.Record...))
	default:
		return nil, errors.Wrapf(ErrUnknownMethod, "%q", opts.Method)
	}
}

func validate(graph *core.Graph) ([]string, error) {
	if graph == nil || graph.Directed() {
		return nil, ErrInvalidGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, errors.Wrap(core.ErrEmptyGraph, "prim_kruskal")
	}
	return vertices, nil
}

func build(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
