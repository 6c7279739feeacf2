package algorithms

import (
	"context"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/bfs"
	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/dfs"
	"github.com/katalvlaran/algostep/dijkstra"
	"github.com/katalvlaran/algostep/prim_kruskal"
	"github.com/katalvlaran/algostep/search"
	"github.com/katalvlaran/algostep/sorting"
	"github.com/katalvlaran/algostep/step"
	"github.com/katalvlaran/algostep/tree"
)

var (
	// ErrMissingGraph is returned when a graph algorithm has no graph input.
	ErrMissingGraph = errors.New("algorithms: no graph data")

	// ErrMissingTree is returned when bst or avl has no tree values.
	ErrMissingTree = errors.New("algorithms: no tree data")
)

// Input is everything an algorithm may consume. Only the fields relevant to
// the algorithm's family are read.
type Input struct {
	// Array feeds sorting, searching and the traversal fallback.
	Array []int

	// Target is the value searched by binary, linear and bst.
	Target *int

	// Graph feeds the graph family.
	Graph *core.Graph

	// Tree holds the values inserted, in order, by the tree family.
	Tree []int
}

// Clone deep-copies in.
func (in Input) Clone() Input {
	out := Input{Array: slices.Clone(in.Array), Tree: slices.Clone(in.Tree)}
	if in.Target != nil {
		t := *in.Target
		out.Target = &t
	}
	if in.Graph != nil {
		out.Graph = in.Graph.Clone()
	}
	return out
}

// Result is the outcome of one run.
type Result struct {
	ID  ID
	Log *step.Log

	// Array is the array after the run: sorted for the sorting family, the
	// searched (sorted) array for binary, the input otherwise.
	Array []int
}

// Run validates in for id, executes the algorithm and returns its full log.
// obs, when non-nil, sees every step as it is generated. The caller's input
// is never mutated.
func Run(ctx context.Context, id ID, in Input, obs step.Observer) (*Result, error) {
	info, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	if err := validate(info, in); err != nil {
		return nil, err
	}

	opts := []step.Option{step.WithContext(ctx)}
	if obs != nil {
		opts = append(opts, step.WithObserver(obs))
	}
	res, err := dispatch(id, in, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", id)
	}
	res.ID = id
	return res, nil
}

func validate(info Info, in Input) error {
	switch info.Family {
	case FamilyGraph:
		if in.Graph == nil || in.Graph.EdgeCount() == 0 {
			return errors.WithHint(
				errors.Wrapf(ErrMissingGraph, "%s", info.ID),
				"supply edges as source,target,weight lines")
		}
	case FamilyTree:
		if (info.ID == BST || info.ID == AVL) && len(in.Tree) == 0 {
			return errors.WithHint(
				errors.Wrapf(ErrMissingTree, "%s", info.ID),
				"supply tree values as comma-separated integers")
		}
	}
	return nil
}

func dispatch(id ID, in Input, opts []step.Option) (*Result, error) {
	switch FamilyOf(id) {
	case FamilySorting:
		return runSort(id, in, opts)
	case FamilySearching:
		return runSearch(id, in, opts)
	case FamilyGraph:
		return runGraph(id, in, opts)
	case FamilyTree:
		return runTree(id, in, opts)
	}
	return nil, errors.AssertionFailedf("no dispatcher for %q", id)
}

var sorts = map[ID]func([]int, ...step.Option) (*step.Log, error){
	Bubble:    sorting.Bubble,
	Quick:     sorting.Quick,
	Merge:     sorting.Merge,
	Insertion: sorting.Insertion,
	Selection: sorting.Selection,
	Heap:      sorting.Heap,
}

func runSort(id ID, in Input, opts []step.Option) (*Result, error) {
	a := slices.Clone(in.Array)
	log, err := sorts[id](a, opts...)
	if err != nil {
		return nil, err
	}
	return &Result{Log: log, Array: a}, nil
}

// targetOf returns *t, or the middle element of vals (0 when empty).
func targetOf(t *int, vals []int) int {
	if t != nil {
		return *t
	}
	if len(vals) == 0 {
		return 0
	}
	return vals[len(vals)/2]
}

func runSearch(id ID, in Input, opts []step.Option) (*Result, error) {
	target := targetOf(in.Target, in.Array)
	if id == Linear {
		a := slices.Clone(in.Array)
		res, err := search.Linear(a, target, opts...)
		if err != nil {
			return nil, err
		}
		return &Result{Log: res.Log, Array: a}, nil
	}
	res, sorted, err := search.SortedBinary(in.Array, target, opts...)
	if err != nil {
		return nil, err
	}
	return &Result{Log: res.Log, Array: sorted}, nil
}

func runGraph(id ID, in Input, opts []step.Option) (*Result, error) {
	var (
		log *step.Log
		g   = in.Graph
	)
	switch id {
	case Dijkstra:
		res, err := dijkstra.Dijkstra(g, dijkstra.WithStepOptions(opts...))
		if err != nil {
			return nil, err
		}
		log = res.Log
	case BFS:
		res, err := bfs.BFS(g, bfs.WithStepOptions(opts...))
		if err != nil {
			return nil, err
		}
		log = res.Log
	case DFS:
		res, err := dfs.DFS(g, dfs.WithStepOptions(opts...))
		if err != nil {
			return nil, err
		}
		log = res.Log
	case Prim, Kruskal:
		o := prim_kruskal.DefaultOptions()
		o.Method = string(id)
		o.Record = opts
		res, err := prim_kruskal.Compute(g, o)
		if err != nil {
			return nil, err
		}
		log = res.Log
	}
	return &Result{Log: log, Array: slices.Clone(in.Array)}, nil
}

func runTree(id ID, in Input, opts []step.Option) (*Result, error) {
	var (
		log *step.Log
		err error
	)
	switch id {
	case BST:
		_, log, err = tree.RunBST(in.Tree, targetOf(in.Target, in.Tree), opts...)
	case AVL:
		_, log, err = tree.RunAVL(in.Tree, opts...)
	default:
		vals := in.Tree
		if len(vals) == 0 {
			vals = in.Array
		}
		if len(vals) == 0 {
			return &Result{Log: step.NewLog()}, nil
		}
		var o tree.Order
		if o, err = tree.ParseOrder(string(id)); err == nil {
			_, log, err = tree.RunTraversal(o, vals, opts...)
		}
	}
	if err != nil {
		return nil, err
	}
	return &Result{Log: log, Array: slices.Clone(in.Array)}, nil
}
