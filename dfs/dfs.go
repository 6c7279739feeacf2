package dfs

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/step"
)

// dfsWalker holds the state of one traversal.
type dfsWalker struct {
	graph *core.Graph    // underlying graph
	opts  DFSOptions     // traversal options
	rec   *step.Recorder // step sink
	res   *DFSResult     // result collector
}

// DFS performs depth-first search on g from its first vertex (or
// WithStart). With WithFullTraversal it then restarts from every vertex
// still unvisited, emitting a fresh Init for each new root.
//
// Steps: Visit (with depth) on entry, Edge before descending into an
// unvisited neighbor, and one Backtrack per vertex once its neighbor list is
// exhausted. Visited state is checked when a neighbor is reached, not when
// the list is built, so no vertex is entered twice.
func DFS(g *core.Graph, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, errors.Wrap(core.ErrEmptyGraph, "dfs")
	}
	start := dopts.Start
	if start == "" {
		start = vertices[0]
	}
	if !g.HasVertex(start) {
		return nil, errors.Wrapf(ErrStartVertexNotFound, "%q", start)
	}

	n := len(vertices)
	w := &dfsWalker{
		graph: g,
		opts:  dopts,
		rec:   step.NewRecorder(dopts.Record...),
		res: &DFSResult{
			Discovery: make([]string, 0, n),
			Order:     make([]string, 0, n),
			Depth:     make(map[string]int, n),
			Parent:    make(map[string]string, n),
			Visited:   make(map[string]bool, n),
		},
	}

	if err := w.root(start); err != nil {
		return nil, err
	}
	if dopts.FullTraversal {
		for _, v := range vertices {
			if w.res.Visited[v] {
				continue
			}
			if err := w.root(v); err != nil {
				return nil, err
			}
		}
	}
	w.res.Log = w.rec.Log()

	return w.res, nil
}

func (w *dfsWalker) root(id string) error {
	if err := w.rec.Emit(step.NewInit(fmt.Sprintf("Starting DFS from node %s", id), id)); err != nil {
		return err
	}
	return w.traverse(id, 0)
}

// traverse visits vertex id at given depth, recursing to neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Discovery = append(w.res.Discovery, id)
	desc := fmt.Sprintf("Visiting node %s at depth %d", id, depth)
	if err := w.rec.Emit(step.NewMeasuredVisit(desc, id, step.MeasureDepth, int64(depth))); err != nil {
		return err
	}

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return errors.Wrapf(err, "dfs: neighbors of %q", id)
	}
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, e := range nbs {
			if w.res.Visited[e.To] {
				continue
			}
			desc := fmt.Sprintf("Exploring edge %s -> %s", id, e.To)
			if err := w.rec.Emit(step.NewEdge(desc, id, e.To, e.Weight)); err != nil {
				return err
			}
			w.res.Parent[e.To] = id
			if err := w.traverse(e.To, depth+1); err != nil {
				return err
			}
		}
	}

	w.res.Order = append(w.res.Order, id)
	return w.rec.Emit(step.NewBacktrack(fmt.Sprintf("Backtracking from node %s", id), id))
}
