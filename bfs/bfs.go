package bfs

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/step"
)

// queueItem pairs a vertex ID with its BFS level and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	rec     *step.Recorder
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g, by default from its first vertex.
//
// A vertex may sit in the queue more than once; only its first dequeue is
// a visit. Every enqueue records an Edge step, every first dequeue a Visit
// step carrying the level.
//
// Returns ErrGraphNil, core.ErrEmptyGraph, ErrStartVertexNotFound,
// ErrOptionViolation, or the recorder's cancellation/observer error.
func BFS(g *core.Graph, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, errors.Wrap(core.ErrEmptyGraph, "bfs")
	}
	start := o.Start
	if start == "" {
		start = vertices[0]
	}
	if !g.HasVertex(start) {
		return nil, errors.Wrapf(ErrStartVertexNotFound, "%q", start)
	}

	n := len(vertices)
	w := &walker{
		graph:   g,
		opts:    o,
		rec:     step.NewRecorder(o.Record...),
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	if err := w.rec.Emit(step.NewInit(fmt.Sprintf("Starting BFS from node %s", start), start)); err != nil {
		return nil, err
	}
	w.queue = append(w.queue, queueItem{id: start})
	if err := w.loop(); err != nil {
		return nil, err
	}
	w.res.Log = w.rec.Log()

	return w.res, nil
}

// loop processes the queue until empty or error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if w.visited[item.id] {
			continue
		}
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit records the vertex in Order, Depth and Parent and emits its step.
func (w *walker) visit(item queueItem) error {
	w.visited[item.id] = true
	w.res.Order = append(w.res.Order, item.id)
	w.res.Depth[item.id] = item.depth
	if item.parent != "" {
		w.res.Parent[item.id] = item.parent
	}
	desc := fmt.Sprintf("Visiting node %s at level %d", item.id, item.depth)
	return w.rec.Emit(step.NewMeasuredVisit(desc, item.id, step.MeasureLevel, int64(item.depth)))
}

// enqueueNeighbors enqueues every unvisited neighbor in edge order,
// respecting MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		return errors.Wrapf(err, "bfs: neighbors of %q", item.id)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, e := range edges {
		if w.visited[e.To] {
			continue
		}
		w.queue = append(w.queue, queueItem{id: e.To, depth: next, parent: item.id})
		desc := fmt.Sprintf("Adding node %s to queue at level %d", e.To, next)
		if err := w.rec.Emit(step.NewEdge(desc, item.id, e.To, e.Weight)); err != nil {
			return err
		}
	}
	return nil
}
