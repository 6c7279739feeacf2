// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// graphs as a step generator.
//
// Each round settles the unvisited vertex of minimum tentative distance,
// found by a linear scan in vertex order (the first vertex wins ties), and
// relaxes its incident edges in edge-list order. When the minimum left is
// infinite the remaining vertices are reported in one Unreachable step and
// the run stops.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V)
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative
//     weights and fail fast, before any step is recorded.
//   - A linear scan replaces the priority queue so that every tie-break is
//     visible in the log and matches vertex order.

package dijkstra

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/step"
)

// runner holds the mutable state of one run.
type runner struct {
	g         *core.Graph
	cfg       Options
	rec       *step.Recorder
	dist      map[string]int64
	prev      map[string]string
	unvisited []string // vertex order
}

// Dijkstra computes shortest distances from the source vertex to all other
// vertices of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph) and have at least one edge.
//  2. g must contain Source (ErrVertexNotFound).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, errors.Wrap(core.ErrEmptyGraph, "dijkstra")
	}
	if cfg.Source == "" {
		cfg.Source = vertices[0]
	}
	if !g.HasVertex(cfg.Source) {
		return nil, errors.Wrapf(ErrVertexNotFound, "%q", cfg.Source)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, errors.Wrapf(ErrNegativeWeight, "edge %s->%s weight %d", e.From, e.To, e.Weight)
		}
	}

	r := &runner{
		g:         g,
		cfg:       cfg,
		rec:       step.NewRecorder(cfg.Record...),
		dist:      make(map[string]int64, len(vertices)),
		prev:      make(map[string]string, len(vertices)),
		unvisited: vertices,
	}
	for _, v := range vertices {
		r.dist[v] = Infinity
	}
	r.dist[cfg.Source] = 0

	unreachable, err := r.run()
	if err != nil {
		return nil, err
	}

	res := &Result{
		Source:      cfg.Source,
		Dist:        r.dist,
		Unreachable: unreachable,
		Log:         r.rec.Log(),
	}
	if cfg.ReturnPath {
		res.Prev = r.prev
	}

	return res, nil
}

func (r *runner) run() ([]string, error) {
	desc := fmt.Sprintf("Initializing distances: Start node %s = 0, all others = ∞", r.cfg.Source)
	if err := r.rec.Emit(step.NewInit(desc, r.cfg.Source)); err != nil {
		return nil, err
	}
	for len(r.unvisited) > 0 {
		i := r.closest()
		cur := r.unvisited[i]
		if r.dist[cur] == Infinity {
			rest := append([]string(nil), r.unvisited...)
			err := r.rec.Emit(step.NewUnreachable("Remaining nodes are unreachable from start node", rest))
			return rest, err
		}
		r.unvisited = append(r.unvisited[:i:i], r.unvisited[i+1:]...)
		if err := r.process(cur); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// closest returns the index in unvisited of the minimum tentative
// distance; strict < keeps the earliest vertex on ties.
func (r *runner) closest() int {
	best := 0
	for i, v := range r.unvisited {
		if r.dist[v] < r.dist[r.unvisited[best]] {
			best = i
		}
	}
	return best
}

// process settles cur and relaxes every incident edge.
func (r *runner) process(cur string) error {
	d := r.dist[cur]
	desc := fmt.Sprintf("Visiting node %s (distance: %d)", cur, d)
	if err := r.rec.Emit(step.NewMeasuredVisit(desc, cur, step.MeasureDistance, d)); err != nil {
		return err
	}
	edges, err := r.g.Neighbors(cur)
	if err != nil {
		return errors.Wrapf(err, "dijkstra: neighbors of %q", cur)
	}
	for _, e := range edges {
		desc := fmt.Sprintf("Checking edge %s -> %s with weight %d", cur, e.To, e.Weight)
		if err := r.rec.Emit(step.NewEdge(desc, cur, e.To, e.Weight)); err != nil {
			return err
		}
		if nd := d + e.Weight; nd < r.dist[e.To] {
			r.dist[e.To] = nd
			r.prev[e.To] = cur
			desc := fmt.Sprintf("Updated distance to node %s: %d", e.To, nd)
			if err := r.rec.Emit(step.NewUpdate(desc, e.To, nd)); err != nil {
				return err
			}
		}
	}
	return nil
}
