package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/step"
	"github.com/katalvlaran/algostep/unionfind"
)

// Kruskal computes a minimum spanning forest of an undirected graph.
//
// Steps:
//  1. Validate the graph (non-nil, undirected, non-empty).
//  2. Sort edges by ascending Weight with sort.SliceStable, so equal
//     weights keep input order.
//  3. For every edge emit Check, then Edge when union succeeds or Skip when
//     it would close a cycle. Every edge is examined; there is no early exit
//     at |V|-1, so the log shows each rejection.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph, opts ...Option) (*Result, error) {
	vertices, err := validate(graph)
	if err != nil {
		return nil, err
	}
	o := build(opts)
	rec := step.NewRecorder(o.Record...)

	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	desc := fmt.Sprintf("Starting Kruskal's algorithm with %d nodes", len(vertices))
	if err := rec.Emit(step.NewInit(desc, "")); err != nil {
		return nil, err
	}

	uf := unionfind.New(vertices...)
	res := &Result{Edges: make([]core.Edge, 0, len(vertices)-1)}
	for _, e := range edges {
		desc := fmt.Sprintf("Checking edge %s -> %s with weight %d", e.From, e.To, e.Weight)
		if err := rec.Emit(step.NewCheck(desc, e.From, e.To, e.Weight)); err != nil {
			return nil, err
		}
		var s step.Step
		if uf.Union(e.From, e.To) {
			res.Edges = append(res.Edges, e)
			res.Weight += e.Weight
			s = step.NewEdge(fmt.Sprintf("Adding edge %s -> %s to MST (weight: %d)", e.From, e.To, e.Weight), e.From, e.To, e.Weight)
		} else {
			s = step.NewSkip(fmt.Sprintf("Skipping edge %s -> %s (would create cycle)", e.From, e.To), e.From, e.To, e.Weight)
		}
		if err := rec.Emit(s); err != nil {
			return nil, err
		}
	}
	res.Log = rec.Log()

	return res, nil
}
