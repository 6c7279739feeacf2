package prim_kruskal

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/step"
)

// Prim grows a minimum spanning tree from the root (first vertex by
// default).
//
// Each round scans the whole edge list in order, emits Check for every edge
// crossing the visited/unvisited cut, and accepts the strictly lightest one
// (the first seen wins ties). If a round finds no crossing edge, the
// vertices left over are reported in a single Unreachable step and the run
// ends, leaving a tree of the root's component only.
//
// Complexity: O(V·E) time, O(V) memory.
func Prim(graph *core.Graph, opts ...Option) (*Result, error) {
	vertices, err := validate(graph)
	if err != nil {
		return nil, err
	}
	o := build(opts)
	root := o.Root
	if root == "" {
		root = vertices[0]
	}
	if !graph.HasVertex(root) {
		return nil, errors.Wrapf(ErrRootNotFound, "%q", root)
	}
	rec := step.NewRecorder(o.Record...)

	if err := rec.Emit(step.NewInit(fmt.Sprintf("Starting Prim's algorithm from node %s", root), root)); err != nil {
		return nil, err
	}

	edges := graph.Edges()
	visited := map[string]bool{root: true}
	res := &Result{Edges: make([]core.Edge, 0, len(vertices)-1)}
	for len(visited) < len(vertices) {
		best := -1
		for i, e := range edges {
			if visited[e.From] == visited[e.To] {
				continue
			}
			desc := fmt.Sprintf("Checking edge %s -> %s with weight %d", e.From, e.To, e.Weight)
			if err := rec.Emit(step.NewCheck(desc, e.From, e.To, e.Weight)); err != nil {
				return nil, err
			}
			if best < 0 || e.Weight < edges[best].Weight {
				best = i
			}
		}

		if best < 0 {
			for _, v := range vertices {
				if !visited[v] {
					res.Unreachable = append(res.Unreachable, v)
				}
			}
			desc := "Remaining nodes are unreachable from the start node"
			if err := rec.Emit(step.NewUnreachable(desc, res.Unreachable)); err != nil {
				return nil, err
			}
			break
		}

		e := edges[best]
		visited[e.From], visited[e.To] = true, true
		res.Edges = append(res.Edges, e)
		res.Weight += e.Weight
		desc := fmt.Sprintf("Adding edge %s -> %s to MST (weight: %d)", e.From, e.To, e.Weight)
		if err := rec.Emit(step.NewEdge(desc, e.From, e.To, e.Weight)); err != nil {
			return nil, err
		}
	}
	res.Log = rec.Log()

	return res, nil
}
