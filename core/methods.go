// File: methods.go
// Role: Edge insertion and read-only queries over the edge list.
// Determinism:
//   - Vertices() is first-appearance order.
//   - Edges() and Neighbors() are edge-list order.
// Concurrency:
//   - AddEdge under write lock; queries under read lock.

package core

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// AddEdge appends an edge and returns its ID.
//
// Steps:
//  1. Validate IDs and the loop constraint.
//  2. Register unseen endpoints in first-appearance order.
//  3. Append the edge; index it under both endpoints (once for a loop).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", errors.Wrapf(ErrLoopNotAllowed, "%q", from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	idx := len(g.edges)
	e := Edge{
		ID:       "e" + strconv.Itoa(idx+1),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
	}
	g.edges = append(g.edges, e)
	g.touch(from, idx)
	if to != from {
		g.touch(to, idx)
	}

	return e.ID, nil
}

// touch registers id (if new) and records edge idx as incident to it.
func (g *Graph) touch(id string, idx int) {
	if _, ok := g.incident[id]; !ok {
		g.order = append(g.order, id)
	}
	g.incident[id] = append(g.incident[id], idx)
}

// HasVertex reports whether id is an endpoint of some edge.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.incident[id]

	return ok
}

// Vertices returns vertex IDs in first-appearance order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns a copy of the edge list in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns the edges traversable from id, in edge-list order,
// each oriented so that From == id. Directed edges are only returned from
// their source.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idxs, ok := g.incident[id]
	if !ok {
		return nil, errors.Wrapf(ErrVertexNotFound, "%q", id)
	}
	out := make([]Edge, 0, len(idxs))
	for _, i := range idxs {
		e := g.edges[i]
		switch {
		case e.From == id:
			out = append(out, e)
		case !e.Directed:
			e.From, e.To = e.To, e.From
			out = append(out, e)
		}
	}

	return out, nil
}

// Directed reports whether new edges are directed.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns |E|, parallel edges included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Clone returns an independent copy with the same flags and edge order.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := &Graph{
		directed:   g.directed,
		allowLoops: g.allowLoops,
		edges:      make([]Edge, len(g.edges)),
		order:      make([]string, len(g.order)),
		incident:   make(map[string][]int, len(g.incident)),
	}
	copy(c.edges, g.edges)
	copy(c.order, g.order)
	for id, idxs := range g.incident {
		c.incident[id] = append([]int(nil), idxs...)
	}

	return c
}
