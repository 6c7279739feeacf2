// Package dijkstra computes single-source shortest paths on graphs with
// non-negative weights, recording the run as steps.
//
// Log shape:
//
//	Init(source)
//	per round: Visit(v, distance) for the settled vertex,
//	           Edge(v→w) for each incident edge, Update(w, d) when it relaxes
//	Unreachable(rest) once the smallest remaining distance is infinite
//
// Example:
//
//	g, _ := core.ParseEdges("0,1,4\n1,2,3\n2,0,5")
//	res, _ := dijkstra.Dijkstra(g)
//	// res.Dist == map[0:0 1:4 2:5]
package dijkstra
