package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/dijkstra"
)

// ExampleDijkstra computes distances on the canonical triangle.
func ExampleDijkstra() {
	g, _ := core.ParseEdges("0,1,4\n1,2,3\n2,0,5")
	res, err := dijkstra.Dijkstra(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, v := range g.Vertices() {
		fmt.Printf("%s=%d\n", v, res.Dist[v])
	}
	// Output:
	// 0=0
	// 1=4
	// 2=5
}
