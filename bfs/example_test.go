package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/algostep/bfs"
	"github.com/katalvlaran/algostep/core"
)

// ExampleBFS prints the level-by-level visit order of a small tree.
func ExampleBFS() {
	g, _ := core.ParseEdges("r,a,1\nr,b,1\na,c,1\nb,d,1")
	res, err := bfs.BFS(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	for _, s := range res.Log.Steps()[:3] {
		fmt.Println(s.Description())
	}
	// Output:
	// [r a b c d]
	// Starting BFS from node r
	// Visiting node r at level 0
	// Adding node a to queue at level 1
}
