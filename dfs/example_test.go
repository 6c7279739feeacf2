package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/dfs"
)

// ExampleDFS shows pre-order discovery and post-order finish on a path.
func ExampleDFS() {
	g, _ := core.ParseEdges("A,B,1\nB,C,1\nA,D,1")
	res, _ := dfs.DFS(g)
	fmt.Println(res.Discovery)
	fmt.Println(res.Order)
	// Output:
	// [A B C D]
	// [C B D A]
}
