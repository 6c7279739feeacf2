package algorithms_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/algostep/algorithms"
)

func ExampleRun() {
	res, err := algorithms.Run(context.Background(), algorithms.Selection,
		algorithms.Input{Array: []int{3, 1, 2}}, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Array, res.Log.Len(), res.Log.Last())
	// Output: [1 2 3] 10 sorted 2
}

func ExampleLookup() {
	info, _ := algorithms.Lookup(algorithms.Kruskal)
	fmt.Printf("%s (%s): %s\n", info.Name, info.Family, info.TimeComplexity)
	// Output: Kruskal's Algorithm (graph): O(E log E)
}
