package algorithms_test

import (
	"context"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/algostep/algorithms"
	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/step"
)

// TestRegistry lists all eighteen identifiers with metadata.
func TestRegistry(t *testing.T) {
	ids := algorithms.IDs()
	require.Len(t, ids, 18)
	families := map[algorithms.Family]int{}
	for _, id := range ids {
		info, err := algorithms.Lookup(id)
		require.NoError(t, err)
		assert.Equal(t, id, info.ID)
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.TimeComplexity)
		assert.NotEmpty(t, info.SpaceComplexity)
		families[info.Family]++
	}
	assert.Equal(t, map[algorithms.Family]int{
		algorithms.FamilySorting:   6,
		algorithms.FamilySearching: 2,
		algorithms.FamilyGraph:     5,
		algorithms.FamilyTree:      5,
	}, families)

	_, err := algorithms.Lookup("shell")
	assert.True(t, errors.Is(err, algorithms.ErrUnknownAlgorithm))
	assert.Contains(t, errors.FlattenHints(err), "algostep list")
	assert.Equal(t, algorithms.Family(0), algorithms.FamilyOf("shell"))
	assert.Equal(t, "graph", algorithms.FamilyOf(algorithms.Prim).String())
}

// TestRunDoesNotMutateInput checks every sort works on a copy.
func TestRunDoesNotMutateInput(t *testing.T) {
	in := algorithms.Input{Array: []int{5, 3, 8, 1}}
	for _, id := range algorithms.IDs() {
		if algorithms.FamilyOf(id) != algorithms.FamilySorting {
			continue
		}
		res, err := algorithms.Run(context.Background(), id, in, nil)
		require.NoError(t, err, id)
		assert.Equal(t, []int{1, 3, 5, 8}, res.Array, id)
		assert.Equal(t, id, res.ID)
	}
	assert.Equal(t, []int{5, 3, 8, 1}, in.Array)
}

// TestSortedCoverage checks the final sorted events of every sort cover
// each index exactly once on random input.
func TestSortedCoverage(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 25; trial++ {
		a := make([]int, r.Intn(20))
		for i := range a {
			a[i] = r.Intn(10)
		}
		want := slices.Clone(a)
		slices.Sort(want)
		for _, id := range algorithms.IDs() {
			if algorithms.FamilyOf(id) != algorithms.FamilySorting {
				continue
			}
			res, err := algorithms.Run(context.Background(), id, algorithms.Input{Array: a}, nil)
			require.NoError(t, err)
			require.Equal(t, want, res.Array, id)
			seen := make(map[int]int)
			for _, s := range res.Log.Steps() {
				if v, ok := s.(step.Sorted); ok {
					seen[v.Index]++
				}
			}
			require.Len(t, seen, len(a), id)
			for i := range a {
				require.Equal(t, 1, seen[i], "%s index %d", id, i)
			}
		}
	}
}

// TestObserverSeesEveryStep verifies the observer runs once per step in
// order.
func TestObserverSeesEveryStep(t *testing.T) {
	g, err := core.ParseEdges("0,1,4\n1,2,3\n2,0,5")
	require.NoError(t, err)
	var seen []int
	res, err := algorithms.Run(context.Background(), algorithms.BFS, algorithms.Input{Graph: g},
		func(i int, _ step.Step) error {
			seen = append(seen, i)
			return nil
		})
	require.NoError(t, err)
	require.Equal(t, res.Log.Len(), len(seen))
	for i, v := range seen {
		assert.Equal(t, i, v)
	}
}

// TestRunFailures returns no log on validation errors, observer errors and
// cancellation.
func TestRunFailures(t *testing.T) {
	ctx := context.Background()

	res, err := algorithms.Run(ctx, algorithms.Kruskal, algorithms.Input{}, nil)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, algorithms.ErrMissingGraph))

	res, err = algorithms.Run(ctx, algorithms.AVL, algorithms.Input{Array: []int{1, 2}}, nil)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, algorithms.ErrMissingTree))

	stop := errors.New("stop")
	res, err = algorithms.Run(ctx, algorithms.Bubble, algorithms.Input{Array: []int{2, 1}},
		func(int, step.Step) error { return stop })
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, stop))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	res, err = algorithms.Run(cancelled, algorithms.Heap, algorithms.Input{Array: []int{3, 2, 1}}, nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSearchDefaults uses the middle value when no target is given.
func TestSearchDefaults(t *testing.T) {
	res, err := algorithms.Run(context.Background(), algorithms.Linear, algorithms.Input{Array: []int{4, 9, 2}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "found 1", res.Log.Last().String())

	res, err = algorithms.Run(context.Background(), algorithms.BST, algorithms.Input{Tree: []int{5, 3, 8}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "found node=3", res.Log.Last().String())

	res, err = algorithms.Run(context.Background(), algorithms.Preorder, algorithms.Input{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Log.Len())
}

// TestInputClone is deep.
func TestInputClone(t *testing.T) {
	g, err := core.ParseEdges("a,b,1")
	require.NoError(t, err)
	target := 3
	in := algorithms.Input{Array: []int{1}, Tree: []int{2}, Target: &target, Graph: g}
	c := in.Clone()
	c.Array[0], c.Tree[0], *c.Target = 9, 9, 9
	_, err = c.Graph.AddEdge("b", "c", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, in.Array[0])
	assert.Equal(t, 2, in.Tree[0])
	assert.Equal(t, 3, target)
	assert.Equal(t, 1, g.EdgeCount())
}
