package core_test

import (
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/core"
)

// TestVertexOrder verifies vertices are ordered by first appearance.
func TestVertexOrder(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("b", "c", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "c", "a"}, g.Vertices())
	assert.True(t, g.HasVertex("a"))
	assert.False(t, g.HasVertex("z"))
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
}

// TestNeighborsOrientation checks undirected edges are returned from both
// ends, oriented away from the query vertex, in edge order.
func TestNeighborsOrientation(t *testing.T) {
	g, err := core.ParseEdges("0,1,4\n1,2,3\n2,0,5")
	require.NoError(t, err)

	nb, err := g.Neighbors("0")
	require.NoError(t, err)
	require.Len(t, nb, 2)
	assert.Equal(t, "1", nb[0].To)
	assert.Equal(t, "2", nb[1].To)
	assert.Equal(t, int64(5), nb[1].Weight)
	for _, e := range nb {
		assert.Equal(t, "0", e.From)
	}

	_, err = g.Neighbors("9")
	assert.True(t, errors.Is(err, core.ErrVertexNotFound))
}

// TestDirectedNeighbors only follows edges from their source.
func TestDirectedNeighbors(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)

	nb, err := g.Neighbors("b")
	require.NoError(t, err)
	assert.Empty(t, nb)
}

// TestAddEdgeValidation rejects empty IDs and loops.
func TestAddEdgeValidation(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("", "a", 1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("a", "a", 1)
	assert.True(t, errors.Is(err, core.ErrLoopNotAllowed))

	loops := core.NewGraph(core.WithLoops())
	_, err = loops.AddEdge("a", "a", 1)
	assert.NoError(t, err)
	nb, err := loops.Neighbors("a")
	require.NoError(t, err)
	assert.Len(t, nb, 1)
}

// TestParseEdgesErrors covers malformed and empty input.
func TestParseEdgesErrors(t *testing.T) {
	_, err := core.ParseEdges("\n  \n")
	assert.True(t, errors.Is(err, core.ErrEmptyGraph))

	_, err = core.ParseEdges("0,1,4\n1,2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrMalformedEdge))
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, errors.FlattenHints(err), "source,target,weight")

	_, err = core.ParseEdges("0,1,x")
	assert.True(t, errors.Is(err, core.ErrMalformedEdge))

	_, err = core.ParseEdges("0,0,1")
	assert.True(t, errors.Is(err, core.ErrLoopNotAllowed))
}

// TestParseEdgesTrims accepts surrounding whitespace and blank lines.
func TestParseEdgesTrims(t *testing.T) {
	g, err := core.ParseEdges("  A , B , 7 \n\n B,C,-2\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.Equal(t, "A,B,7\nB,C,-2\n", core.FormatEdges(g))
}

// TestParseValues covers the comma-separated list format.
func TestParseValues(t *testing.T) {
	v, err := core.ParseValues(" 5, 3,8 ,1 ")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 8, 1}, v)
	assert.Equal(t, "5,3,8,1", core.FormatValues(v))

	v, err = core.ParseValues("")
	require.NoError(t, err)
	assert.Empty(t, v)

	_, err = core.ParseValues("1,two")
	assert.True(t, errors.Is(err, core.ErrMalformedValue))
}

// TestCloneIndependent verifies a clone does not share storage.
func TestCloneIndependent(t *testing.T) {
	g, err := core.ParseEdges("a,b,1")
	require.NoError(t, err)
	c := g.Clone()
	_, err = c.AddEdge("b", "c", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())
	assert.False(t, g.HasVertex("c"))
}

// TestConcurrentReads exercises the read lock under the race detector.
func TestConcurrentReads(t *testing.T) {
	g, err := core.ParseEdges("0,1,1\n1,2,1\n2,3,1")
	require.NoError(t, err)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, v := range g.Vertices() {
				_, _ = g.Neighbors(v)
			}
		}()
	}
	wg.Wait()
}
