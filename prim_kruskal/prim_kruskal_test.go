package prim_kruskal_test

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/algostep/core"
	"github.com/katalvlaran/algostep/prim_kruskal"
	"github.com/katalvlaran/algostep/step"
	"github.com/katalvlaran/algostep/unionfind"
)

func mustParse(t *testing.T, text string) *core.Graph {
	t.Helper()
	g, err := core.ParseEdges(text)
	require.NoError(t, err)
	return g
}

func strs(l *step.Log) []string {
	out := make([]string, 0, l.Len())
	for _, s := range l.Steps() {
		out = append(out, s.String())
	}
	return out
}

// TestKruskal_Triangle pins the log: the heaviest edge closes a cycle.
func TestKruskal_Triangle(t *testing.T) {
	res, err := prim_kruskal.Kruskal(mustParse(t, "0,1,4\n1,2,3\n2,0,5"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"init",
		"check 1->2 w=3",
		"edge 1->2 w=3",
		"check 0->1 w=4",
		"edge 0->1 w=4",
		"check 2->0 w=5",
		"skip 2->0 w=5",
	}, strs(res.Log))
	assert.Equal(t, int64(7), res.Weight)
	assert.Equal(t, "Starting Kruskal's algorithm with 3 nodes", res.Log.At(0).Description())
}

// TestPrim_Triangle pins the log for the same graph.
func TestPrim_Triangle(t *testing.T) {
	res, err := prim_kruskal.Prim(mustParse(t, "0,1,4\n1,2,3\n2,0,5"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"init 0",
		"check 0->1 w=4",
		"check 2->0 w=5",
		"edge 0->1 w=4",
		"check 1->2 w=3",
		"check 2->0 w=5",
		"edge 1->2 w=3",
	}, strs(res.Log))
	assert.Equal(t, int64(7), res.Weight)
	assert.Empty(t, res.Unreachable)
}

// TestPrim_Disconnected terminates with Unreachable instead of looping.
func TestPrim_Disconnected(t *testing.T) {
	res, err := prim_kruskal.Prim(mustParse(t, "a,b,1\nc,d,2"))
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, res.Unreachable)
	assert.Equal(t, "unreachable [c d]", res.Log.Last().String())
	assert.Len(t, res.Edges, 1)
}

// TestKruskal_Forest spans each component of a disconnected graph.
func TestKruskal_Forest(t *testing.T) {
	res, err := prim_kruskal.Kruskal(mustParse(t, "a,b,1\nc,d,2\nd,e,1\nc,e,5"))
	require.NoError(t, err)
	assert.Len(t, res.Edges, 3)
	assert.Equal(t, int64(4), res.Weight)
	assert.Equal(t, 1, res.Log.Count(step.KindSkip))
}

// TestMST_RandomAgreement checks both algorithms agree on total weight and
// that Kruskal's edges form a spanning tree on connected random graphs.
func TestMST_RandomAgreement(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 30; trial++ {
		n := 3 + r.Intn(8)
		g := core.NewGraph()
		for i := 1; i < n; i++ {
			_, err := g.AddEdge(fmt.Sprint(r.Intn(i)), fmt.Sprint(i), int64(1+r.Intn(9)))
			require.NoError(t, err)
		}
		for k := 0; k < n; k++ {
			u, v := r.Intn(n), r.Intn(n)
			if u != v {
				_, err := g.AddEdge(fmt.Sprint(u), fmt.Sprint(v), int64(1+r.Intn(9)))
				require.NoError(t, err)
			}
		}

		kr, err := prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: prim_kruskal.MethodKruskal})
		require.NoError(t, err)
		pr, err := prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: prim_kruskal.MethodPrim})
		require.NoError(t, err)

		assert.Equal(t, kr.Weight, pr.Weight)
		assert.Len(t, kr.Edges, n-1)
		assert.Len(t, pr.Edges, n-1)

		uf := unionfind.New(g.Vertices()...)
		for _, e := range kr.Edges {
			assert.True(t, uf.Union(e.From, e.To), "cycle in MST")
		}
		assert.Len(t, uf.Components(), 1)
	}
}

// TestMST_Errors covers invalid graphs and methods.
func TestMST_Errors(t *testing.T) {
	_, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	dg := core.NewGraph(core.WithDirected(true))
	_, _ = dg.AddEdge("a", "b", 1)
	_, err = prim_kruskal.Prim(dg)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, err = prim_kruskal.Prim(mustParse(t, "a,b,1"), prim_kruskal.WithRoot("z"))
	assert.True(t, errors.Is(err, prim_kruskal.ErrRootNotFound))

	_, err = prim_kruskal.Compute(mustParse(t, "a,b,1"), prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.True(t, errors.Is(err, prim_kruskal.ErrUnknownMethod))
}
