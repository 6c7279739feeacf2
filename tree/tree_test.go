package tree_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/algostep/step"
	"github.com/katalvlaran/algostep/tree"
)

func strs(l *step.Log) []string {
	out := make([]string, 0, l.Len())
	for _, s := range l.Steps() {
		out = append(out, s.String())
	}
	return out
}

// TestBSTScenario builds 5,3,8 and checks shape and inorder order.
func TestBSTScenario(t *testing.T) {
	bst := tree.Build([]int{5, 3, 8})
	require.NotNil(t, bst.Root)
	assert.Equal(t, 5, bst.Root.Value)
	assert.Equal(t, 3, bst.Root.Left.Value)
	assert.Equal(t, 8, bst.Root.Right.Value)

	order, log, err := tree.RunTraversal(tree.Inorder, []int{5, 3, 8})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5, 8}, order)
	assert.Equal(t, []string{"visit 3", "visit 5", "visit 8"}, strs(log))
	assert.Equal(t, "Visiting node 3 (inorder)", log.At(0).Description())
}

// TestTraversalOrders covers pre- and post-order on a three-level tree.
func TestTraversalOrders(t *testing.T) {
	vals := []int{5, 3, 8, 1, 4, 9}
	pre, _, err := tree.RunTraversal(tree.Preorder, vals)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 1, 4, 8, 9}, pre)

	post, _, err := tree.RunTraversal(tree.Postorder, vals)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 3, 9, 8, 5}, post)

	o, err := tree.ParseOrder("postorder")
	require.NoError(t, err)
	assert.Equal(t, tree.Postorder, o)
	_, err = tree.ParseOrder("levelorder")
	assert.True(t, errors.Is(err, tree.ErrUnknownOrder))
}

// TestBSTDuplicateIsNoop terminates and leaves the tree unchanged.
func TestBSTDuplicateIsNoop(t *testing.T) {
	bst := tree.Build([]int{5, 3, 8})
	rec := step.NewRecorder()
	added, err := bst.Insert(rec, 3)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 3, bst.Len())
	assert.Equal(t, []string{"compare node=5 value=3", "compare node=3 value=3"}, strs(rec.Log()))
	assert.Nil(t, bst.Root.Left.Right)
}

// TestRunBST records insertion and a search.
func TestRunBST(t *testing.T) {
	_, log, err := tree.RunBST([]int{5, 3, 8}, 8)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"visit 5",
		"visit 3",
		"compare node=5 value=3",
		"visit 8",
		"compare node=5 value=8",
		"visit 5",
		"visit 8",
		"found node=8",
	}, strs(log))

	_, log, err = tree.RunBST([]int{5, 3, 8}, 4)
	require.NoError(t, err)
	assert.Equal(t, "notFound target=4", log.Last().String())
	assert.Equal(t, 0, log.Count(step.KindFound))
}

// TestAVLRotations covers each of the four cases.
func TestAVLRotations(t *testing.T) {
	cases := []struct {
		name   string
		values []int
		rot    []string
		root   int
	}{
		{"LL", []int{3, 2, 1}, []string{"rotate right 3"}, 2},
		{"RR", []int{1, 2, 3}, []string{"rotate left 1"}, 2},
		{"LR", []int{3, 1, 2}, []string{"rotate left 1", "rotate right 3"}, 2},
		{"RL", []int{1, 3, 2}, []string{"rotate right 3", "rotate left 1"}, 2},
	}
	for _, c := range cases {
		avl, log, err := tree.RunAVL(c.values)
		require.NoError(t, err, c.name)
		var rots []string
		for _, s := range log.Steps() {
			if s.Kind() == step.KindRotate {
				rots = append(rots, s.String())
			}
		}
		assert.Equal(t, c.rot, rots, c.name)
		assert.Equal(t, c.root, avl.Root.Value, c.name)
		assert.True(t, tree.IsBalanced(avl.Root), c.name)
		assert.True(t, tree.IsBST(avl.Root), c.name)
	}
}

// TestAVLInvariantRandom checks balance and ordering after every insertion.
func TestAVLInvariantRandom(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for trial := 0; trial < 20; trial++ {
		avl := &tree.AVL{}
		bst := &tree.BST{}
		seen := map[int]bool{}
		for i := 0; i < 60; i++ {
			v := r.Intn(100)
			_, err := avl.Insert(nil, v)
			require.NoError(t, err)
			_, err = bst.Insert(nil, v)
			require.NoError(t, err)
			seen[v] = true
			require.True(t, tree.IsBalanced(avl.Root))
			require.True(t, tree.IsBST(avl.Root))
			require.True(t, tree.IsBST(bst.Root))
			require.Equal(t, tree.Height(avl.Root), avl.Root.Height)
		}
		assert.Equal(t, len(seen), avl.Len())
		assert.Equal(t, tree.Values(bst.Root), tree.Values(avl.Root))
	}
}

// TestAVLSearch reports found and not-found paths.
func TestAVLSearch(t *testing.T) {
	avl, _, err := tree.RunAVL([]int{1, 2, 3})
	require.NoError(t, err)
	rec := step.NewRecorder()
	n, err := avl.Search(rec, 3)
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, []string{"visit 2", "visit 3", "found node=3"}, strs(rec.Log()))

	rec = step.NewRecorder()
	n, err = avl.Search(rec, 0)
	require.NoError(t, err)
	assert.Nil(t, n)
	assert.Equal(t, []string{"visit 2", "visit 1", "notFound target=0"}, strs(rec.Log()))
}

// TestEmptyAndCancelled covers validation and cancellation.
func TestEmptyAndCancelled(t *testing.T) {
	_, _, err := tree.RunAVL(nil)
	assert.ErrorIs(t, err, tree.ErrEmptyTree)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = tree.RunBST([]int{1, 2}, 1, step.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
