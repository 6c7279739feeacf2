package search_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/algostep/search"
	"github.com/katalvlaran/algostep/step"
)

func strs(l *step.Log) []string {
	out := make([]string, 0, l.Len())
	for _, s := range l.Steps() {
		out = append(out, s.String())
	}
	return out
}

// TestBinaryFound walks the interval down to the target.
func TestBinaryFound(t *testing.T) {
	res, err := search.Binary([]int{1, 3, 5, 8}, 8)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Index)
	assert.True(t, res.Found())
	assert.Equal(t, []string{
		"compare [1]",
		"range [2 3]",
		"compare [2]",
		"range [3 3]",
		"compare [3]",
		"found 3",
	}, strs(res.Log))
}

// TestBinaryNotFound ends with exactly one notFound and no found.
func TestBinaryNotFound(t *testing.T) {
	res, err := search.Binary([]int{1, 3, 5, 8}, 4)
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Equal(t, -1, res.Index)
	assert.Equal(t, 1, res.Log.Count(step.KindNotFound))
	assert.Equal(t, 0, res.Log.Count(step.KindFound))
	assert.Equal(t, "notFound target=4", res.Log.Last().String())
}

// TestBinaryRejectsUnsorted fails before any step.
func TestBinaryRejectsUnsorted(t *testing.T) {
	var calls int
	_, err := search.Binary([]int{3, 1}, 1, step.WithObserver(func(int, step.Step) error {
		calls++
		return nil
	}))
	assert.True(t, errors.Is(err, search.ErrUnsorted))
	assert.Zero(t, calls)
}

// TestBinaryProperty checks found indices hold the target on random input.
func TestBinaryProperty(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		a := make([]int, 1+r.Intn(30))
		for i := range a {
			a[i] = r.Intn(40)
		}
		target := r.Intn(40)
		res, sorted, err := search.SortedBinary(a, target)
		require.NoError(t, err)
		if res.Found() {
			assert.Equal(t, target, sorted[res.Index])
			assert.Equal(t, 0, res.Log.Count(step.KindNotFound))
		} else {
			assert.NotContains(t, sorted, target)
			assert.Equal(t, 1, res.Log.Count(step.KindNotFound))
		}
		assert.Equal(t, step.KindInit, res.Log.At(0).Kind())
	}
}

// TestSortedBinaryRecordsSnapshot keeps the caller's slice intact.
func TestSortedBinaryRecordsSnapshot(t *testing.T) {
	in := []int{8, 1, 5, 3}
	res, sorted, err := search.SortedBinary(in, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 1, 5, 3}, in)
	assert.Equal(t, []int{1, 3, 5, 8}, sorted)
	assert.Equal(t, "init [1 3 5 8]", res.Log.At(0).String())
	assert.Equal(t, 2, res.Index)
}

// TestLinear covers hit, miss and empty input.
func TestLinear(t *testing.T) {
	res, err := search.Linear([]int{4, 7, 7}, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Index)
	assert.Equal(t, []string{"compare [0]", "compare [1]", "found 1"}, strs(res.Log))

	res, err = search.Linear([]int{4}, 9)
	require.NoError(t, err)
	assert.Equal(t, []string{"compare [0]", "notFound target=9"}, strs(res.Log))

	res, err = search.Linear(nil, 9)
	require.NoError(t, err)
	assert.Equal(t, []string{"notFound target=9"}, strs(res.Log))
}
