package sorting_test

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/algostep/sorting"
	"github.com/katalvlaran/algostep/step"
)

type sortFunc func([]int, ...step.Option) (*step.Log, error)

var sorts = map[string]sortFunc{
	"bubble":    sorting.Bubble,
	"quick":     sorting.Quick,
	"merge":     sorting.Merge,
	"insertion": sorting.Insertion,
	"selection": sorting.Selection,
	"heap":      sorting.Heap,
}

// sortedIndices collects the index of every Sorted step in order.
func sortedIndices(l *step.Log) []int {
	var out []int
	for _, s := range l.Steps() {
		if v, ok := s.(step.Sorted); ok {
			out = append(out, v.Index)
		}
	}
	return out
}

// TestSortsProduceAscendingOutput runs every sort on random input and checks
// the result and the Sorted coverage.
func TestSortsProduceAscendingOutput(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for name, fn := range sorts {
		for trial := 0; trial < 25; trial++ {
			n := r.Intn(20)
			a := make([]int, n)
			for i := range a {
				a[i] = r.Intn(10)
			}
			want := slices.Clone(a)
			slices.Sort(want)

			log, err := fn(a)
			require.NoError(t, err, name)
			assert.Equal(t, want, a, name)

			idx := sortedIndices(log)
			slices.Sort(idx)
			all := make([]int, n)
			for i := range all {
				all[i] = i
			}
			assert.Equal(t, all, append([]int{}, idx...), "%s: sorted coverage for n=%d", name, n)
		}
	}
}

// TestSnapshotsMatchFinalArray checks the last array snapshot equals the
// sorted output.
func TestSnapshotsMatchFinalArray(t *testing.T) {
	for name, fn := range sorts {
		a := []int{9, 4, 7, 1, 8, 2}
		log, err := fn(a)
		require.NoError(t, err)

		var last []int
		for _, s := range log.Steps() {
			switch v := s.(type) {
			case step.Swap:
				last = v.Array()
			case step.Merge:
				last = v.Array()
			}
		}
		assert.Equal(t, []int{1, 2, 4, 7, 8, 9}, last, name)
	}
}

// TestBubbleScenario pins the opening of the canonical example.
func TestBubbleScenario(t *testing.T) {
	a := []int{5, 3, 8, 1}
	log, err := sorting.Bubble(a)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5, 8}, a)

	require.GreaterOrEqual(t, log.Len(), 2)
	assert.Equal(t, "compare [0 1]", log.At(0).String())
	assert.Equal(t, "swap [0 1] [3 5 8 1]", log.At(1).String())
	assert.Equal(t, "Swapping elements 3 and 5", log.At(1).Description())
	assert.Equal(t, []int{3, 2, 1, 0}, sortedIndices(log))
}

// TestQuickPivotIsLast checks the first pivot is the last index and ties
// are not moved into the less side.
func TestQuickPivotIsLast(t *testing.T) {
	a := []int{2, 1, 2}
	log, err := sorting.Quick(a)
	require.NoError(t, err)
	assert.Equal(t, "pivot 2", log.At(0).String())
	assert.Equal(t, "compare [0 2]", log.At(1).String())
	// 1 < 2 moves to the front; the tie at index 0 stays put.
	assert.Equal(t, "compare [1 2]", log.At(2).String())
	assert.Equal(t, "swap [0 1] [1 2 2]", log.At(3).String())
	assert.Equal(t, "swap [1 2] [1 2 2]", log.At(4).String())
	assert.Equal(t, "sorted 1", log.At(5).String())
}

// TestMergeStable shows ties take the left element first: the right one is
// placed as the remainder.
func TestMergeStable(t *testing.T) {
	a := []int{1, 1}
	log, err := sorting.Merge(a)
	require.NoError(t, err)
	require.Equal(t, 5, log.Len())
	assert.Equal(t, "compare [0 1]", log.At(0).String())
	assert.Equal(t, "Placing 1 in position 0", log.At(1).Description())
	assert.Equal(t, "Placing remaining right element 1 in position 1", log.At(2).Description())
}

// TestHeapSwapSnapshotAfterSwap verifies root/last swaps record the
// post-swap array.
func TestHeapSwapSnapshotAfterSwap(t *testing.T) {
	a := []int{1, 2}
	log, err := sorting.Heap(a)
	require.NoError(t, err)
	got := make([]string, 0, log.Len())
	for _, s := range log.Steps() {
		got = append(got, s.String())
	}
	assert.Equal(t, []string{
		"compare [0 1]",
		"swap [0 1] [2 1]",
		"swap [0 1] [1 2]",
		"sorted 1",
		"sorted 0",
	}, got)
}

// TestInsertionSortedOnce verifies insertion emits one Sorted per index.
func TestInsertionSortedOnce(t *testing.T) {
	a := []int{3, 1, 2}
	log, err := sorting.Insertion(a)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, sortedIndices(log))
	assert.Equal(t, 3, log.Count(step.KindSorted))
}

// TestTrivialInputs handles empty and single-element arrays.
func TestTrivialInputs(t *testing.T) {
	for name, fn := range sorts {
		log, err := fn(nil)
		require.NoError(t, err, name)
		assert.Equal(t, 0, log.Len(), name)

		log, err = fn([]int{42})
		require.NoError(t, err, name)
		assert.Equal(t, []int{0}, sortedIndices(log), name)
	}
}

// TestCancelledContext aborts without returning a log.
func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, fn := range sorts {
		log, err := fn([]int{3, 2, 1}, step.WithContext(ctx))
		assert.ErrorIs(t, err, context.Canceled, name)
		assert.Nil(t, log, name)
	}
}

// TestObserverSeesEveryStep checks live delivery matches the final log.
func TestObserverSeesEveryStep(t *testing.T) {
	var live []string
	log, err := sorting.Selection([]int{4, 2, 3}, step.WithObserver(func(_ int, s step.Step) error {
		live = append(live, s.String())
		return nil
	}))
	require.NoError(t, err)
	require.Len(t, live, log.Len())
	for i, s := range log.Steps() {
		assert.Equal(t, s.String(), live[i])
	}
}
