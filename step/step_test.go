package step_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/step"
)

// TestKindRoundTrip checks every kind name parses back to itself.
func TestKindRoundTrip(t *testing.T) {
	for _, k := range step.Kinds() {
		got, err := step.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	assert.Len(t, step.Kinds(), 17)

	_, err := step.ParseKind("teleport")
	assert.True(t, errors.Is(err, step.ErrUnknownKind))
}

// TestSnapshotsAreCopied ensures a step never aliases the caller's slice.
func TestSnapshotsAreCopied(t *testing.T) {
	a := []int{3, 5, 8, 1}
	s := step.NewSwap("swap", 0, 1, a)
	a[0] = 99
	assert.Equal(t, []int{3, 5, 8, 1}, s.Array())

	got := s.Array()
	got[1] = 42
	assert.Equal(t, []int{3, 5, 8, 1}, s.Array())

	idx := []int{0, 1}
	c := step.NewCompare("cmp", idx...)
	idx[0] = 7
	assert.Equal(t, []int{0, 1}, c.Indices())
}

// TestStringForms pins the compact rendering used by golden files.
func TestStringForms(t *testing.T) {
	cases := []struct {
		s    step.Step
		want string
	}{
		{step.NewCompare("", 0, 1), "compare [0 1]"},
		{step.NewCompare("", 4), "compare [4]"},
		{step.NewNodeCompare("", "5", 3), "compare node=5 value=3"},
		{step.NewSwap("", 0, 1, []int{3, 5, 8, 1}), "swap [0 1] [3 5 8 1]"},
		{step.NewMerge("", 2, []int{1, 2, 3}), "merge 2 [1 2 3]"},
		{step.NewSorted("", 3), "sorted 3"},
		{step.NewPivot("", 3), "pivot 3"},
		{step.NewFound("", 2), "found 2"},
		{step.NewNodeFound("", "7"), "found node=7"},
		{step.NewNotFound("", 7), "notFound target=7"},
		{step.NewRange("", 2, 3), "range [2 3]"},
		{step.NewInit("", "0"), "init 0"},
		{step.NewInit("", ""), "init"},
		{step.NewArrayInit("", []int{1, 3}), "init [1 3]"},
		{step.NewVisit("", "4"), "visit 4"},
		{step.NewMeasuredVisit("", "0", step.MeasureDistance, 0), "visit 0 distance=0"},
		{step.NewMeasuredVisit("", "1", step.MeasureLevel, 1), "visit 1 level=1"},
		{step.NewMeasuredVisit("", "1", step.MeasureDepth, 2), "visit 1 depth=2"},
		{step.NewEdge("", "0", "1", 4), "edge 0->1 w=4"},
		{step.NewUpdate("", "1", 4), "update 1 distance=4"},
		{step.NewUnreachable("", []string{"3", "4"}), "unreachable [3 4]"},
		{step.NewCheck("", "0", "1", 4), "check 0->1 w=4"},
		{step.NewSkip("", "2", "0", 5), "skip 2->0 w=5"},
		{step.NewRotate("", "5", step.RotateLeft), "rotate left 5"},
		{step.NewBacktrack("", "0"), "backtrack 0"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.s.String())
	}
}

// TestRecorderObserver verifies the observer sees each step in order and can
// abort generation.
func TestRecorderObserver(t *testing.T) {
	var seen []int
	boom := errors.New("boom")
	rec := step.NewRecorder(step.WithObserver(func(i int, s step.Step) error {
		seen = append(seen, i)
		if i == 1 {
			return boom
		}
		return nil
	}))

	require.NoError(t, rec.Emit(step.NewSorted("a", 0)))
	err := rec.Emit(step.NewSorted("b", 1))
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, []int{0, 1}, seen)
	assert.Equal(t, 2, rec.Log().Len())
}

// TestRecorderCancelled stops at the first emit after cancellation.
func TestRecorderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rec := step.NewRecorder(step.WithContext(ctx))
	require.NoError(t, rec.Emit(step.NewSorted("", 0)))
	cancel()
	err := rec.Emit(step.NewSorted("", 1))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, rec.Len())
}

// TestLogAccessors covers counting, slicing and kind summaries.
func TestLogAccessors(t *testing.T) {
	l := step.NewLog(
		step.NewCompare("", 0, 1),
		step.NewSorted("", 1),
		step.NewCompare("", 0),
		step.NewSorted("", 0),
	)
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, 2, l.Count(step.KindSorted))
	assert.Equal(t, []step.Kind{step.KindCompare, step.KindSorted}, l.Kinds())
	assert.Len(t, l.Slice(1, 3), 2)
	assert.Equal(t, "sorted 0", l.Last().String())

	var empty *step.Log
	assert.Equal(t, 0, empty.Len())
	assert.Nil(t, empty.Steps())
}

// TestFingerprintDeterministic compares logs by content hash.
func TestFingerprintDeterministic(t *testing.T) {
	build := func(v int) *step.Log {
		return step.NewLog(
			step.NewSwap("s", 0, 1, []int{v, 1}),
			step.NewMeasuredVisit("v", "a", step.MeasureLevel, 2),
		)
	}
	a, err := build(1).Fingerprint()
	require.NoError(t, err)
	b, err := build(1).Fingerprint()
	require.NoError(t, err)
	c, err := build(2).Fingerprint()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

// TestToRecord checks the flat view keeps the kind-specific payload.
func TestToRecord(t *testing.T) {
	r := step.ToRecord(step.NewSwap("Swapping", 0, 1, []int{3, 5}))
	assert.Equal(t, "swap", r.Kind)
	assert.Equal(t, "Swapping", r.Description)
	assert.Equal(t, []int{0, 1}, r.Indices)
	assert.Equal(t, []int{3, 5}, r.Array)

	r = step.ToRecord(step.NewMeasuredVisit("", "b", step.MeasureDepth, 3))
	require.NotNil(t, r.Value)
	assert.Equal(t, int64(3), *r.Value)
	assert.Equal(t, "depth", r.Measure)

	r = step.ToRecord(step.NewVisit("", "b"))
	assert.Nil(t, r.Value)
	assert.Empty(t, r.Measure)
}
