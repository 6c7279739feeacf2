// Package search implements linear and binary search as step generators.
//
// Binary search needs ascending input. Binary rejects unsorted input up
// front; SortedBinary sorts a copy first and records that array as an
// ArrayInit step, so "sort then search" replays as one run.
package search

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/step"
)

// ErrUnsorted is returned by Binary when the input is not ascending.
var ErrUnsorted = errors.New("search: input is not sorted ascending")

// Result is the outcome of one search run.
type Result struct {
	// Index of the target, or -1 when absent.
	Index int
	Log   *step.Log
}

// Found reports whether the target was located.
func (r Result) Found() bool { return r.Index >= 0 }

// Linear scans a left to right and stops at the first match.
func Linear(a []int, target int, opts ...step.Option) (Result, error) {
	rec := step.NewRecorder(opts...)
	for i, v := range a {
		if err := rec.Emit(step.NewCompare(fmt.Sprintf("Checking element %d at position %d", v, i), i)); err != nil {
			return Result{Index: -1}, err
		}
		if v == target {
			if err := rec.Emit(step.NewFound(fmt.Sprintf("Found target %d at position %d", target, i), i)); err != nil {
				return Result{Index: -1}, err
			}
			return Result{Index: i, Log: rec.Log()}, nil
		}
	}
	return notFound(rec, target)
}

// Binary searches ascending a over the closed interval [left, right].
func Binary(a []int, target int, opts ...step.Option) (Result, error) {
	if !slices.IsSorted(a) {
		return Result{Index: -1}, errors.WithHint(ErrUnsorted, "use SortedBinary to sort before searching")
	}
	return binary(step.NewRecorder(opts...), a, target)
}

// SortedBinary sorts a copy of a, records it, then binary searches it.
// Result.Index refers to the sorted copy, which is also returned.
func SortedBinary(a []int, target int, opts ...step.Option) (Result, []int, error) {
	sorted := slices.Clone(a)
	slices.Sort(sorted)
	rec := step.NewRecorder(opts...)
	if err := rec.Emit(step.NewArrayInit("Sorting the array before binary search", sorted)); err != nil {
		return Result{Index: -1}, nil, err
	}
	res, err := binary(rec, sorted, target)
	if err != nil {
		return res, nil, err
	}
	return res, sorted, nil
}

func binary(rec *step.Recorder, a []int, target int) (Result, error) {
	left, right := 0, len(a)-1
	for left <= right {
		mid := (left + right) / 2
		if err := rec.Emit(step.NewCompare(fmt.Sprintf("Checking middle element %d at position %d", a[mid], mid), mid)); err != nil {
			return Result{Index: -1}, err
		}
		if a[mid] == target {
			if err := rec.Emit(step.NewFound(fmt.Sprintf("Found target %d at position %d", target, mid), mid)); err != nil {
				return Result{Index: -1}, err
			}
			return Result{Index: mid, Log: rec.Log()}, nil
		}

		var desc string
		if a[mid] < target {
			left = mid + 1
			desc = fmt.Sprintf("Target is in right half, searching positions %d to %d", left, right)
		} else {
			right = mid - 1
			desc = fmt.Sprintf("Target is in left half, searching positions %d to %d", left, right)
		}
		if err := rec.Emit(step.NewRange(desc, left, right)); err != nil {
			return Result{Index: -1}, err
		}
	}
	return notFound(rec, target)
}

func notFound(rec *step.Recorder, target int) (Result, error) {
	if err := rec.Emit(step.NewNotFound(fmt.Sprintf("Target %d not found in array", target), target)); err != nil {
		return Result{Index: -1}, err
	}
	return Result{Index: -1, Log: rec.Log()}, nil
}
