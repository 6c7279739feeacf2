package sorting

import (
	"fmt"

	"github.com/katalvlaran/algostep/step"
)

// Merge sorts a top-down, splitting at floor((start+end)/2). Ties prefer the
// left half, so the sort is stable. Positions are only final after the last
// merge, so all Sorted steps come at the end.
func Merge(a []int, opts ...step.Option) (*step.Log, error) {
	s := newSorter(a, opts)
	if err := s.mergeSort(0, len(a)-1); err != nil {
		return nil, err
	}
	return s.finish(s.sortedAll())
}

func (s *sorter) mergeSort(start, end int) error {
	if start >= end {
		return nil
	}
	mid := (start + end) / 2
	if err := s.mergeSort(start, mid); err != nil {
		return err
	}
	if err := s.mergeSort(mid+1, end); err != nil {
		return err
	}
	return s.merge(start, mid, end)
}

func (s *sorter) merge(start, mid, end int) error {
	left := append([]int(nil), s.a[start:mid+1]...)
	right := append([]int(nil), s.a[mid+1:end+1]...)
	i, j, k := 0, 0, start

	place := func(v int, desc string) error {
		s.a[k] = v
		err := s.rec.Emit(step.NewMerge(desc, k, s.a))
		k++
		return err
	}

	for i < len(left) && j < len(right) {
		desc := fmt.Sprintf("Comparing elements %d and %d", left[i], right[j])
		if err := s.compare(desc, start+i, mid+1+j); err != nil {
			return err
		}
		v := right[j]
		if left[i] <= right[j] {
			v = left[i]
			i++
		} else {
			j++
		}
		if err := place(v, fmt.Sprintf("Placing %d in position %d", v, k)); err != nil {
			return err
		}
	}
	for ; i < len(left); i++ {
		if err := place(left[i], fmt.Sprintf("Placing remaining left element %d in position %d", left[i], k)); err != nil {
			return err
		}
	}
	for ; j < len(right); j++ {
		if err := place(right[j], fmt.Sprintf("Placing remaining right element %d in position %d", right[j], k)); err != nil {
			return err
		}
	}
	return nil
}
