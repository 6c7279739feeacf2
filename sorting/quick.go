package sorting

import (
	"fmt"

	"github.com/katalvlaran/algostep/step"
)

// Quick sorts a with Lomuto partitioning. The pivot is always the last
// element of the active partition and only values strictly less than it
// move left. Each pivot is marked sorted once placed, as is every
// single-element partition.
func Quick(a []int, opts ...step.Option) (*step.Log, error) {
	s := newSorter(a, opts)
	return s.finish(s.quick(0, len(a)-1))
}

func (s *sorter) quick(start, end int) error {
	if start > end {
		return nil
	}
	if start == end {
		return s.sorted(start)
	}
	p, err := s.partition(start, end)
	if err != nil {
		return err
	}
	if err := s.quick(start, p-1); err != nil {
		return err
	}
	return s.quick(p+1, end)
}

// partition returns the final index of the pivot a[end].
func (s *sorter) partition(start, end int) (int, error) {
	pivot := s.a[end]
	if err := s.rec.Emit(step.NewPivot(fmt.Sprintf("Choosing pivot element: %d", pivot), end)); err != nil {
		return 0, err
	}
	i := start - 1
	for j := start; j < end; j++ {
		if err := s.compare(fmt.Sprintf("Comparing element %d with pivot %d", s.a[j], pivot), j, end); err != nil {
			return 0, err
		}
		if s.a[j] < pivot {
			i++
			desc := fmt.Sprintf("Swapping elements %d and %d", s.a[j], s.a[i])
			if err := s.swap(desc, i, j); err != nil {
				return 0, err
			}
		}
	}
	p := i + 1
	if err := s.swap(fmt.Sprintf("Placing pivot %d in its correct position", pivot), p, end); err != nil {
		return 0, err
	}
	return p, s.sorted(p)
}
