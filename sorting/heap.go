package sorting

import (
	"fmt"

	"github.com/katalvlaran/algostep/step"
)

// Heap builds a max-heap bottom-up, then repeatedly swaps the root with the
// last unsorted element and sifts the new root down.
func Heap(a []int, opts ...step.Option) (*step.Log, error) {
	s := newSorter(a, opts)
	return s.finish(s.heap())
}

func (s *sorter) heap() error {
	n := len(s.a)
	for i := n/2 - 1; i >= 0; i-- {
		if err := s.heapify(n, i); err != nil {
			return err
		}
	}
	for i := n - 1; i > 0; i-- {
		desc := fmt.Sprintf("Swapping root %d with last element %d", s.a[0], s.a[i])
		if err := s.swap(desc, 0, i); err != nil {
			return err
		}
		if err := s.sorted(i); err != nil {
			return err
		}
		if err := s.heapify(i, 0); err != nil {
			return err
		}
	}
	if n > 0 {
		return s.sorted(0)
	}
	return nil
}

// heapify sifts a[i] down within the first n elements.
func (s *sorter) heapify(n, i int) error {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n {
			desc := fmt.Sprintf("Comparing root %d with left child %d", s.a[i], s.a[left])
			if err := s.compare(desc, i, left); err != nil {
				return err
			}
			if s.a[left] > s.a[largest] {
				largest = left
			}
		}
		if right < n {
			desc := fmt.Sprintf("Comparing %d with right child %d", s.a[largest], s.a[right])
			if err := s.compare(desc, largest, right); err != nil {
				return err
			}
			if s.a[right] > s.a[largest] {
				largest = right
			}
		}
		if largest == i {
			return nil
		}
		desc := fmt.Sprintf("Swapping %d with %d", s.a[i], s.a[largest])
		if err := s.swap(desc, i, largest); err != nil {
			return err
		}
		i = largest
	}
}
