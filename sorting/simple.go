package sorting

import (
	"fmt"

	"github.com/katalvlaran/algostep/step"
)

// Bubble sorts a by repeatedly swapping adjacent out-of-order pairs. After
// pass i the largest remaining value settles at n-i-1.
func Bubble(a []int, opts ...step.Option) (*step.Log, error) {
	s := newSorter(a, opts)
	return s.finish(s.bubble())
}

func (s *sorter) bubble() error {
	n := len(s.a)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if err := s.compare(fmt.Sprintf("Comparing elements at positions %d and %d", j, j+1), j, j+1); err != nil {
				return err
			}
			if s.a[j] > s.a[j+1] {
				desc := fmt.Sprintf("Swapping elements %d and %d", s.a[j+1], s.a[j])
				if err := s.swap(desc, j, j+1); err != nil {
					return err
				}
			}
		}
		if err := s.sorted(n - i - 1); err != nil {
			return err
		}
	}
	if n > 0 {
		return s.sorted(0)
	}
	return nil
}

// Insertion grows a sorted prefix, shifting larger values right to open a
// slot for each new key.
func Insertion(a []int, opts ...step.Option) (*step.Log, error) {
	s := newSorter(a, opts)
	return s.finish(s.insertion())
}

func (s *sorter) insertion() error {
	for i := 1; i < len(s.a); i++ {
		key := s.a[i]
		if err := s.compare(fmt.Sprintf("Current element: %d", key), i); err != nil {
			return err
		}
		j := i - 1
		for ; j >= 0 && s.a[j] > key; j-- {
			if err := s.compare(fmt.Sprintf("Comparing %d with %d", s.a[j], key), j, j+1); err != nil {
				return err
			}
			s.a[j+1] = s.a[j]
			desc := fmt.Sprintf("Moving %d one position ahead", s.a[j])
			if err := s.rec.Emit(step.NewSwap(desc, j, j+1, s.a)); err != nil {
				return err
			}
		}
		s.a[j+1] = key
		desc := fmt.Sprintf("Placed %d at position %d", key, j+1)
		if err := s.rec.Emit(step.NewMerge(desc, j+1, s.a)); err != nil {
			return err
		}
	}
	return s.sortedAll()
}

// Selection moves the minimum of the unsorted suffix to its front on every
// pass.
func Selection(a []int, opts ...step.Option) (*step.Log, error) {
	s := newSorter(a, opts)
	return s.finish(s.selection())
}

func (s *sorter) selection() error {
	n := len(s.a)
	for i := 0; i < n-1; i++ {
		minIdx := i
		if err := s.compare(fmt.Sprintf("Finding minimum element starting from position %d", i), i); err != nil {
			return err
		}
		for j := i + 1; j < n; j++ {
			if err := s.compare(fmt.Sprintf("Comparing %d with %d", s.a[minIdx], s.a[j]), minIdx, j); err != nil {
				return err
			}
			if s.a[j] < s.a[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			desc := fmt.Sprintf("Swapping %d with %d", s.a[minIdx], s.a[i])
			if err := s.swap(desc, i, minIdx); err != nil {
				return err
			}
		}
		if err := s.sorted(i); err != nil {
			return err
		}
	}
	if n > 0 {
		return s.sorted(n - 1)
	}
	return nil
}
