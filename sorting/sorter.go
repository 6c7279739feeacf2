package sorting

import (
	"fmt"

	"github.com/katalvlaran/algostep/step"
)

// sorter carries the working array and the recorder through one run.
type sorter struct {
	a   []int
	rec *step.Recorder
}

func newSorter(a []int, opts []step.Option) *sorter {
	return &sorter{a: a, rec: step.NewRecorder(opts...)}
}

func (s *sorter) compare(desc string, idx ...int) error {
	return s.rec.Emit(step.NewCompare(desc, idx...))
}

// swap exchanges a[i] and a[j] and records the resulting array.
func (s *sorter) swap(desc string, i, j int) error {
	s.a[i], s.a[j] = s.a[j], s.a[i]
	return s.rec.Emit(step.NewSwap(desc, i, j, s.a))
}

func (s *sorter) sorted(i int) error {
	return s.rec.Emit(step.NewSorted(
		fmt.Sprintf("Element %d is now in its sorted position", s.a[i]), i))
}

// sortedAll marks every index in order; used by the sorts whose positions
// are only final once the whole pass is over.
func (s *sorter) sortedAll() error {
	for i := range s.a {
		if err := s.sorted(i); err != nil {
			return err
		}
	}
	return nil
}

func (s *sorter) finish(err error) (*step.Log, error) {
	if err != nil {
		return nil, err
	}
	return s.rec.Log(), nil
}
