package tree

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/algostep/step"
)

// RunBST inserts values in order, announcing each with a Visit, then
// searches for target. The log ends with NodeFound or NotFound.
func RunBST(values []int, target int, opts ...step.Option) (*BST, *step.Log, error) {
	if len(values) == 0 {
		return nil, nil, ErrEmptyTree
	}
	rec := step.NewRecorder(opts...)
	t := &BST{}
	for _, v := range values {
		if err := rec.Emit(step.NewVisit(fmt.Sprintf("Inserting node %d", v), strconv.Itoa(v))); err != nil {
			return nil, nil, err
		}
		if _, err := t.Insert(rec, v); err != nil {
			return nil, nil, err
		}
	}
	if _, err := t.Search(rec, target); err != nil {
		return nil, nil, err
	}
	return t, rec.Log(), nil
}

// RunAVL inserts values in order, announcing each with a Visit followed by
// the insertion's compares and rotations.
func RunAVL(values []int, opts ...step.Option) (*AVL, *step.Log, error) {
	if len(values) == 0 {
		return nil, nil, ErrEmptyTree
	}
	rec := step.NewRecorder(opts...)
	t := &AVL{}
	for _, v := range values {
		if err := rec.Emit(step.NewVisit(fmt.Sprintf("Inserting node %d", v), strconv.Itoa(v))); err != nil {
			return nil, nil, err
		}
		if _, err := t.Insert(rec, v); err != nil {
			return nil, nil, err
		}
	}
	return t, rec.Log(), nil
}

// RunTraversal builds a BST from values without recording it, then records
// the traversal. It returns the visit order.
func RunTraversal(o Order, values []int, opts ...step.Option) ([]int, *step.Log, error) {
	if len(values) == 0 {
		return nil, nil, ErrEmptyTree
	}
	t := Build(values)
	rec := step.NewRecorder(opts...)
	out, err := t.Traverse(rec, o)
	if err != nil {
		return nil, nil, err
	}
	return out, rec.Log(), nil
}

// Build inserts values into a new BST silently.
func Build(values []int) *BST {
	t := &BST{}
	for _, v := range values {
		_, _ = t.Insert(nil, v)
	}
	return t
}
