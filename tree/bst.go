package tree

import (
	"fmt"

	"github.com/katalvlaran/algostep/step"
)

// BST is an unbalanced binary search tree without duplicates.
type BST struct {
	Root *Node
	size int
}

// Len is the number of nodes.
func (t *BST) Len() int { return t.size }

// Insert places v, emitting a NodeCompare for every node passed. Inserting a
// value already present compares down to it and stops; it reports false.
func (t *BST) Insert(rec *step.Recorder, v int) (bool, error) {
	if t.Root == nil {
		t.Root = &Node{Value: v}
		t.size++
		return true, nil
	}
	cur := t.Root
	for {
		if err := emit(rec, step.NewNodeCompare(fmt.Sprintf("Comparing %d with %d", v, cur.Value), cur.ID(), v)); err != nil {
			return false, err
		}
		switch {
		case v < cur.Value:
			if cur.Left == nil {
				cur.Left = &Node{Value: v}
				t.size++
				return true, nil
			}
			cur = cur.Left
		case v > cur.Value:
			if cur.Right == nil {
				cur.Right = &Node{Value: v}
				t.size++
				return true, nil
			}
			cur = cur.Right
		default:
			return false, nil
		}
	}
}

// Search walks from the root toward v. See search.
func (t *BST) Search(rec *step.Recorder, v int) (*Node, error) {
	return search(rec, t.Root, v)
}

// Traverse visits every node in the given order.
func (t *BST) Traverse(rec *step.Recorder, o Order) ([]int, error) {
	return traverse(rec, t.Root, o)
}

// search emits a Visit per node on the path, then NodeFound or NotFound.
func search(rec *step.Recorder, root *Node, v int) (*Node, error) {
	for cur := root; cur != nil; {
		if err := emit(rec, step.NewVisit(fmt.Sprintf("Searching for value %d at node %d", v, cur.Value), cur.ID())); err != nil {
			return nil, err
		}
		if v == cur.Value {
			return cur, emit(rec, step.NewNodeFound(fmt.Sprintf("Found value %d", v), cur.ID()))
		}
		if v < cur.Value {
			cur = cur.Left
		} else {
			cur = cur.Right
		}
	}
	return nil, emit(rec, step.NewNotFound(fmt.Sprintf("Value %d not found in tree", v), v))
}

// traverse is recursive; depth is bounded by tree height.
func traverse(rec *step.Recorder, root *Node, o Order) ([]int, error) {
	var out []int
	var walk func(n *Node) error
	visit := func(n *Node) error {
		out = append(out, n.Value)
		return emit(rec, step.NewVisit(fmt.Sprintf("Visiting node %d (%s)", n.Value, o), n.ID()))
	}
	walk = func(n *Node) error {
		if n == nil {
			return nil
		}
		if o == Preorder {
			if err := visit(n); err != nil {
				return err
			}
		}
		if err := walk(n.Left); err != nil {
			return err
		}
		if o == Inorder {
			if err := visit(n); err != nil {
				return err
			}
		}
		if err := walk(n.Right); err != nil {
			return err
		}
		if o == Postorder {
			return visit(n)
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return out, nil
}
