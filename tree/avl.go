package tree

import (
	"fmt"

	"github.com/katalvlaran/algostep/step"
)

// AVL is a self-balancing BST: after every insertion the heights of the two
// subtrees of any node differ by at most one.
type AVL struct {
	Root *Node
	size int
}

// Len is the number of nodes.
func (t *AVL) Len() int { return t.size }

func height(n *Node) int {
	if n == nil {
		return 0
	}
	return n.Height
}

func balance(n *Node) int { return height(n.Left) - height(n.Right) }

func fix(n *Node) { n.Height = max(height(n.Left), height(n.Right)) + 1 }

func rotateRight(y *Node) *Node {
	x := y.Left
	y.Left, x.Right = x.Right, y
	fix(y)
	fix(x)
	return x
}

func rotateLeft(x *Node) *Node {
	y := x.Right
	x.Right, y.Left = y.Left, x
	fix(x)
	fix(y)
	return y
}

// Insert places v and rebalances on the way back up. It emits a NodeCompare
// per node passed and a Rotate per rotation (two for LR and RL). Duplicates
// are ignored and reported as false.
func (t *AVL) Insert(rec *step.Recorder, v int) (bool, error) {
	root, added, err := t.insert(rec, t.Root, v)
	if err != nil {
		return false, err
	}
	t.Root = root
	if added {
		t.size++
	}
	return added, nil
}

func (t *AVL) insert(rec *step.Recorder, n *Node, v int) (*Node, bool, error) {
	if n == nil {
		return &Node{Value: v, Height: 1}, true, nil
	}
	if err := emit(rec, step.NewNodeCompare(fmt.Sprintf("Comparing %d with %d", v, n.Value), n.ID(), v)); err != nil {
		return nil, false, err
	}

	var (
		added bool
		err   error
	)
	switch {
	case v < n.Value:
		n.Left, added, err = t.insert(rec, n.Left, v)
	case v > n.Value:
		n.Right, added, err = t.insert(rec, n.Right, v)
	default:
		return n, false, nil
	}
	if err != nil || !added {
		return n, added, err
	}

	fix(n)
	b := balance(n)
	switch {
	case b > 1 && v < n.Left.Value: // LL
		return t.rotate(rec, n, step.RotateRight)
	case b < -1 && v > n.Right.Value: // RR
		return t.rotate(rec, n, step.RotateLeft)
	case b > 1: // LR
		l, _, err := t.rotate(rec, n.Left, step.RotateLeft)
		if err != nil {
			return nil, false, err
		}
		n.Left = l
		return t.rotate(rec, n, step.RotateRight)
	case b < -1: // RL
		r, _, err := t.rotate(rec, n.Right, step.RotateRight)
		if err != nil {
			return nil, false, err
		}
		n.Right = r
		return t.rotate(rec, n, step.RotateLeft)
	}
	return n, true, nil
}

// rotate records the rotation at pivot, then performs it.
func (t *AVL) rotate(rec *step.Recorder, pivot *Node, dir step.Direction) (*Node, bool, error) {
	desc := fmt.Sprintf("Performing %s rotation at %d", dir, pivot.Value)
	if err := emit(rec, step.NewRotate(desc, pivot.ID(), dir)); err != nil {
		return nil, false, err
	}
	if dir == step.RotateLeft {
		return rotateLeft(pivot), true, nil
	}
	return rotateRight(pivot), true, nil
}

// Search walks from the root toward v.
func (t *AVL) Search(rec *step.Recorder, v int) (*Node, error) {
	return search(rec, t.Root, v)
}

// Traverse visits every node in the given order.
func (t *AVL) Traverse(rec *step.Recorder, o Order) ([]int, error) {
	return traverse(rec, t.Root, o)
}
