// Package tree implements the binary search tree and AVL tree operations
// whose structural steps (compare, rotate, visit, found) are recorded for
// replay.
//
// Nodes are identified in steps by their value in decimal, which is unique
// because neither tree stores duplicates.
package tree

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/step"
)

// ErrEmptyTree is returned by operations that need at least one node.
var ErrEmptyTree = errors.New("tree: no values to build a tree from")

// ErrUnknownOrder is returned by ParseOrder.
var ErrUnknownOrder = errors.New("tree: unknown traversal order")

// Node is a binary tree node. Height is maintained by AVL only
// (leaf = 1); BST nodes leave it zero.
type Node struct {
	Value       int
	Left, Right *Node
	Height      int
}

// ID is the label a node carries in steps.
func (n *Node) ID() string { return strconv.Itoa(n.Value) }

// Order selects a depth-first traversal.
type Order uint8

const (
	Inorder Order = iota + 1
	Preorder
	Postorder
)

func (o Order) String() string {
	switch o {
	case Inorder:
		return "inorder"
	case Preorder:
		return "preorder"
	case Postorder:
		return "postorder"
	default:
		return "unknown"
	}
}

// ParseOrder maps "inorder", "preorder" and "postorder" to an Order.
func ParseOrder(s string) (Order, error) {
	for _, o := range []Order{Inorder, Preorder, Postorder} {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownOrder, "%q", s)
}

// emit forwards s to rec; a nil recorder builds the tree silently.
func emit(rec *step.Recorder, s step.Step) error {
	if rec == nil {
		return nil
	}
	return rec.Emit(s)
}
