package tree

// Height is the number of nodes on the longest root-to-leaf path, computed
// structurally (it does not trust Node.Height).
func Height(n *Node) int {
	if n == nil {
		return 0
	}
	return max(Height(n.Left), Height(n.Right)) + 1
}

// IsBST reports whether every left descendant is smaller and every right
// descendant larger than its ancestor.
func IsBST(root *Node) bool {
	var ok func(n *Node, lo, hi *int) bool
	ok = func(n *Node, lo, hi *int) bool {
		if n == nil {
			return true
		}
		if (lo != nil && n.Value <= *lo) || (hi != nil && n.Value >= *hi) {
			return false
		}
		return ok(n.Left, lo, &n.Value) && ok(n.Right, &n.Value, hi)
	}
	return ok(root, nil, nil)
}

// IsBalanced reports whether |h(left)-h(right)| <= 1 holds at every node.
func IsBalanced(root *Node) bool {
	_, ok := balanced(root)
	return ok
}

func balanced(n *Node) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, lok := balanced(n.Left)
	rh, rok := balanced(n.Right)
	d := lh - rh
	return max(lh, rh) + 1, lok && rok && d >= -1 && d <= 1
}

// Values returns the tree's values in ascending (inorder) order.
func Values(root *Node) []int {
	out, _ := traverse(nil, root, Inorder)
	return out
}
