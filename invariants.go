package bstree

import (
	"cmp"
	"fmt"
)

// Check validates the structural invariants of a tree: strict key order
// (which implies uniqueness of keys) and a node count matching Len.
//
// Check is intended for tests. The public API never leaves a tree in an
// inconsistent state.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidArgument)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size 0, has %d", ErrInvariantViolated, t.size)
		}
		return nil
	}
	count, err := checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d nodes, size=%d)", ErrInvariantViolated, count, t.size)
	}
	return nil
}

// checkNode verifies that all keys below n lie strictly between the bounds lo
// and hi, where a nil bound is unlimited.
func checkNode[K cmp.Ordered](n *Node[K], lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && cmp.Compare(n.key, *lo) <= 0 {
		return 0, fmt.Errorf("%w: key %v not greater than ancestor %v", ErrInvariantViolated, n.key, *lo)
	}
	if hi != nil && cmp.Compare(n.key, *hi) >= 0 {
		return 0, fmt.Errorf("%w: key %v not less than ancestor %v", ErrInvariantViolated, n.key, *hi)
	}
	if n.left == n || n.right == n || (n.left != nil && n.left == n.right) {
		return 0, fmt.Errorf("%w: node %v is linked twice", ErrInvariantViolated, n)
	}
	l, err := checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	r, err := checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}
	return l + r + 1, nil
}
