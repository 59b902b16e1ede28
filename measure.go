package bstree

import (
	"cmp"
	"fmt"
)

// Height returns the height of the subtree rooted at n, i.e. the number of
// edges on the longest downward path from n to a leaf. A leaf has height 0.
//
// n has to be a node of t. If n is nil or is not reachable from the root of t
// (it may belong to a different tree or may have been removed by Delete), an
// error wrapping ErrNotFound is returned.
func (t *Tree[K]) Height(n *Node[K]) (int, error) {
	if err := t.checkMember(n); err != nil {
		return -1, err
	}
	return subtreeHeight(n), nil
}

// HeightOf returns the height of the node holding key.
// If key is not present, an error wrapping ErrNotFound is returned.
func (t *Tree[K]) HeightOf(key K) (int, error) {
	n := t.Find(key)
	if n == nil {
		return -1, fmt.Errorf("%w: key %v", ErrNotFound, key)
	}
	return subtreeHeight(n), nil
}

// TreeHeight returns the height of the root, or -1 for an empty tree.
func (t *Tree[K]) TreeHeight() int {
	return subtreeHeight(t.Root())
}

// subtreeHeight returns -1 for an empty subtree, which makes
// max(left, right) + 1 work for leaves.
func subtreeHeight[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return -1
	}
	return max(subtreeHeight(n.left), subtreeHeight(n.right)) + 1
}

// Depth returns the number of edges from the root of t to n. The root has
// depth 0.
//
// If n is nil or is not reachable from the root of t, an error wrapping
// ErrNotFound is returned.
func (t *Tree[K]) Depth(n *Node[K]) (int, error) {
	if n == nil {
		return -1, fmt.Errorf("%w: depth of nil node", ErrNotFound)
	}
	found, depth := t.descend(n.key)
	if found != n {
		return -1, fmt.Errorf("%w: node %v is not part of tree", ErrNotFound, n)
	}
	return depth, nil
}

// DepthOf returns the depth of the node holding key.
// If key is not present, an error wrapping ErrNotFound is returned.
func (t *Tree[K]) DepthOf(key K) (int, error) {
	found, depth := t.descend(key)
	if found == nil {
		return -1, fmt.Errorf("%w: key %v", ErrNotFound, key)
	}
	return depth, nil
}

// descend searches key starting at the root and returns the node holding key
// together with the number of edges walked. found is nil if key is absent.
func (t *Tree[K]) descend(key K) (found *Node[K], depth int) {
	n := t.Root()
	for n != nil {
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n, depth
		}
		depth++
	}
	return nil, -1
}

func (t *Tree[K]) checkMember(n *Node[K]) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrNotFound)
	}
	if t.Find(n.key) != n {
		return fmt.Errorf("%w: node %v is not part of tree", ErrNotFound, n)
	}
	return nil
}

// IsBalanced reports whether, for every node of the tree, the heights of its
// left and right subtree differ by at most 1. An empty tree is balanced.
func (t *Tree[K]) IsBalanced() bool {
	return balancedHeight(t.Root()) != unbalanced
}

const unbalanced = -2

// balancedHeight returns the height of the subtree at n, or unbalanced as soon
// as any subtree below n is out of balance.
func balancedHeight[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return -1
	}
	lh := balancedHeight(n.left)
	if lh == unbalanced {
		return unbalanced
	}
	rh := balancedHeight(n.right)
	if rh == unbalanced {
		return unbalanced
	}
	if lh-rh > 1 || rh-lh > 1 {
		return unbalanced
	}
	return max(lh, rh) + 1
}
