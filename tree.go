package bstree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"slices"
)

// Node is a node of a binary search tree. It holds a key and owns up to two
// child subtrees. Nodes handed out to clients are for reading only.
type Node[K cmp.Ordered] struct {
	key         K
	left, right *Node[K]
}

// Key returns the key stored at n.
func (n *Node[K]) Key() K {
	return n.key
}

// Left returns the left child of n, or nil.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of n, or nil.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// IsLeaf reports whether n has no children.
func (n *Node[K]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

func (n *Node[K]) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("(%v)", n.key)
}

// Tree is an unbalanced binary search tree of unique keys.
//
// A tree created by
//
//	Tree[int]{}
//
// is a valid object and behaves like an empty tree.
//
// Complexity of operations depends on the shape of the tree. With h being the
// height of the tree:
//
//	Operation     |   Time
//	--------------+-----------
//	Build         |   O(n log n)
//	Insert        |   O(h)
//	Delete        |   O(h)
//	Find          |   O(h)
//	Depth         |   O(h)
//	Height        |   O(n)
//	IsBalanced    |   O(n)
//	Rebalance     |   O(n)
//
// h is log n for trees fresh from Build or Rebalance, but may grow up to n
// with subsequent insertions and deletions.
type Tree[K cmp.Ordered] struct {
	root *Node[K]
	size int
}

// New creates an empty tree.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// Build creates a tree of minimal height from a collection of keys.
// keys may be unordered and may contain duplicates; keys is not modified.
func Build[K cmp.Ordered](keys []K) *Tree[K] {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.CompactFunc(sorted, func(a, b K) bool {
		return cmp.Compare(a, b) == 0
	})
	T().Debugf("bstree: building tree from %d unique keys (%d given)", len(sorted), len(keys))
	return &Tree[K]{
		root: buildBalanced(sorted),
		size: len(sorted),
	}
}

// buildBalanced expects keys to be sorted and free of duplicates.
func buildBalanced[K cmp.Ordered](keys []K) *Node[K] {
	if len(keys) == 0 {
		return nil
	}
	mid := len(keys) / 2
	return &Node[K]{
		key:   keys[mid],
		left:  buildBalanced(keys[:mid]),
		right: buildBalanced(keys[mid+1:]),
	}
}

// Root returns the root node of the tree, or nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Find returns the node holding key, or nil if key is not present.
func (t *Tree[K]) Find(key K) *Node[K] {
	if t == nil {
		return nil
	}
	n := t.root
	for n != nil {
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Contains reports whether key is present in the tree.
func (t *Tree[K]) Contains(key K) bool {
	return t.Find(key) != nil
}

// Min returns the smallest key of the tree.
// For an empty tree, ErrNotFound is returned.
func (t *Tree[K]) Min() (K, error) {
	var zero K
	if t.IsEmpty() {
		return zero, fmt.Errorf("%w: minimum of empty tree", ErrNotFound)
	}
	return leftmost(t.root).key, nil
}

// Max returns the largest key of the tree.
// For an empty tree, ErrNotFound is returned.
func (t *Tree[K]) Max() (K, error) {
	var zero K
	if t.IsEmpty() {
		return zero, fmt.Errorf("%w: maximum of empty tree", ErrNotFound)
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, nil
}

func leftmost[K cmp.Ordered](n *Node[K]) *Node[K] {
	assert(n != nil, "leftmost called with nil node")
	for n.left != nil {
		n = n.left
	}
	return n
}
