package bstree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "cmp"

// Insert adds key to the tree. If the tree already contains key, Insert is a
// no-op. The tree is not re-balanced.
func (t *Tree[K]) Insert(key K) {
	assert(t != nil, "Insert called on nil tree")
	if t.root == nil {
		t.root = &Node[K]{key: key}
		t.size = 1
		T().Debugf("bstree: insert %v as root", key)
		return
	}
	if insertBelow(t.root, key) {
		t.size++
	}
}

// insertBelow descends from n and attaches key as a new leaf at the first
// empty slot. It returns false if key is already present.
func insertBelow[K cmp.Ordered](n *Node[K], key K) bool {
	for {
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			if n.left == nil {
				n.left = &Node[K]{key: key}
				T().Debugf("bstree: insert %v left of %v", key, n.key)
				return true
			}
			n = n.left
		case c > 0:
			if n.right == nil {
				n.right = &Node[K]{key: key}
				T().Debugf("bstree: insert %v right of %v", key, n.key)
				return true
			}
			n = n.right
		default:
			return false
		}
	}
}

// Delete removes key from the tree. If the tree does not contain key, Delete is
// a no-op.
//
// A node with two children is not unlinked. Instead it receives the smallest
// key of its right subtree, and the node which held that key is removed from
// the right subtree.
func (t *Tree[K]) Delete(key K) {
	assert(t != nil, "Delete called on nil tree")
	var deleted bool
	t.root, deleted = deleteFrom(t.root, key)
	if deleted {
		t.size--
		T().Debugf("bstree: deleted %v, %d keys left", key, t.size)
	}
}

// deleteFrom removes key from the subtree at n and returns the new root of
// that subtree.
func deleteFrom[K cmp.Ordered](n *Node[K], key K) (*Node[K], bool) {
	if n == nil {
		return nil, false
	}
	var deleted bool
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left, deleted = deleteFrom(n.left, key)
		return n, deleted
	case c > 0:
		n.right, deleted = deleteFrom(n.right, key)
		return n, deleted
	}
	switch {
	case n.left == nil:
		return n.right, true
	case n.right == nil:
		return n.left, true
	}
	successor := leftmost(n.right)
	n.key = successor.key
	n.right, deleted = deleteFrom(n.right, successor.key)
	assert(deleted, "successor vanished from right subtree")
	return n, true
}

// Rebalance rebuilds the tree to minimal height. The set of keys is not
// changed, but all nodes are replaced; nodes obtained from the tree earlier
// are no longer part of it.
func (t *Tree[K]) Rebalance() {
	assert(t != nil, "Rebalance called on nil tree")
	keys := make([]K, 0, t.size)
	for key := range t.Keys() {
		keys = append(keys, key)
	}
	T().Debugf("bstree: rebalancing %d keys", len(keys))
	t.root = buildBalanced(keys)
	t.size = len(keys)
}
