package bstree

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
)

// Order selects a traversal order.
type Order int8

// Traversal orders for All.
const (
	LevelOrderTraversal Order = iota // breadth-first, left to right within a level
	InOrderTraversal                 // left subtree, node, right subtree
	PreOrderTraversal                // node, left subtree, right subtree
	PostOrderTraversal               // left subtree, right subtree, node
)

func (o Order) String() string {
	switch o {
	case LevelOrderTraversal:
		return "level-order"
	case InOrderTraversal:
		return "in-order"
	case PreOrderTraversal:
		return "pre-order"
	case PostOrderTraversal:
		return "post-order"
	}
	return fmt.Sprintf("Order(%d)", int8(o))
}

// Visitor is called for nodes during a traversal. If a visitor returns an
// error, the traversal stops and returns that error.
type Visitor[K cmp.Ordered] func(n *Node[K]) error

// LevelOrder visits all nodes breadth-first: in order of increasing depth and
// from left to right within a level.
//
// Traversing an empty tree is not an error. If visit is nil, an error wrapping
// ErrInvalidArgument is returned.
func (t *Tree[K]) LevelOrder(visit Visitor[K]) error {
	return t.traverse(LevelOrderTraversal, visit)
}

// InOrder visits all nodes in ascending key order.
//
// Traversing an empty tree is not an error. If visit is nil, an error wrapping
// ErrInvalidArgument is returned.
func (t *Tree[K]) InOrder(visit Visitor[K]) error {
	return t.traverse(InOrderTraversal, visit)
}

// PreOrder visits a node before its left subtree, followed by its right
// subtree.
//
// Traversing an empty tree is not an error. If visit is nil, an error wrapping
// ErrInvalidArgument is returned.
func (t *Tree[K]) PreOrder(visit Visitor[K]) error {
	return t.traverse(PreOrderTraversal, visit)
}

// PostOrder visits the left and right subtrees of a node before the node itself.
//
// Traversing an empty tree is not an error. If visit is nil, an error wrapping
// ErrInvalidArgument is returned.
func (t *Tree[K]) PostOrder(visit Visitor[K]) error {
	return t.traverse(PostOrderTraversal, visit)
}

func (t *Tree[K]) traverse(order Order, visit Visitor[K]) error {
	if visit == nil {
		return fmt.Errorf("%w: %s traversal requires a visitor", ErrInvalidArgument, order)
	}
	if t.IsEmpty() {
		return nil
	}
	switch order {
	case LevelOrderTraversal:
		return levelOrder(t.root, visit)
	case InOrderTraversal:
		return inOrder(t.root, visit)
	case PreOrderTraversal:
		return preOrder(t.root, visit)
	case PostOrderTraversal:
		return postOrder(t.root, visit)
	}
	return fmt.Errorf("%w: unknown traversal order %s", ErrInvalidArgument, order)
}

func levelOrder[K cmp.Ordered](root *Node[K], visit Visitor[K]) error {
	queue := []*Node[K]{root}
	for len(queue) > 0 {
		n := queue[0]
		queue[0] = nil
		queue = queue[1:]
		if err := visit(n); err != nil {
			return err
		}
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
	return nil
}

func inOrder[K cmp.Ordered](n *Node[K], visit Visitor[K]) error {
	if n == nil {
		return nil
	}
	if err := inOrder(n.left, visit); err != nil {
		return err
	}
	if err := visit(n); err != nil {
		return err
	}
	return inOrder(n.right, visit)
}

func preOrder[K cmp.Ordered](n *Node[K], visit Visitor[K]) error {
	if n == nil {
		return nil
	}
	if err := visit(n); err != nil {
		return err
	}
	if err := preOrder(n.left, visit); err != nil {
		return err
	}
	return preOrder(n.right, visit)
}

func postOrder[K cmp.Ordered](n *Node[K], visit Visitor[K]) error {
	if n == nil {
		return nil
	}
	if err := postOrder(n.left, visit); err != nil {
		return err
	}
	if err := postOrder(n.right, visit); err != nil {
		return err
	}
	return visit(n)
}

// errStopIteration signals a range loop ending early. It never leaves this package.
var errStopIteration = errors.New("stop iteration")

// All returns an iterator over all nodes of the tree in the given order.
// An unknown order yields nothing.
func (t *Tree[K]) All(order Order) iter.Seq[*Node[K]] {
	return func(yield func(*Node[K]) bool) {
		err := t.traverse(order, func(n *Node[K]) error {
			if !yield(n) {
				return errStopIteration
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStopIteration) {
			T().Debugf("bstree: %v", err)
		}
	}
}

// Keys returns an iterator over all keys of the tree in ascending order.
func (t *Tree[K]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := range t.All(InOrderTraversal) {
			if !yield(n.key) {
				return
			}
		}
	}
}
