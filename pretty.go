package bstree

import (
	"cmp"
	"fmt"
	"io"
)

// PrettyPrint writes the shape of the tree to w, for debugging purposes.
// The tree is drawn sideways: the root is in the leftmost column, right
// subtrees are drawn above their parent and left subtrees below.
//
//	│       ┌── 18
//	│   ┌── 8
//	│   │   └── 7
//	│   │       └── 6
//	└── 5
//	    │   ┌── 4
//	    └── 3
//	        └── 2
//	            └── 1
func (t *Tree[K]) PrettyPrint(w io.Writer) error {
	if w == nil {
		return fmt.Errorf("%w: writer is nil", ErrInvalidArgument)
	}
	if t.IsEmpty() {
		return nil
	}
	return prettyPrint(w, t.root, "", true)
}

func prettyPrint[K cmp.Ordered](w io.Writer, n *Node[K], prefix string, isLeft bool) error {
	if n.right != nil {
		if err := prettyPrint(w, n.right, prefix+pick(isLeft, "│   ", "    "), false); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%s%s%v\n", prefix, pick(isLeft, "└── ", "┌── "), n.key); err != nil {
		return err
	}
	if n.left != nil {
		return prettyPrint(w, n.left, prefix+pick(isLeft, "    ", "│   "), true)
	}
	return nil
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
