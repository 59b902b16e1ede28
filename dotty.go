package bstree

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

type nodeids[K cmp.Ordered] struct {
	idTable map[*Node[K]]int
	max     int
}

func newtable[K cmp.Ordered]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*Node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(node *Node[K]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K]) alloc(node *Node[K]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Empty child slots of inner nodes are drawn as
// small empty circles, so left and right children can be told apart.
func Tree2Dot[K cmp.Ordered](tree *Tree[K], w io.Writer) error {
	if w == nil {
		return fmt.Errorf("%w: writer is nil", ErrInvalidArgument)
	}
	var nodelist, edgelist strings.Builder
	ids := newtable[K]()
	nilid := 10000
	emptySlot := func(parent int) {
		nilid++
		fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", parent, nilid)
	}
	err := tree.PreOrder(func(node *Node[K]) error {
		ID := ids.alloc(node)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%v\" %s];\n", ID, node.key, nodeDotStyles(node.IsLeaf()))
		if node.IsLeaf() {
			return nil
		}
		if node.left == nil {
			emptySlot(ID)
		} else {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(node.left))
		}
		if node.right == nil {
			emptySlot(ID)
		} else {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(node.right))
		}
		return nil
	})
	if err != nil {
		T().Errorf("tree DOT: %s", err.Error())
		return err
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	_, err = io.WriteString(w, "}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",fillcolor=\"#CCDDFF\""
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
