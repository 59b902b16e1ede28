/*
Package html renders binary search trees as nested HTML lists, and reads keys
back from such lists.

A node is rendered as a list item holding a span of class "key", followed by a
nested list for its children (left child first). An empty child slot next to a
present sibling is rendered as an empty list item of class "empty", so that
left and right children can be told apart:

	<ul class="bstree">
	  <li><span class="key">2</span>
	    <ul>
	      <li><span class="key">1</span></li>
	      <li><span class="key">3</span></li>
	    </ul>
	  </li>
	</ul>

(whitespace added for readability).
*/
package html

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/npillmayer/bstree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Render writes the tree as a nested HTML list to w.
// An empty tree is rendered as an empty list.
func Render[K cmp.Ordered](w io.Writer, tree *bstree.Tree[K]) error {
	if w == nil {
		return fmt.Errorf("%w: writer is nil", bstree.ErrInvalidArgument)
	}
	return html.Render(w, Node(tree))
}

// Node returns the tree as an HTML element node, for clients who want to
// embed it into a larger document.
func Node[K cmp.Ordered](tree *bstree.Tree[K]) *html.Node {
	root := element(atom.Ul, "bstree")
	if !tree.IsEmpty() {
		root.AppendChild(nodeItem(tree.Root()))
	}
	return root
}

func nodeItem[K cmp.Ordered](n *bstree.Node[K]) *html.Node {
	li := element(atom.Li, "")
	key := element(atom.Span, "key")
	key.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprint(n.Key())})
	li.AppendChild(key)
	if n.IsLeaf() {
		return li
	}
	children := element(atom.Ul, "")
	for _, child := range []*bstree.Node[K]{n.Left(), n.Right()} {
		if child == nil {
			children.AppendChild(element(atom.Li, "empty"))
		} else {
			children.AppendChild(nodeItem(child))
		}
	}
	li.AppendChild(children)
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

// Keys parses an HTML fragment and returns the text content of all elements
// of class "key", in document order. For a fragment produced by Render this
// is the pre-order sequence of the tree's keys.
func Keys(input io.Reader) ([]string, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: reader is nil", bstree.ErrInvalidArgument)
	}
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, n := range nodes {
		keys = collectKeys(n, keys)
	}
	T().Debugf("html: found %d keys", len(keys))
	return keys, nil
}

func collectKeys(n *html.Node, keys []string) []string {
	if n.Type == html.ElementNode && hasClass(n, "key") {
		var b strings.Builder
		innerText(n, &b)
		return append(keys, strings.TrimSpace(b.String()))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		keys = collectKeys(c, keys)
	}
	return keys
}

func innerText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		innerText(c, b)
	}
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key == "class" && slices.Contains(strings.Fields(attr.Val), class) {
			return true
		}
	}
	return false
}
