package formatter

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/bstree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// NodeKind classifies nodes for display purposes.
type NodeKind int8

// Node kinds, used by formats to select a visual style.
const (
	RootNode NodeKind = iota
	InnerNode
	LeafNode
)

func (k NodeKind) String() string {
	switch k {
	case RootNode:
		return "root"
	case InnerNode:
		return "inner"
	case LeafNode:
		return "leaf"
	}
	return fmt.Sprintf("NodeKind(%d)", int8(k))
}

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int            // maximum line length in display cells; 0 means unlimited
	Debug     bool           // append the height of each node's subtree to its label
	Context   *uax11.Context // context for measuring label widths
}

// Format is an interface for formatting drivers, given an io.Writer.
type Format interface {
	Preamble(io.Writer)
	Postamble(io.Writer)
	Branch(string, io.Writer)        // tree lines in front of a key
	Key(string, NodeKind, io.Writer) // the (possibly truncated) label of a node
	Newline(io.Writer)
}

// Ellipsis is appended to labels which have been truncated.
const Ellipsis = "…"

var setupGraphemes sync.Once

// Output renders a tree using a given formatter.
//
// Neither of out, config and format may be nil. However, it is safe to have
// config.Context set to nil. In this case, uax11.LatinContext is used.
// An empty tree produces a preamble and a postamble only.
func Output[K cmp.Ordered](tree *bstree.Tree[K], out io.Writer, config *Config, format Format) error {
	if out == nil || config == nil || format == nil {
		return fmt.Errorf("%w: nil", bstree.ErrInvalidArgument)
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	format.Preamble(out)
	if !tree.IsEmpty() {
		r := renderer[K]{tree: tree, out: out, config: config, context: context, format: format}
		if err := r.node(tree.Root(), "", true, RootNode); err != nil {
			T().Errorf("formatter: %v", err)
			return err
		}
		T().Infof("formatter: rendered %d nodes", r.count)
	}
	format.Postamble(out)
	return nil
}

// Print outputs a tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will also be created based on heuristics from the user environment.
func Print[K cmp.Ordered](tree *bstree.Tree[K], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	consoleFmt := NewConsoleFixedWidthFormat(nil)
	return Output(tree, os.Stdout, config, consoleFmt)
}

type renderer[K cmp.Ordered] struct {
	tree    *bstree.Tree[K]
	out     io.Writer
	config  *Config
	context *uax11.Context // never nil
	format  Format
	count   int
}

func (r *renderer[K]) node(n *bstree.Node[K], prefix string, isLeft bool, kind NodeKind) error {
	if right := n.Right(); right != nil {
		if err := r.node(right, prefix+choose(isLeft, "│   ", "    "), false, kindOf(right)); err != nil {
			return err
		}
	}
	branch := prefix + choose(isLeft, "└── ", "┌── ")
	label := fmt.Sprint(n.Key())
	if r.config.Debug {
		h, err := r.tree.Height(n)
		if err != nil {
			return err
		}
		label = fmt.Sprintf("%s (h=%d)", label, h)
	}
	if r.config.LineWidth > 0 {
		label = truncate(label, r.config.LineWidth-displayWidth(branch, r.context), r.context)
	}
	r.format.Branch(branch, r.out)
	r.format.Key(label, kind, r.out)
	r.format.Newline(r.out)
	r.count++
	if left := n.Left(); left != nil {
		return r.node(left, prefix+choose(isLeft, "    ", "│   "), true, kindOf(left))
	}
	return nil
}

func kindOf[K cmp.Ordered](n *bstree.Node[K]) NodeKind {
	if n.IsLeaf() {
		return LeafNode
	}
	return InnerNode
}

// displayWidth returns the number of fixed-width cells needed to display s.
func displayWidth(s string, context *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// truncate shortens label to fit into width cells, marking the cut with an
// ellipsis. A label which cannot even fit the ellipsis is reduced to it.
func truncate(label string, width int, context *uax11.Context) string {
	if displayWidth(label, context) <= width {
		return label
	}
	runes := []rune(label)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		cut := string(runes) + Ellipsis
		if displayWidth(cut, context) <= width {
			return cut
		}
	}
	return Ellipsis
}

func choose(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// PlainFormat outputs trees without any styling.
type PlainFormat struct{}

// Preamble is a no-op.
// (Part of interface Format)
func (PlainFormat) Preamble(io.Writer) {}

// Postamble is a no-op.
// (Part of interface Format)
func (PlainFormat) Postamble(io.Writer) {}

// Branch writes the branch drawing of a node unchanged.
// (Part of interface Format)
func (PlainFormat) Branch(s string, w io.Writer) {
	io.WriteString(w, s)
}

// Key writes a node label unchanged.
// (Part of interface Format)
func (PlainFormat) Key(s string, _ NodeKind, w io.Writer) {
	io.WriteString(w, s)
}

// Newline ends an output line.
// (Part of interface Format)
func (PlainFormat) Newline(w io.Writer) {
	io.WriteString(w, "\n")
}

// Sprint renders a tree without styling and returns it as a string.
func Sprint[K cmp.Ordered](tree *bstree.Tree[K], config *Config) string {
	if config == nil {
		config = &Config{}
	}
	var b strings.Builder
	if err := Output(tree, &b, config, PlainFormat{}); err != nil {
		return ""
	}
	return b.String()
}
