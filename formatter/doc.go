/*
Package formatter renders the shape of a binary search tree on output devices
with fixed-width fonts, for debugging and diagnostics.

Trees are drawn sideways, with the root in the leftmost column, right subtrees
above and left subtrees below their parent:

	│       ┌── 18
	│   ┌── 8
	│   │   └── 7
	└── 5
	    │   ┌── 4
	    └── 3

Keys may be of any ordered type, including strings containing wide or
combining characters. Labels are measured in display cells according to
UAX#29 (graphemes) and UAX#11 (character width), and truncated if a line
would exceed the configured line width.

Rendering never modifies a tree.

▪︎ Select a format for a given output device (ConsoleFixedWidth for terminals)

▪︎ Create a suitable configuration (ConfigFromTerminal)

▪︎ Output the tree

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file in the repository root.
*/
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
