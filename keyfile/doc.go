/*
Package keyfile loads integer keys from text files into binary search trees.

A key file holds decimal integers separated by white space, any number per
line. Lines starting with '#' are comments. Reading is done in the background;
every parsed key is broadcast to all subscribers of a Loader, which allows
clients to watch a large file being loaded. Load is the simple, synchronous
way to get a tree from a file.

Malformed tokens do not stop loading. They are reported as events carrying an
error, and Load returns the first of them together with the tree built from
the valid keys.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file in the repository root.
*/
package keyfile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
