/*
Package bstree implements an unbalanced binary search tree over unique,
ordered keys.

A tree is either built in one go from a slice of keys, which yields a tree of
minimal height, or grown and shrunk one key at a time with Insert and Delete.
Insert and Delete do not re-balance, so a tree may degenerate towards a
linked list. Clients may check for this with IsBalanced and restore a tree of
minimal height with Rebalance.

	tree := bstree.Build([]int{7, 3, 8, 5, 4, 1, 6, 2, 18})
	tree.Insert(19)
	tree.Delete(5)
	for key := range tree.Keys() {
		fmt.Println(key)
	}

Duplicate keys are silently ignored, as is deleting a key which is not
present. Nodes do not link to their parents; a node's depth is computed by
re-descending from the root.

Trees are not safe for concurrent mutation. Concurrent readers are fine as long
as no mutation is in flight.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package bstree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the bstree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrInvalidArgument is flagged whenever function parameters are unusable,
// e.g. a traversal without a visitor.
const ErrInvalidArgument = TreeError("bstree: invalid argument")

// ErrNotFound is flagged if a node or key is not part of a tree.
// It is never used for empty subtrees, which have a height of -1.
const ErrNotFound = TreeError("bstree: not found")

// ErrInvariantViolated is returned by Check if a tree is in an inconsistent state.
const ErrInvariantViolated = TreeError("bstree: invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
