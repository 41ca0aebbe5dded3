/*
Package idtree provides a mutable, ordered tree container backed by a growable
arena of node records.

ID-Trees

Trees in this package are "ID-trees": all nodes of a tree live in a single
growable slice, and every structural link (parent, siblings, children) is an
integer index into that slice rather than a pointer. Node IDs are stable for
the lifetime of the tree and are never reused, which rules out dangling
references and ownership cycles by construction. This makes ID-trees a good
fit for document-like structures (an HTML DOM, an outline, a scene graph)
where nodes are created, moved around and detached frequently, but rarely
destroyed one by one.

Behavior:

  - Trees always contain at least a root node.
  - Nodes have zero or more ordered children and at most one parent.
  - Nodes can be detached (orphaned) but not removed; detached nodes keep
    their subtree and stay allocated for the lifetime of the tree.
  - Parent, previous sibling, next sibling, first child and last child of a
    node are accessible in constant time.
  - All mutating operations perform in constant time, except positional
    insertion, which is linear in the target index.
  - All iterators perform in linear time and carry constant bookkeeping.

Navigation and mutation go through lightweight cursors: NodeRef is a read-only
view of a node, NodeMut a mutating one. Go's type system cannot enforce an
exclusive-borrow discipline, so by convention a NodeMut should be the only
live view into its tree while mutations are in flight; read views and
iterators taken before a mutation must not be relied upon afterwards.

Clients build trees either imperatively,

	tree := idtree.New("a")
	root := tree.RootMut()
	root.Append("b")
	c := root.Append("c")
	c.Append("d")
	c.Append("e")

or declaratively with tree literals:

	tree := idtree.Build("a",
		idtree.N("b"),
		idtree.N("c", idtree.N("d"), idtree.N("e")),
	)

_________________________________________________________________________

BSD 3-Clause License

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
package idtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// assert panics with msg if condition does not hold.
//
// Assertion failures signal caller bugs (violated operation preconditions) or
// internal invariant breakage, never recoverable runtime conditions.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
