package idtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// NodeMut is a mutating cursor over a node of a tree.
//
// All structural operations return a new write view positioned on the node
// most relevant to the operation, usually the freshly inserted node, which
// allows building subtrees top-down by method chaining. A NodeMut is expected
// to be the only live view into its tree while mutations are in flight; this
// aliasing discipline is a caller contract, not enforced at runtime.
//
// Operations whose preconditions are violated (sibling insertion on an
// orphan, positional insertion beyond the child count, a NodeID that does not
// belong to this tree) panic with a message naming the precondition. These
// are programmer errors, not recoverable conditions.
//
// The ID-taking operations move existing nodes and can be misused to make a
// node a child of its own descendant. This is not validated and corrupts the
// tree; keeping source and destination disjoint is a caller responsibility.
type NodeMut[T any] struct {
	tree *Tree[T]
	id   NodeID
}

// ID returns the node's ID.
func (m NodeMut[T]) ID() NodeID {
	return m.id
}

// Tree returns the tree containing the node.
func (m NodeMut[T]) Tree() *Tree[T] {
	return m.tree
}

// Value returns a mutable reference to the node's payload.
//
// The returned pointer is invalidated by the next allocation on this tree.
func (m NodeMut[T]) Value() *T {
	return &m.tree.node(m.id).value
}

// Ref downgrades the write view to a read view of the same node.
func (m NodeMut[T]) Ref() NodeRef[T] {
	return m.tree.ref(m.id)
}

// Parent returns a write view of the parent of this node, if any.
func (m NodeMut[T]) Parent() (NodeMut[T], bool) {
	return m.follow(m.tree.node(m.id).parent)
}

// PrevSibling returns a write view of the previous sibling of this node, if any.
func (m NodeMut[T]) PrevSibling() (NodeMut[T], bool) {
	return m.follow(m.tree.node(m.id).prevSibling)
}

// NextSibling returns a write view of the next sibling of this node, if any.
func (m NodeMut[T]) NextSibling() (NodeMut[T], bool) {
	return m.follow(m.tree.node(m.id).nextSibling)
}

// FirstChild returns a write view of the first child of this node, if any.
func (m NodeMut[T]) FirstChild() (NodeMut[T], bool) {
	return m.follow(m.tree.node(m.id).firstChild)
}

// LastChild returns a write view of the last child of this node, if any.
func (m NodeMut[T]) LastChild() (NodeMut[T], bool) {
	return m.follow(m.tree.node(m.id).lastChild)
}

// HasSiblings reports whether this node has at least one sibling.
func (m NodeMut[T]) HasSiblings() bool {
	return m.Ref().HasSiblings()
}

// HasChildren reports whether this node has children.
func (m NodeMut[T]) HasChildren() bool {
	return m.Ref().HasChildren()
}

// Append allocates a new node and links it as the last child of this node.
func (m NodeMut[T]) Append(value T) NodeMut[T] {
	id := m.tree.Orphan(value).id
	return m.AppendID(id)
}

// Prepend allocates a new node and links it as the first child of this node.
func (m NodeMut[T]) Prepend(value T) NodeMut[T] {
	id := m.tree.Orphan(value).id
	return m.PrependID(id)
}

// Insert allocates a new node and links it at position index among this
// node's children, with 0 denoting the first position. Locating the insertion
// point takes linear time in index.
//
// Insert panics if index exceeds the current child count.
func (m NodeMut[T]) Insert(value T, index int) NodeMut[T] {
	id := m.tree.Orphan(value).id
	return m.InsertID(id, index)
}

// InsertBefore allocates a new node and links it as the immediate previous
// sibling of this node.
//
// InsertBefore panics if this node is an orphan: a sibling position requires
// an existing parent context.
func (m NodeMut[T]) InsertBefore(value T) NodeMut[T] {
	id := m.tree.Orphan(value).id
	return m.InsertIDBefore(id)
}

// InsertAfter allocates a new node and links it as the immediate next sibling
// of this node.
//
// InsertAfter panics if this node is an orphan.
func (m NodeMut[T]) InsertAfter(value T) NodeMut[T] {
	id := m.tree.Orphan(value).id
	return m.InsertIDAfter(id)
}

// Detach unlinks this node from its parent and siblings. The node's own
// subtree is unaffected and remains reachable from it.
//
// Detaching a node that is already an orphan, or the root, is a no-op.
// Detach returns the receiver for chaining.
func (m NodeMut[T]) Detach() NodeMut[T] {
	rec := m.tree.node(m.id)
	parentID := rec.parent
	if parentID == nilNode {
		return m
	}
	prevID := rec.prevSibling
	nextID := rec.nextSibling
	rec.parent = nilNode
	rec.prevSibling = nilNode
	rec.nextSibling = nilNode

	if prevID != nilNode {
		m.tree.node(prevID).nextSibling = nextID
	}
	if nextID != nilNode {
		m.tree.node(nextID).prevSibling = prevID
	}

	parent := m.tree.node(parentID)
	if parent.firstChild == parent.lastChild {
		parent.firstChild = nilNode
		parent.lastChild = nilNode
	} else if parent.firstChild == m.id {
		parent.firstChild = nextID
	} else if parent.lastChild == m.id {
		parent.lastChild = prevID
	}
	return m
}

// AppendID links an existing node as the last child of this node, detaching
// it from its current position first. Moving a subtree is thus a single call.
//
// AppendID panics if newChildID does not belong to this tree, or if it is the
// receiver's own ID.
func (m NodeMut[T]) AppendID(newChildID NodeID) NodeMut[T] {
	assert(m.tree.contains(newChildID), "append: no such node in this tree")
	assert(newChildID != m.id, "append: cannot append node as a child of itself")
	assert(newChildID != rootNode, "append: cannot move the root")
	m.tree.mut(newChildID).Detach()

	lastID := m.tree.node(m.id).lastChild
	child := m.tree.node(newChildID)
	child.parent = m.id
	child.prevSibling = lastID

	if lastID != nilNode {
		m.tree.node(lastID).nextSibling = newChildID
	}

	rec := m.tree.node(m.id)
	if rec.firstChild == nilNode {
		rec.firstChild = newChildID
	}
	rec.lastChild = newChildID
	return m.tree.mut(newChildID)
}

// PrependID links an existing node as the first child of this node, detaching
// it from its current position first.
//
// PrependID panics if newChildID does not belong to this tree, or if it is
// the receiver's own ID.
func (m NodeMut[T]) PrependID(newChildID NodeID) NodeMut[T] {
	assert(m.tree.contains(newChildID), "prepend: no such node in this tree")
	assert(newChildID != m.id, "prepend: cannot prepend node as a child of itself")
	assert(newChildID != rootNode, "prepend: cannot move the root")
	m.tree.mut(newChildID).Detach()

	firstID := m.tree.node(m.id).firstChild
	child := m.tree.node(newChildID)
	child.parent = m.id
	child.nextSibling = firstID

	if firstID != nilNode {
		m.tree.node(firstID).prevSibling = newChildID
	}

	rec := m.tree.node(m.id)
	if rec.lastChild == nilNode {
		rec.lastChild = newChildID
	}
	rec.firstChild = newChildID
	return m.tree.mut(newChildID)
}

// InsertID links an existing node at position index among this node's
// children, detaching it from its current position first. Locating the
// insertion point takes linear time in index.
//
// InsertID panics if newChildID does not belong to this tree or if index
// exceeds the current child count.
func (m NodeMut[T]) InsertID(newChildID NodeID, index int) NodeMut[T] {
	assert(index >= 0, "insert: negative child index")
	if index == 0 {
		return m.PrependID(newChildID)
	}
	preSibling, ok := m.Ref().childAt(index - 1)
	assert(ok, fmt.Sprintf("insert: no child found at index %d", index-1))
	m.tree.mut(preSibling.id).InsertIDAfter(newChildID)
	return m.tree.mut(newChildID)
}

// InsertIDBefore links an existing node as the immediate previous sibling of
// this node, detaching it from its current position first.
//
// InsertIDBefore panics if newSiblingID does not belong to this tree or if
// this node is an orphan.
func (m NodeMut[T]) InsertIDBefore(newSiblingID NodeID) NodeMut[T] {
	assert(m.tree.contains(newSiblingID), "insert before: no such node in this tree")
	assert(newSiblingID != m.id, "insert before: cannot insert node as a sibling of itself")
	assert(newSiblingID != rootNode, "insert before: cannot move the root")
	assert(m.tree.node(m.id).parent != nilNode, "insert before: node is an orphan")
	m.tree.mut(newSiblingID).Detach()

	rec := m.tree.node(m.id)
	parentID := rec.parent
	prevID := rec.prevSibling

	sibling := m.tree.node(newSiblingID)
	sibling.parent = parentID
	sibling.prevSibling = prevID
	sibling.nextSibling = m.id

	if prevID != nilNode {
		m.tree.node(prevID).nextSibling = newSiblingID
	}
	m.tree.node(m.id).prevSibling = newSiblingID

	parent := m.tree.node(parentID)
	if parent.firstChild == m.id {
		parent.firstChild = newSiblingID
	}
	return m.tree.mut(newSiblingID)
}

// InsertIDAfter links an existing node as the immediate next sibling of this
// node, detaching it from its current position first.
//
// InsertIDAfter panics if newSiblingID does not belong to this tree or if
// this node is an orphan.
func (m NodeMut[T]) InsertIDAfter(newSiblingID NodeID) NodeMut[T] {
	assert(m.tree.contains(newSiblingID), "insert after: no such node in this tree")
	assert(newSiblingID != m.id, "insert after: cannot insert node as a sibling of itself")
	assert(newSiblingID != rootNode, "insert after: cannot move the root")
	assert(m.tree.node(m.id).parent != nilNode, "insert after: node is an orphan")
	m.tree.mut(newSiblingID).Detach()

	rec := m.tree.node(m.id)
	parentID := rec.parent
	nextID := rec.nextSibling

	sibling := m.tree.node(newSiblingID)
	sibling.parent = parentID
	sibling.prevSibling = m.id
	sibling.nextSibling = nextID

	if nextID != nilNode {
		m.tree.node(nextID).prevSibling = newSiblingID
	}
	m.tree.node(m.id).nextSibling = newSiblingID

	parent := m.tree.node(parentID)
	if parent.lastChild == m.id {
		parent.lastChild = newSiblingID
	}
	return m.tree.mut(newSiblingID)
}

// ReparentFromIDAppend moves all children of the node fromID to become
// children of this node, appended after its existing children in order. The
// child chain is spliced in whole; only the parent links of the moved
// children are rewritten, making the operation linear in the number of moved
// children. No-op if fromID has no children.
//
// ReparentFromIDAppend panics if fromID does not belong to this tree.
func (m NodeMut[T]) ReparentFromIDAppend(fromID NodeID) NodeMut[T] {
	assert(m.tree.contains(fromID), "reparent: no such node in this tree")
	from := m.tree.node(fromID)
	firstID := from.firstChild
	lastID := from.lastChild
	if firstID == nilNode {
		return m
	}
	from.firstChild = nilNode
	from.lastChild = nilNode
	m.adoptChain(firstID)

	rec := m.tree.node(m.id)
	if rec.firstChild == nilNode {
		rec.firstChild = firstID
		rec.lastChild = lastID
		return m
	}
	oldLastID := rec.lastChild
	m.tree.node(oldLastID).nextSibling = firstID
	m.tree.node(firstID).prevSibling = oldLastID
	m.tree.node(m.id).lastChild = lastID
	return m
}

// ReparentFromIDPrepend moves all children of the node fromID to become
// children of this node, prepended before its existing children in order.
// No-op if fromID has no children.
//
// ReparentFromIDPrepend panics if fromID does not belong to this tree.
func (m NodeMut[T]) ReparentFromIDPrepend(fromID NodeID) NodeMut[T] {
	assert(m.tree.contains(fromID), "reparent: no such node in this tree")
	from := m.tree.node(fromID)
	firstID := from.firstChild
	lastID := from.lastChild
	if firstID == nilNode {
		return m
	}
	from.firstChild = nilNode
	from.lastChild = nilNode
	m.adoptChain(firstID)

	rec := m.tree.node(m.id)
	if rec.firstChild == nilNode {
		rec.firstChild = firstID
		rec.lastChild = lastID
		return m
	}
	oldFirstID := rec.firstChild
	m.tree.node(oldFirstID).prevSibling = lastID
	m.tree.node(lastID).nextSibling = oldFirstID
	m.tree.node(m.id).firstChild = firstID
	return m
}

// adoptChain rewrites the parent link of every node in the sibling chain
// starting at firstID to point at the receiver.
func (m NodeMut[T]) adoptChain(firstID NodeID) {
	for id := firstID; id != nilNode; id = m.tree.node(id).nextSibling {
		m.tree.node(id).parent = m.id
	}
}

func (m NodeMut[T]) follow(id NodeID) (NodeMut[T], bool) {
	if id == nilNode {
		return NodeMut[T]{}, false
	}
	return m.tree.mut(id), true
}
