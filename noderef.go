package idtree

// NodeRef is a read-only cursor over a node of a tree.
//
// NodeRefs are small, copyable values. They perform no mutation; all queries
// are constant time except IndexOfChild. A NodeRef must not be used to
// navigate a tree while a NodeMut into the same tree is actively mutating it.
type NodeRef[T any] struct {
	tree *Tree[T]
	id   NodeID
}

// ID returns the node's ID.
func (n NodeRef[T]) ID() NodeID {
	return n.id
}

// Tree returns the tree containing the node.
func (n NodeRef[T]) Tree() *Tree[T] {
	return n.tree
}

// Value returns the node's payload.
func (n NodeRef[T]) Value() T {
	return n.tree.node(n.id).value
}

// Eq reports whether two read views reference the same node in the same tree
// instance.
func (n NodeRef[T]) Eq(other NodeRef[T]) bool {
	return n.tree == other.tree && n.id == other.id
}

// Parent returns the parent of this node, if any.
func (n NodeRef[T]) Parent() (NodeRef[T], bool) {
	return n.follow(n.tree.node(n.id).parent)
}

// PrevSibling returns the previous sibling of this node, if any.
func (n NodeRef[T]) PrevSibling() (NodeRef[T], bool) {
	return n.follow(n.tree.node(n.id).prevSibling)
}

// NextSibling returns the next sibling of this node, if any.
func (n NodeRef[T]) NextSibling() (NodeRef[T], bool) {
	return n.follow(n.tree.node(n.id).nextSibling)
}

// FirstChild returns the first child of this node, if any.
func (n NodeRef[T]) FirstChild() (NodeRef[T], bool) {
	return n.follow(n.tree.node(n.id).firstChild)
}

// LastChild returns the last child of this node, if any.
func (n NodeRef[T]) LastChild() (NodeRef[T], bool) {
	return n.follow(n.tree.node(n.id).lastChild)
}

// HasSiblings reports whether this node has at least one sibling.
func (n NodeRef[T]) HasSiblings() bool {
	rec := n.tree.node(n.id)
	return rec.prevSibling != nilNode || rec.nextSibling != nilNode
}

// HasChildren reports whether this node has children.
func (n NodeRef[T]) HasChildren() bool {
	return n.tree.node(n.id).firstChild != nilNode
}

// IndexOfChild returns the zero-based position of other among this node's
// children, or false if other is not a child of this node.
//
// The child list is scanned linearly.
func (n NodeRef[T]) IndexOfChild(other NodeRef[T]) (int, bool) {
	i := 0
	for child := range n.Children() {
		if child.Eq(other) {
			return i, true
		}
		i++
	}
	return 0, false
}

// childAt returns the child at the zero-based index, scanning linearly.
func (n NodeRef[T]) childAt(index int) (NodeRef[T], bool) {
	child, ok := n.FirstChild()
	for ok && index > 0 {
		child, ok = child.NextSibling()
		index--
	}
	return child, ok
}

func (n NodeRef[T]) follow(id NodeID) (NodeRef[T], bool) {
	if id == nilNode {
		return NodeRef[T]{}, false
	}
	return n.tree.ref(id), true
}
