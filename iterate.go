package idtree

import "iter"

// Traversal iterators, built solely from the read-view navigation primitives.
// None of them mutate the tree, and all of them carry constant bookkeeping:
// the depth-first walks use parent links instead of an explicit stack.

// EdgeKind distinguishes the two events of an edge-based traversal.
type EdgeKind int8

const (
	// EdgeOpen is emitted when a depth-first walk enters a node.
	EdgeOpen EdgeKind = iota
	// EdgeClose is emitted when a depth-first walk leaves a node.
	EdgeClose
)

// Edge is a single event of an edge-based depth-first traversal.
type Edge[T any] struct {
	Kind EdgeKind
	Node NodeRef[T]
}

// NextSiblings returns an iterator over this node's following siblings in
// link order, excluding the node itself.
func (n NodeRef[T]) NextSiblings() iter.Seq[NodeRef[T]] {
	return func(yield func(NodeRef[T]) bool) {
		for cur, ok := n.NextSibling(); ok; cur, ok = cur.NextSibling() {
			if !yield(cur) {
				return
			}
		}
	}
}

// PrevSiblings returns an iterator over this node's preceding siblings in
// reverse link order, excluding the node itself.
func (n NodeRef[T]) PrevSiblings() iter.Seq[NodeRef[T]] {
	return func(yield func(NodeRef[T]) bool) {
		for cur, ok := n.PrevSibling(); ok; cur, ok = cur.PrevSibling() {
			if !yield(cur) {
				return
			}
		}
	}
}

// Ancestors returns an iterator from this node's parent up to and including
// the root (or up to the orphan heading the detached subtree).
func (n NodeRef[T]) Ancestors() iter.Seq[NodeRef[T]] {
	return func(yield func(NodeRef[T]) bool) {
		for cur, ok := n.Parent(); ok; cur, ok = cur.Parent() {
			if !yield(cur) {
				return
			}
		}
	}
}

// Children returns an iterator over this node's immediate children in order.
func (n NodeRef[T]) Children() iter.Seq[NodeRef[T]] {
	return func(yield func(NodeRef[T]) bool) {
		for cur, ok := n.FirstChild(); ok; cur, ok = cur.NextSibling() {
			if !yield(cur) {
				return
			}
		}
	}
}

// Descendants returns an iterator over the subtree rooted at this node in
// preorder, the node itself first.
func (n NodeRef[T]) Descendants() iter.Seq[NodeRef[T]] {
	return func(yield func(NodeRef[T]) bool) {
		cur := n
		for {
			if !yield(cur) {
				return
			}
			if first, ok := cur.FirstChild(); ok {
				cur = first
				continue
			}
			// Climb until a next sibling exists, stopping at the subtree root.
			for {
				if cur.Eq(n) {
					return
				}
				if next, ok := cur.NextSibling(); ok {
					cur = next
					break
				}
				parent, ok := cur.Parent()
				assert(ok, "descendants: walk escaped the subtree")
				cur = parent
			}
		}
	}
}

// Traverse returns an edge-based depth-first traversal of the subtree rooted
// at this node: an EdgeOpen event on entering each node and a matching
// EdgeClose event on leaving it. This enables structure-aware rendering
// (nested braces, markup) without recursion in the consumer.
func (n NodeRef[T]) Traverse() iter.Seq[Edge[T]] {
	return func(yield func(Edge[T]) bool) {
		cur := n
		closing := false
		for {
			if closing {
				if !yield(Edge[T]{Kind: EdgeClose, Node: cur}) {
					return
				}
				if cur.Eq(n) {
					return
				}
				if next, ok := cur.NextSibling(); ok {
					cur = next
					closing = false
					continue
				}
				parent, ok := cur.Parent()
				assert(ok, "traverse: walk escaped the subtree")
				cur = parent
				continue
			}
			if !yield(Edge[T]{Kind: EdgeOpen, Node: cur}) {
				return
			}
			if first, ok := cur.FirstChild(); ok {
				cur = first
				continue
			}
			closing = true
		}
	}
}

// Values returns an iterator over all node payloads in arena order, detached
// nodes included.
func (t *Tree[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range t.nodes {
			if !yield(t.nodes[i].value) {
				return
			}
		}
	}
}

// Nodes returns an iterator over read views of all nodes in arena order,
// detached nodes included.
func (t *Tree[T]) Nodes() iter.Seq[NodeRef[T]] {
	return func(yield func(NodeRef[T]) bool) {
		for i := range t.nodes {
			if !yield(t.ref(NodeID(i))) {
				return
			}
		}
	}
}
