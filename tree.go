package idtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// NodeID identifies a node within a Tree.
//
// IDs are indices into the tree-internal arena. They are stable for the
// lifetime of the tree, never reused, and totally ordered. A NodeID obtained
// from one tree must not be used with a different tree instance.
type NodeID int

// nilNode marks an absent link inside node records. Public APIs never return it.
const nilNode NodeID = -1

// rootNode is the permanent ID of a tree's root.
const rootNode NodeID = 0

// node is a single arena record: the five structural links plus the payload.
//
// firstChild and lastChild are either both set or both nilNode.
type node[T any] struct {
	parent      NodeID
	prevSibling NodeID
	nextSibling NodeID
	firstChild  NodeID
	lastChild   NodeID
	value       T
}

func newNode[T any](value T) node[T] {
	return node[T]{
		parent:      nilNode,
		prevSibling: nilNode,
		nextSibling: nilNode,
		firstChild:  nilNode,
		lastChild:   nilNode,
		value:       value,
	}
}

// Tree is an arena-backed ID-tree.
//
// A tree always contains at least a root node, located at the permanent ID 0.
// The zero value of Tree is not usable; create trees with New, WithCapacity or
// Build.
type Tree[T any] struct {
	nodes []node[T]
}

// New creates a tree with a single root node carrying the given value.
func New[T any](root T) *Tree[T] {
	return &Tree[T]{nodes: []node[T]{newNode(root)}}
}

// WithCapacity creates a tree like New, pre-reserving arena storage for
// capacity nodes. The capacity is a performance hint with no semantic effect.
func WithCapacity[T any](root T, capacity int) *Tree[T] {
	nodes := make([]node[T], 1, max(capacity, 1))
	nodes[0] = newNode(root)
	return &Tree[T]{nodes: nodes}
}

// Len returns the number of nodes in the arena, detached nodes included.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Clone returns a deep copy of the tree. Node IDs carry over unchanged.
func (t *Tree[T]) Clone() *Tree[T] {
	if t == nil {
		return nil
	}
	nodes := make([]node[T], len(t.nodes))
	copy(nodes, t.nodes)
	return &Tree[T]{nodes: nodes}
}

// Get returns a read view of the node with the given ID, if it exists.
func (t *Tree[T]) Get(id NodeID) (NodeRef[T], bool) {
	if !t.contains(id) {
		return NodeRef[T]{}, false
	}
	return t.ref(id), true
}

// Mut returns a write view of the node with the given ID, if it exists.
func (t *Tree[T]) Mut(id NodeID) (NodeMut[T], bool) {
	if !t.contains(id) {
		return NodeMut[T]{}, false
	}
	return t.mut(id), true
}

// Root returns a read view of the root node.
func (t *Tree[T]) Root() NodeRef[T] {
	return t.ref(rootNode)
}

// RootMut returns a write view of the root node.
func (t *Tree[T]) RootMut() NodeMut[T] {
	return t.mut(rootNode)
}

// Orphan allocates a new unattached node and returns a write view of it.
//
// The node belongs to the arena but has no parent until one of the insertion
// operations links it somewhere. Allocation is the only way the arena grows;
// nodes are never removed.
func (t *Tree[T]) Orphan(value T) NodeMut[T] {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, newNode(value))
	return t.mut(id)
}

func (t *Tree[T]) contains(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// node returns the arena record for id.
//
// Unchecked: callers must have established validity of id. The returned
// pointer is invalidated by the next Orphan call.
func (t *Tree[T]) node(id NodeID) *node[T] {
	return &t.nodes[id]
}

// ref returns a read view without bounds checking.
func (t *Tree[T]) ref(id NodeID) NodeRef[T] {
	return NodeRef[T]{tree: t, id: id}
}

// mut returns a write view without bounds checking.
func (t *Tree[T]) mut(id NodeID) NodeMut[T] {
	return NodeMut[T]{tree: t, id: id}
}
