package idtree

import "fmt"

// Check validates the structural invariants of the tree.
//
// This checker is intentionally strict and meant for tests: every public
// operation must leave the tree in a state where Check returns nil. Validated
// are the root shape, link consistency, sibling symmetry, child-chain bounds
// and the orphan field shape. All errors wrap ErrInvalidTree.
func (t *Tree[T]) Check() error {
	if t == nil || len(t.nodes) == 0 {
		return fmt.Errorf("%w: tree must contain a root node", ErrInvalidTree)
	}
	root := &t.nodes[rootNode]
	if root.parent != nilNode || root.prevSibling != nilNode || root.nextSibling != nilNode {
		return fmt.Errorf("%w: root must not have a parent or siblings", ErrInvalidTree)
	}
	for i := range t.nodes {
		if err := t.checkNode(NodeID(i)); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree[T]) checkNode(id NodeID) error {
	n := &t.nodes[id]
	for _, link := range []NodeID{n.parent, n.prevSibling, n.nextSibling, n.firstChild, n.lastChild} {
		if link != nilNode && !t.contains(link) {
			return fmt.Errorf("%w: node %d links to out-of-range node %d", ErrInvalidTree, id, link)
		}
	}
	if (n.firstChild == nilNode) != (n.lastChild == nilNode) {
		return fmt.Errorf("%w: node %d has inconsistent child bounds", ErrInvalidTree, id)
	}
	if n.nextSibling != nilNode && t.nodes[n.nextSibling].prevSibling != id {
		return fmt.Errorf("%w: sibling links of nodes %d and %d are asymmetric", ErrInvalidTree, id, n.nextSibling)
	}
	if n.prevSibling != nilNode && t.nodes[n.prevSibling].nextSibling != id {
		return fmt.Errorf("%w: sibling links of nodes %d and %d are asymmetric", ErrInvalidTree, n.prevSibling, id)
	}
	if n.parent == nilNode && (n.prevSibling != nilNode || n.nextSibling != nilNode) {
		return fmt.Errorf("%w: unparented node %d has siblings", ErrInvalidTree, id)
	}
	if n.firstChild != nilNode {
		if err := t.checkChildChain(id); err != nil {
			return err
		}
	}
	if n.parent != nilNode {
		if err := t.checkMembership(id); err != nil {
			return err
		}
	}
	return nil
}

// checkChildChain walks the sibling chain bounded by id's child pointers.
//
// The step count is capped by the arena size so a cyclic chain reports an
// error instead of looping forever.
func (t *Tree[T]) checkChildChain(id NodeID) error {
	n := &t.nodes[id]
	if t.nodes[n.firstChild].prevSibling != nilNode {
		return fmt.Errorf("%w: first child of node %d has a previous sibling", ErrInvalidTree, id)
	}
	if t.nodes[n.lastChild].nextSibling != nilNode {
		return fmt.Errorf("%w: last child of node %d has a next sibling", ErrInvalidTree, id)
	}
	steps := 0
	cur := n.firstChild
	for {
		if steps > len(t.nodes) {
			return fmt.Errorf("%w: child chain of node %d does not terminate", ErrInvalidTree, id)
		}
		child := &t.nodes[cur]
		if child.parent != id {
			return fmt.Errorf("%w: child %d of node %d has parent %d", ErrInvalidTree, cur, id, child.parent)
		}
		if cur == n.lastChild {
			if child.nextSibling != nilNode {
				return fmt.Errorf("%w: child chain of node %d continues past last child", ErrInvalidTree, id)
			}
			return nil
		}
		if child.nextSibling == nilNode {
			return fmt.Errorf("%w: child chain of node %d ends before last child", ErrInvalidTree, id)
		}
		cur = child.nextSibling
		steps++
	}
}

// checkMembership verifies that an attached node occurs in its parent's child
// chain exactly once.
func (t *Tree[T]) checkMembership(id NodeID) error {
	parent := &t.nodes[t.nodes[id].parent]
	occurrences := 0
	steps := 0
	for cur := parent.firstChild; cur != nilNode; cur = t.nodes[cur].nextSibling {
		if steps > len(t.nodes) {
			break
		}
		if cur == id {
			occurrences++
		}
		steps++
	}
	if occurrences != 1 {
		return fmt.Errorf("%w: node %d occurs %d times in the child chain of its parent %d",
			ErrInvalidTree, id, occurrences, t.nodes[id].parent)
	}
	return nil
}
