package idtree

// Declarative tree construction.
//
// Tree literals nest node values the way the final tree nests nodes:
//
//	tree := idtree.Build("root",
//		idtree.N("child a"),
//		idtree.N("child b",
//			idtree.N("grandchild a"),
//			idtree.N("grandchild b"),
//		),
//		idtree.N("child c"),
//	)
//
// Literals are a thin convenience layer: building desugars to nested Append
// calls on write views and has no semantics of its own.

// Lit is a subtree literal: a node value plus its child literals.
type Lit[T any] struct {
	value    T
	children []Lit[T]
}

// N creates a subtree literal for a node with the given value and children.
func N[T any](value T, children ...Lit[T]) Lit[T] {
	return Lit[T]{value: value, children: children}
}

// Build creates a tree from a root value and child literals.
func Build[T any](root T, children ...Lit[T]) *Tree[T] {
	tree := New(root)
	node := tree.RootMut()
	for _, child := range children {
		buildAt(node, child)
	}
	tracer().Debugf("tree builder: built tree with %d nodes", tree.Len())
	return tree
}

func buildAt[T any](parent NodeMut[T], lit Lit[T]) {
	node := parent.Append(lit.value)
	for _, child := range lit.children {
		buildAt(node, child)
	}
}
