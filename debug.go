package idtree

import (
	"fmt"
	"strings"
)

// String renders the tree in a nested, brace-delimited textual form,
//
//	a => { b, c => { d, e } }
//
// driven by the edge-based traversal. This is a diagnostic convenience, not a
// parseable format.
func (t *Tree[T]) String() string {
	var tokens []string
	for edge := range t.Root().Traverse() {
		node := edge.Node
		switch {
		case edge.Kind == EdgeOpen && node.HasChildren():
			tokens = append(tokens, fmt.Sprintf("%v => {", node.Value()))
		case edge.Kind == EdgeOpen && node.hasNextSibling():
			tokens = append(tokens, fmt.Sprintf("%v,", node.Value()))
		case edge.Kind == EdgeOpen:
			tokens = append(tokens, fmt.Sprint(node.Value()))
		case edge.Kind == EdgeClose && node.HasChildren():
			if node.hasNextSibling() {
				tokens = append(tokens, "},")
			} else {
				tokens = append(tokens, "}")
			}
		}
	}
	return strings.Join(tokens, " ")
}

func (n NodeRef[T]) hasNextSibling() bool {
	return n.tree.node(n.id).nextSibling != nilNode
}
