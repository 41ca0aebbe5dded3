package idtree

import (
	"fmt"
	"io"
)

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
//
// Every arena slot becomes a graph node, labeled with its ID and payload.
// Parent-child links are drawn as solid edges in child order, sibling links
// as dashed edges. Detached nodes show up as roots of disconnected subgraphs.
func Tree2Dot[T any](tree *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	for n := range tree.Nodes() {
		label := fmt.Sprintf("#%d\\n%v", n.ID(), n.Value())
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", n.ID(), label, nodeDotStyles(n))
		for child := range n.Children() {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", n.ID(), child.ID())
		}
		if next, ok := n.NextSibling(); ok {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [style=dashed,constraint=false];\n", n.ID(), next.ID())
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles[T any](n NodeRef[T]) string {
	if n.ID() == rootNode {
		return "style=filled,fillcolor=lightblue,shape=box"
	}
	if _, ok := n.Parent(); !ok {
		// orphan
		return "style=dotted,shape=ellipse"
	}
	return "shape=ellipse"
}
