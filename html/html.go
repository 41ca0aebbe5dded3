package html

import (
	"io"
	"strings"

	"github.com/npillmayer/idtree"
	"golang.org/x/net/html"
)

// Elem is the payload of tree nodes ingested from HTML.
type Elem struct {
	// Type is the HTML node type (element, text, comment, …).
	Type html.NodeType
	// Data holds the tag name for elements and the text for text nodes.
	Data string
	// Attr holds the element's attributes, in source order.
	Attr []html.Attribute
}

// FromHTML parses an HTML fragment and returns its node structure as a tree.
// The tree's root carries a synthetic document node; the fragment's top-level
// nodes become its children.
func FromHTML(input io.Reader) (*idtree.Tree[Elem], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	tree := idtree.New(Elem{Type: html.DocumentNode})
	root := tree.RootMut()
	for _, n := range nodes {
		collect(n, root)
	}
	tracer().Debugf("html: ingested fragment with %d tree nodes", tree.Len())
	return tree, nil
}

// FromNode converts a parsed HTML element node and all its descendants into
// a tree. The element itself becomes the tree's root.
func FromNode(n *html.Node) (*idtree.Tree[Elem], error) {
	if n == nil {
		return nil, idtree.ErrIllegalArguments
	}
	tree := idtree.New(Elem{Type: n.Type, Data: n.Data, Attr: n.Attr})
	node := tree.RootMut()
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c, node)
	}
	return tree, nil
}

func collect(n *html.Node, at idtree.NodeMut[Elem]) {
	node := at.Append(Elem{Type: n.Type, Data: n.Data, Attr: n.Attr})
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c, node)
	}
}

// InnerText collects the textual content of a node and all its descendants.
// It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendants).
func InnerText(node idtree.NodeRef[Elem]) string {
	var sb strings.Builder
	for n := range node.Descendants() {
		if n.Value().Type == html.TextNode {
			sb.WriteString(n.Value().Data)
		}
	}
	return sb.String()
}

// FirstElement returns the first element node with the given tag in a
// preorder walk of the subtree rooted at node.
func FirstElement(node idtree.NodeRef[Elem], tag string) (idtree.NodeRef[Elem], bool) {
	for n := range node.Descendants() {
		v := n.Value()
		if v.Type == html.ElementNode && v.Data == tag {
			return n, true
		}
	}
	return idtree.NodeRef[Elem]{}, false
}
