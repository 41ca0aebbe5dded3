// Package html ingests HTML markup into ID-trees.
//
// The DOM of a parsed document is a textbook case for the arena tree: nodes
// navigate in all four directions, get moved around by sanitizers, and are
// detached rather than destroyed. This package converts the node structure
// produced by golang.org/x/net/html into an idtree.Tree, preserving document
// order, and offers a few DOM-flavored queries on top.
package html

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
