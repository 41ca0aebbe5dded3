// Package display renders ID-trees for human consumption.
//
// Output targets the console: trees are printed as indented outlines with a
// per-depth color palette, in the spirit of directory listings produced by
// tree(1). Rendering is driven entirely by the edge-based traversal of the
// tree and never mutates it.
package display
