// Package layout implements the box model used to place UI content.
//
// A layout tree is built from three node kinds: Hbox and Vbox containers that
// split their box evenly among their children, and Leaf nodes that carry
// drawable Content. Layout walks the tree top-down and hands every leaf, with
// the box it was assigned, to an Emitter.
//
// # Coordinate System
//
// Layout space is y-up: x grows to the right, y grows upward, and a Bbox's
// MaxY is its top edge. A Vbox gives its first child the bottom row and its
// last child the top row.
//
// Nothing is cached between passes; every call to Layout recomputes all boxes
// from the root.
package layout
