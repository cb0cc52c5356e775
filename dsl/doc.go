// Package dsl parses the UI declaration language into layout trees.
//
// A document is a single root element:
//
//	hbox {
//	  text "Hello" "second line" wrap color #ffffff background #202020
//	  rect #0000ff
//	  vbox { text "bottom" text "top" }
//	  image
//	}
//
// Containers are hbox and vbox. Leaves are text (one or more string lines
// followed by attributes), rect (an optional fill color) and image. Comments
// start with // and run to the end of the line.
package dsl
