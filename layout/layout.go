package layout

// Emitter receives every leaf's content together with the box it was given.
type Emitter func(c Content, box Bbox)

// Layout assigns boxes top-down starting from parent and emits each leaf.
//
// An Hbox gives child i the columns [MinX + i·w/n, MinX + (i+1)·w/n) over the
// full height. A Vbox gives child i the rows [MinY + i·h/n, MinY + (i+1)·h/n)
// over the full width, so its first child sits at the bottom. Containers with
// no children emit nothing.
func Layout(n *Node, parent Bbox, emit Emitter) {
	if n == nil {
		return
	}

	switch n.Kind {
	case KindLeaf:
		if n.Content != nil {
			emit(n.Content, parent)
		}

	case KindHbox:
		count := len(n.Children)
		if count == 0 {
			return
		}
		w := parent.Width() / float64(count)
		for i, child := range n.Children {
			box := parent
			box.MinX = parent.MinX + float64(i)*w
			box.MaxX = parent.MinX + float64(i+1)*w
			Layout(child, box, emit)
		}

	case KindVbox:
		count := len(n.Children)
		if count == 0 {
			return
		}
		h := parent.Height() / float64(count)
		for i, child := range n.Children {
			box := parent
			box.MinY = parent.MinY + float64(i)*h
			box.MaxY = parent.MinY + float64(i+1)*h
			Layout(child, box, emit)
		}
	}
}

// Collect runs Layout and returns the emitted leaves in order.
func Collect(n *Node, parent Bbox) []Placed {
	var out []Placed
	Layout(n, parent, func(c Content, box Bbox) {
		out = append(out, Placed{Content: c, Box: box})
	})
	return out
}

// Placed is a leaf's content with its assigned box.
type Placed struct {
	Content Content
	Box     Bbox
}
