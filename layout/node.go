package layout

// Kind identifies the variant of a Node.
type Kind uint8

const (
	// KindLeaf is a node that draws Content.
	KindLeaf Kind = iota
	// KindHbox splits its box into equal-width columns.
	KindHbox
	// KindVbox splits its box into equal-height rows.
	KindVbox
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "Leaf"
	case KindHbox:
		return "Hbox"
	case KindVbox:
		return "Vbox"
	default:
		return "Unknown"
	}
}

// Node is a layout tree node: a Leaf with Content, or an Hbox/Vbox with
// children. Children are only meaningful on containers and Content only on
// leaves.
type Node struct {
	Kind     Kind
	Content  Content
	Children []*Node
}

// NewLeaf creates a leaf node drawing c.
func NewLeaf(c Content) *Node {
	return &Node{Kind: KindLeaf, Content: c}
}

// NewHbox creates a horizontal container.
func NewHbox(children ...*Node) *Node {
	return &Node{Kind: KindHbox, Children: children}
}

// NewVbox creates a vertical container.
func NewVbox(children ...*Node) *Node {
	return &Node{Kind: KindVbox, Children: children}
}

// Add appends child to a container and returns n for chaining.
// Adding to a leaf panics.
func (n *Node) Add(child *Node) *Node {
	if n.Kind == KindLeaf {
		panic("layout: Add on a leaf node")
	}
	n.Children = append(n.Children, child)
	return n
}

// IsContainer reports whether n is an Hbox or a Vbox.
func (n *Node) IsContainer() bool {
	return n.Kind == KindHbox || n.Kind == KindVbox
}

// Walk visits n and its descendants depth-first, parents before children.
// depth is 0 for n. Returning false from fn skips the node's children.
func Walk(n *Node, fn func(n *Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}

// CountLeaves returns the number of leaves under n.
func CountLeaves(n *Node) int {
	count := 0
	Walk(n, func(n *Node, _ int) bool {
		if n.Kind == KindLeaf {
			count++
		}
		return true
	})
	return count
}
