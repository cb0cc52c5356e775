package layout

import "testing"

func TestLayoutHboxSplitsColumns(t *testing.T) {
	root := NewHbox(
		NewLeaf(&SolidRect{Color: Black}),
		NewLeaf(&SolidRect{Color: White}),
		NewLeaf(&SolidRect{Color: Black}),
	)

	got := Collect(root, NewBbox(0, 0, 300, 100))
	want := []Bbox{
		{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100},
		{MinX: 100, MinY: 0, MaxX: 200, MaxY: 100},
		{MinX: 200, MinY: 0, MaxX: 300, MaxY: 100},
	}
	if len(got) != len(want) {
		t.Fatalf("emitted %d leaves, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Box != want[i] {
			t.Errorf("child %d: got %v, want %v", i, got[i].Box, want[i])
		}
		if got[i].Content != root.Children[i].Content {
			t.Errorf("child %d emitted out of order", i)
		}
	}
}

func TestLayoutVboxFirstChildAtBottom(t *testing.T) {
	first := NewLeaf(NewText("bottom"))
	second := NewLeaf(NewText("top"))
	root := NewVbox(first, second)

	got := Collect(root, NewBbox(0, 0, 100, 200))
	if len(got) != 2 {
		t.Fatalf("emitted %d leaves, want 2", len(got))
	}

	tests := []struct {
		name string
		p    Placed
		node *Node
		want Bbox
	}{
		{"first", got[0], first, Bbox{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}},
		{"second", got[1], second, Bbox{MinX: 0, MinY: 100, MaxX: 100, MaxY: 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.p.Content != tt.node.Content {
				t.Fatal("wrong content")
			}
			if tt.p.Box != tt.want {
				t.Errorf("box = %v, want %v", tt.p.Box, tt.want)
			}
		})
	}
}

func TestLayoutNested(t *testing.T) {
	// hbox{ rect, vbox{ a, b } } over 200x100 at an offset origin.
	a := NewLeaf(NewText("a"))
	b := NewLeaf(NewText("b"))
	root := NewHbox(NewLeaf(&SolidRect{}), NewVbox(a, b))

	got := Collect(root, NewBbox(10, 20, 210, 120))
	want := []Bbox{
		{MinX: 10, MinY: 20, MaxX: 110, MaxY: 120},
		{MinX: 110, MinY: 20, MaxX: 210, MaxY: 70},
		{MinX: 110, MinY: 70, MaxX: 210, MaxY: 120},
	}
	if len(got) != len(want) {
		t.Fatalf("emitted %d leaves, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Box != want[i] {
			t.Errorf("leaf %d: got %v, want %v", i, got[i].Box, want[i])
		}
	}
}

func TestLayoutEmptyContainers(t *testing.T) {
	tests := []struct {
		name string
		node *Node
	}{
		{"nil", nil},
		{"empty hbox", NewHbox()},
		{"empty vbox", NewVbox()},
		{"nested empty", NewHbox(NewVbox(), NewHbox())},
		{"leaf without content", &Node{Kind: KindLeaf}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collect(tt.node, NewBbox(0, 0, 10, 10)); len(got) != 0 {
				t.Errorf("emitted %d leaves, want 0", len(got))
			}
		})
	}
}

func TestLayoutChildrenStayInsideParent(t *testing.T) {
	root := NewVbox()
	for i := 0; i < 3; i++ {
		row := NewHbox()
		for j := 0; j < 7; j++ {
			row.Add(NewLeaf(&Image{}))
		}
		root.Add(row)
	}

	parent := NewBbox(0, 0, 640, 480)
	area := 0.0
	for _, p := range Collect(root, parent) {
		if !parent.ContainsBox(p.Box) {
			t.Errorf("%v leaves %v", p.Box, parent)
		}
		area += p.Box.Width() * p.Box.Height()
	}
	if diff := area - parent.Width()*parent.Height(); diff > 1e-6 || diff < -1e-6 {
		t.Errorf("leaves cover %v, parent is %v", area, parent.Width()*parent.Height())
	}
}

func TestBbox(t *testing.T) {
	b := NewBbox(30, 40, 10, 0)
	if b != (Bbox{MinX: 10, MinY: 0, MaxX: 30, MaxY: 40}) {
		t.Fatalf("NewBbox did not normalize: %v", b)
	}
	if b.Width() != 20 || b.Height() != 40 {
		t.Errorf("size = %vx%v", b.Width(), b.Height())
	}
	if b.Center() != Pt(20, 20) {
		t.Errorf("Center() = %v", b.Center())
	}
	if b.TopLeft() != Pt(10, 40) {
		t.Errorf("TopLeft() = %v", b.TopLeft())
	}

	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 0), true},
		{Pt(30, 40), true},
		{Pt(20, 20), true},
		{Pt(9.9, 20), false},
		{Pt(20, 40.1), false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestWalk(t *testing.T) {
	root := NewHbox(NewLeaf(&Image{}), NewVbox(NewLeaf(&Image{}), NewLeaf(&Image{})))

	var kinds []Kind
	var depths []int
	Walk(root, func(n *Node, depth int) bool {
		kinds = append(kinds, n.Kind)
		depths = append(depths, depth)
		return true
	})
	wantKinds := []Kind{KindHbox, KindLeaf, KindVbox, KindLeaf, KindLeaf}
	wantDepths := []int{0, 1, 1, 2, 2}
	for i := range wantKinds {
		if kinds[i] != wantKinds[i] || depths[i] != wantDepths[i] {
			t.Fatalf("visit %d = %v@%d, want %v@%d", i, kinds[i], depths[i], wantKinds[i], wantDepths[i])
		}
	}

	if n := CountLeaves(root); n != 3 {
		t.Errorf("CountLeaves() = %d, want 3", n)
	}

	visited := 0
	Walk(root, func(n *Node, _ int) bool {
		visited++
		return n.Kind != KindVbox
	})
	if visited != 3 {
		t.Errorf("pruned walk visited %d nodes, want 3", visited)
	}
}

func TestAddToLeafPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add on a leaf did not panic")
		}
	}()
	NewLeaf(&Image{}).Add(NewLeaf(&Image{}))
}
