package layout

import "fmt"

// Point is a position in layout space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Bbox is an axis-aligned box in layout space.
// A valid Bbox has MinX <= MaxX and MinY <= MaxY.
type Bbox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewBbox returns the box spanning (x0, y0) to (x1, y1), reordering the
// corners so the result is valid.
func NewBbox(x0, y0, x1, y1 float64) Bbox {
	return Bbox{
		MinX: min(x0, x1),
		MinY: min(y0, y1),
		MaxX: max(x0, x1),
		MaxY: max(y0, y1),
	}
}

// Width returns MaxX - MinX.
func (b Bbox) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns MaxY - MinY.
func (b Bbox) Height() float64 {
	return b.MaxY - b.MinY
}

// Center returns the midpoint of the box.
func (b Bbox) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// TopLeft returns the corner with the smallest x and the largest y.
func (b Bbox) TopLeft() Point {
	return Point{X: b.MinX, Y: b.MaxY}
}

// Contains reports whether p lies inside the box, edges included.
func (b Bbox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// ContainsBox reports whether o lies entirely inside b.
func (b Bbox) ContainsBox(o Bbox) bool {
	return o.MinX >= b.MinX && o.MaxX <= b.MaxX && o.MinY >= b.MinY && o.MaxY <= b.MaxY
}

// IsEmpty reports whether the box has zero area.
func (b Bbox) IsEmpty() bool {
	return b.MinX >= b.MaxX || b.MinY >= b.MaxY
}

// String returns a string representation of the box.
func (b Bbox) String() string {
	return fmt.Sprintf("Bbox(%g,%g %g,%g)", b.MinX, b.MinY, b.MaxX, b.MaxY)
}
