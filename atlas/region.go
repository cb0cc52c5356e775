package atlas

import (
	"fmt"
	"image"
)

// Region represents a rectangular region in the atlas, in pixels.
type Region struct {
	// X is the left edge of the region.
	X int
	// Y is the top edge of the region.
	Y int
	// Width is the region width.
	Width int
	// Height is the region height.
	Height int
}

// Min returns the top-left corner of the region.
func (r Region) Min() image.Point {
	return image.Pt(r.X, r.Y)
}

// Max returns the exclusive bottom-right corner of the region.
func (r Region) Max() image.Point {
	return image.Pt(r.X+r.Width, r.Y+r.Height)
}

// Rect converts the region to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rectangle{Min: r.Min(), Max: r.Max()}
}

// Area returns Width*Height.
func (r Region) Area() int {
	return r.Width * r.Height
}

// IsValid returns true if the region has valid dimensions.
func (r Region) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}

// Overlaps reports whether r and o share at least one pixel.
func (r Region) Overlaps(o Region) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Inset shrinks the region by n pixels on every edge.
func (r Region) Inset(n int) Region {
	return Region{X: r.X + n, Y: r.Y + n, Width: r.Width - 2*n, Height: r.Height - 2*n}
}

// String returns a string representation of the region.
func (r Region) String() string {
	return fmt.Sprintf("Region(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
