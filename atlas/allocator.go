package atlas

import (
	"slices"
	"sort"
)

// span is a free horizontal interval on a shelf.
type span struct {
	x     int
	width int
}

// shelf represents a horizontal strip in the atlas.
type shelf struct {
	y      int    // Y position of shelf top
	height int    // Height of the shelf
	free   []span // Free intervals, sorted by x and coalesced
	live   int    // Number of live regions on this shelf
}

func newShelf(y, height, width int) *shelf {
	return &shelf{
		y:      y,
		height: height,
		free:   []span{{x: 0, width: width}},
	}
}

func (s *shelf) empty() bool {
	return s.live == 0
}

// fit returns the index of the first free span at least w wide, or -1.
func (s *shelf) fit(w int) int {
	for i, sp := range s.free {
		if sp.width >= w {
			return i
		}
	}
	return -1
}

// take carves w pixels from the start of span i and returns its x.
func (s *shelf) take(i, w int) int {
	sp := &s.free[i]
	x := sp.x
	sp.x += w
	sp.width -= w
	if sp.width == 0 {
		s.free = slices.Delete(s.free, i, i+1)
	}
	s.live++
	return x
}

// release returns an interval to the shelf, merging it with its neighbours.
func (s *shelf) release(sp span) {
	i := sort.Search(len(s.free), func(k int) bool { return s.free[k].x > sp.x })
	s.free = slices.Insert(s.free, i, sp)

	if i+1 < len(s.free) && s.free[i].x+s.free[i].width == s.free[i+1].x {
		s.free[i].width += s.free[i+1].width
		s.free = slices.Delete(s.free, i+1, i+2)
	}
	if i > 0 && s.free[i-1].x+s.free[i-1].width == s.free[i].x {
		s.free[i-1].width += s.free[i].width
		s.free = slices.Delete(s.free, i, i+1)
	}
	s.live--
}

// ShelfAllocator packs rectangles into horizontal shelves and supports
// freeing them again.
//
// Shelves are stacked from the top of the atlas down. Each shelf keeps a list
// of free horizontal spans, so a freed region can be reused by any item of
// the same or smaller size. When a shelf becomes empty it is merged with its
// empty neighbours, and an empty shelf at the bottom gives its height back to
// the unused area. Fragmentation is therefore bounded by the shelves that
// still hold live regions.
//
// The invariants kept between calls:
//   - shelves tile [0, bottom) without gaps, sorted by y
//   - no two adjacent shelves are both empty
//   - the last shelf is never empty
type ShelfAllocator struct {
	width   int
	height  int
	shelves []*shelf
	live    map[Region]*shelf

	usedArea int
}

// NewShelfAllocator creates a new allocator for the given dimensions.
func NewShelfAllocator(width, height int) *ShelfAllocator {
	return &ShelfAllocator{
		width:   width,
		height:  height,
		shelves: make([]*shelf, 0, 16),
		live:    make(map[Region]*shelf),
	}
}

// Allocate finds space for a rectangle of the given size.
// Returns the region and true, or false if nothing fits right now.
//
// The algorithm:
//  1. Pick the lowest shelf that is tall enough and has a wide enough span
//  2. Skip a partly used shelf that is much taller than the item when a
//     tighter shelf can still be opened at the bottom
//  3. Otherwise open a new shelf at the bottom
//  4. An empty shelf taller than the item is split in two
func (a *ShelfAllocator) Allocate(w, h int) (Region, bool) {
	if w <= 0 || h <= 0 || !a.Fits(w, h) {
		return Region{}, false
	}

	best, bestSpan := -1, -1
	for i, s := range a.shelves {
		if s.height < h {
			continue
		}
		j := s.fit(w)
		if j < 0 {
			continue
		}
		if best < 0 || s.height < a.shelves[best].height {
			best, bestSpan = i, j
		}
	}

	bottom := a.bottom()
	if best >= 0 {
		s := a.shelves[best]
		if !s.empty() && s.height > h+h/2 && bottom+h <= a.height {
			best = -1
		}
	}

	if best < 0 {
		if bottom+h > a.height {
			return Region{}, false
		}
		a.shelves = append(a.shelves, newShelf(bottom, h, a.width))
		best, bestSpan = len(a.shelves)-1, 0
	}

	s := a.shelves[best]
	if s.empty() && s.height > h {
		a.split(best, h)
	}

	r := Region{X: s.take(bestSpan, w), Y: s.y, Width: w, Height: h}
	a.live[r] = s
	a.usedArea += r.Area()
	return r, true
}

// Deallocate returns a region to the free pool.
func (a *ShelfAllocator) Deallocate(r Region) error {
	s, ok := a.live[r]
	if !ok {
		return ErrRegionNotAllocated
	}
	delete(a.live, r)
	a.usedArea -= r.Area()

	s.release(span{x: r.X, width: r.Width})
	if s.empty() {
		a.mergeEmpty(slices.Index(a.shelves, s))
	}
	return nil
}

// split cuts empty shelf i down to height h and inserts the remainder below.
func (a *ShelfAllocator) split(i, h int) {
	s := a.shelves[i]
	rest := newShelf(s.y+h, s.height-h, a.width)
	s.height = h
	a.shelves = slices.Insert(a.shelves, i+1, rest)
}

// mergeEmpty joins empty shelf i with empty neighbours and trims the bottom.
func (a *ShelfAllocator) mergeEmpty(i int) {
	s := a.shelves[i]
	if i+1 < len(a.shelves) && a.shelves[i+1].empty() {
		s.height += a.shelves[i+1].height
		a.shelves = slices.Delete(a.shelves, i+1, i+2)
	}
	if i > 0 && a.shelves[i-1].empty() {
		a.shelves[i-1].height += s.height
		a.shelves = slices.Delete(a.shelves, i, i+1)
		i--
	}
	if i == len(a.shelves)-1 {
		a.shelves = a.shelves[:i]
	}
}

// bottom returns the y where the next new shelf would start.
func (a *ShelfAllocator) bottom() int {
	if len(a.shelves) == 0 {
		return 0
	}
	last := a.shelves[len(a.shelves)-1]
	return last.y + last.height
}

// Fits reports whether a w×h item could fit in an empty allocator.
func (a *ShelfAllocator) Fits(w, h int) bool {
	return w <= a.width && h <= a.height
}

// Reset clears all allocations, allowing the allocator to be reused.
func (a *ShelfAllocator) Reset() {
	a.shelves = a.shelves[:0]
	clear(a.live)
	a.usedArea = 0
}

// Size returns the allocator bounds.
func (a *ShelfAllocator) Size() (width, height int) {
	return a.width, a.height
}

// UsedArea returns the total area of live regions.
func (a *ShelfAllocator) UsedArea() int {
	return a.usedArea
}

// Utilization returns the fraction of area used (0.0 to 1.0).
func (a *ShelfAllocator) Utilization() float64 {
	total := a.width * a.height
	if total == 0 {
		return 0
	}
	return float64(a.usedArea) / float64(total)
}

// AllocCount returns the number of live regions.
func (a *ShelfAllocator) AllocCount() int {
	return len(a.live)
}

// ShelfCount returns the number of shelves currently in use.
func (a *ShelfAllocator) ShelfCount() int {
	return len(a.shelves)
}
