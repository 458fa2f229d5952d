// Package layout computes the geometry of a horizontally paged item grid.
//
// All values are terminal cells. A PageGrid is an immutable snapshot of one
// layout pass: changing the cell size, the viewport or the item count means
// building a new PageGrid.
package layout

import "fmt"

// Size is a width/height pair.
type Size struct {
	Width  int
	Height int
}

// String implements fmt.Stringer.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Point is a position in content coordinates.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned rectangle. The right and bottom edges are exclusive.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// MaxX returns the exclusive right edge.
func (r Rect) MaxX() int { return r.X + r.Width }

// MaxY returns the exclusive bottom edge.
func (r Rect) MaxY() int { return r.Y + r.Height }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Intersects reports whether r and o share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Contains reports whether o lies fully inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.MaxX() <= r.MaxX() && o.MaxY() <= r.MaxY()
}

// ContainsPoint reports whether p lies inside r.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}
