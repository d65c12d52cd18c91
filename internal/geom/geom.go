package geom

// Point is a terminal cell position, zero-based from the top-left corner
type Point struct {
	X int
	Y int
}

// Size is a width/height pair in cells
type Size struct {
	Width  int
	Height int
}

// Rect is an axis-aligned box of cells
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Left returns the x coordinate of the left edge
func (r Rect) Left() int { return r.X }

// Right returns the x coordinate one past the right edge
func (r Rect) Right() int { return r.X + r.Width }

// Top returns the y coordinate of the top edge
func (r Rect) Top() int { return r.Y }

// Bottom returns the y coordinate one past the bottom edge
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rect covers no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside r
func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Translate returns r moved by dx, dy
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Union returns the smallest rect covering both r and o.
// An empty rect does not contribute.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0 := min(r.X, o.X)
	y0 := min(r.Y, o.Y)
	x1 := max(r.Right(), o.Right())
	y1 := max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
