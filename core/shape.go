package core

// Shapes are plain values; bounding boxes are derived on every call, never cached

// Line is a segment between two points
type Line struct {
	P0, P1 Point
}

// Rect is an axis-aligned rectangle given by two opposite corners in any order
type Rect struct {
	P0, P1 Point
}

// Triangle is defined by three vertices
type Triangle struct {
	P0, P1, P2 Point
}

// Quad is defined by four vertices in caller-supplied winding order
// Winding and convexity are not validated
type Quad struct {
	P0, P1, P2, P3 Point
}

// Circle is defined by its center and radius in cells
type Circle struct {
	Center Point
	Radius int
}

// boundsOf returns the smallest normalized rect covering all points
func boundsOf(first Point, rest ...Point) Rect {
	lo, hi := first, first
	for _, p := range rest {
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	return Rect{P0: lo, P1: hi}
}

// Bounds returns the bounding box of the segment
func (l Line) Bounds() Rect {
	return boundsOf(l.P0, l.P1)
}

// Bounds returns the normalized rectangle, P0 is the min corner and P1 the max corner
func (r Rect) Bounds() Rect {
	return boundsOf(r.P0, r.P1)
}

// Min returns the top-left corner
func (r Rect) Min() Point {
	return r.Bounds().P0
}

// Max returns the bottom-right corner
func (r Rect) Max() Point {
	return r.Bounds().P1
}

// Width returns the inclusive column count
func (r Rect) Width() int {
	b := r.Bounds()
	return b.P1.X - b.P0.X + 1
}

// Height returns the inclusive row count
func (r Rect) Height() int {
	b := r.Bounds()
	return b.P1.Y - b.P0.Y + 1
}

// Contains reports whether p lies on or inside the rectangle
func (r Rect) Contains(p Point) bool {
	b := r.Bounds()
	return p.X >= b.P0.X && p.X <= b.P1.X && p.Y >= b.P0.Y && p.Y <= b.P1.Y
}

// Corners returns the four normalized corners clockwise from the min corner:
// (minX,minY), (maxX,minY), (maxX,maxY), (minX,maxY)
func (r Rect) Corners() [4]Point {
	b := r.Bounds()
	return [4]Point{
		{X: b.P0.X, Y: b.P0.Y},
		{X: b.P1.X, Y: b.P0.Y},
		{X: b.P1.X, Y: b.P1.Y},
		{X: b.P0.X, Y: b.P1.Y},
	}
}

// Bounds returns the bounding box of the three vertices
func (t Triangle) Bounds() Rect {
	return boundsOf(t.P0, t.P1, t.P2)
}

// Edges returns the closed loop p0->p1->p2->p0
func (t Triangle) Edges() [3]Line {
	return [3]Line{{t.P0, t.P1}, {t.P1, t.P2}, {t.P2, t.P0}}
}

// Bounds returns the bounding box of the four vertices
func (q Quad) Bounds() Rect {
	return boundsOf(q.P0, q.P1, q.P2, q.P3)
}

// Edges returns the closed loop p0->p1->p2->p3->p0
func (q Quad) Edges() [4]Line {
	return [4]Line{{q.P0, q.P1}, {q.P1, q.P2}, {q.P2, q.P3}, {q.P3, q.P0}}
}

// Split returns the two fill triangles (p0,p1,p2) and (p2,p3,p0)
func (q Quad) Split() (Triangle, Triangle) {
	return Triangle{q.P0, q.P1, q.P2}, Triangle{q.P2, q.P3, q.P0}
}

// Bounds returns center ± radius on both axes
func (c Circle) Bounds() Rect {
	r := Point{X: c.Radius, Y: c.Radius}
	return boundsOf(c.Center.Sub(r), c.Center.Add(r))
}
