package core

import (
	"math"
	"strconv"
)

// Point represents a 2D grid coordinate
type Point struct {
	X, Y int
}

// Add returns the componentwise sum p + o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the componentwise difference p - o
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Mul returns the componentwise product, used for per-axis scaling
func (p Point) Mul(o Point) Point {
	return Point{X: p.X * o.X, Y: p.Y * o.Y}
}

// Div returns the componentwise integer quotient
// A zero divisor component yields 0 for that axis instead of panicking
func (p Point) Div(o Point) Point {
	var r Point
	if o.X != 0 {
		r.X = p.X / o.X
	}
	if o.Y != 0 {
		r.Y = p.Y / o.Y
	}
	return r
}

// Scale multiplies both components by k
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Eq reports whether both components match
func (p Point) Eq(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// Midpoint returns the componentwise average of a and b (integer division)
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Distance returns the Euclidean distance between a and b rounded to the nearest integer
func Distance(a, b Point) int {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return int(math.Round(math.Sqrt(dx*dx + dy*dy)))
}

// Resolution is the fixed grid size of a display
type Resolution struct {
	Width, Height int
}

// Valid reports whether both dimensions are positive
func (r Resolution) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// Contains reports whether p lies within [0,Width) x [0,Height)
func (r Resolution) Contains(p Point) bool {
	return p.X >= 0 && p.X < r.Width && p.Y >= 0 && p.Y < r.Height
}

// Cells returns the number of cells in the grid
func (r Resolution) Cells() int {
	return r.Width * r.Height
}

// Index returns the row-major offset of p, caller must bounds-check first
func (r Resolution) Index(p Point) int {
	return p.Y*r.Width + p.X
}

// Bounds returns the rectangle covering the whole grid
func (r Resolution) Bounds() Rect {
	return Rect{P0: Point{}, P1: Point{X: r.Width - 1, Y: r.Height - 1}}
}

func (r Resolution) String() string {
	return strconv.Itoa(r.Width) + "x" + strconv.Itoa(r.Height)
}
