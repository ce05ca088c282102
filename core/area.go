package core

// Area represents a rectangular region by origin and size
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions (minimum 1x1)
}

// Rect converts the area to its inclusive corner rectangle
func (a Area) Rect() Rect {
	return Rect{
		P0: Point{X: a.X, Y: a.Y},
		P1: Point{X: a.X + max(a.Width, 1) - 1, Y: a.Y + max(a.Height, 1) - 1},
	}
}

// Center returns the center point of the area
func (a Area) Center() Point {
	return Point{X: a.X + a.Width/2, Y: a.Y + a.Height/2}
}

// Inset shrinks the area by n cells on every side, never below 1x1
func (a Area) Inset(n int) Area {
	return Area{
		X:      a.X + n,
		Y:      a.Y + n,
		Width:  max(a.Width-2*n, 1),
		Height: max(a.Height-2*n, 1),
	}
}

// AreaOf returns the area covered by a rectangle
func AreaOf(r Rect) Area {
	b := r.Bounds()
	return Area{X: b.P0.X, Y: b.P0.Y, Width: b.P1.X - b.P0.X + 1, Height: b.P1.Y - b.P0.Y + 1}
}
