package render

import (
	"github.com/lixenwraith/glyphgrid/core"
	"github.com/lixenwraith/glyphgrid/vmath"
)

// Pure stepping routines. Each visits cells in emission order and never clips;
// clipping happens when the visited cell is submitted

// WalkLine visits a Bresenham path from l.P0 to l.P1
// Both endpoints are visited first, then every intermediate cell in walk order,
// so a line of n distinct cells yields exactly n visits (a single-cell line yields 2)
func WalkLine(l core.Line, visit func(core.Point)) {
	p0, p1 := l.P0, l.P1
	visit(p0)
	visit(p1)

	dx := vmath.Abs(p1.X - p0.X)
	dy := vmath.Abs(p1.Y - p0.Y)
	sx := vmath.Sign(p0.X, p1.X)
	sy := vmath.Sign(p0.Y, p1.Y)
	err := dx - dy

	cur := p0
	for {
		if !cur.Eq(p0) && !cur.Eq(p1) {
			visit(cur)
		}
		if cur.Eq(p1) {
			return
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			cur.X += sx
		}
		if e2 < dx {
			err += dx
			cur.Y += sy
		}
	}
}

// LinePoints collects WalkLine output
func LinePoints(l core.Line) []core.Point {
	pts := make([]core.Point, 0, max(vmath.Abs(l.P1.X-l.P0.X), vmath.Abs(l.P1.Y-l.P0.Y))+2)
	WalkLine(l, func(p core.Point) { pts = append(pts, p) })
	return pts
}

// circleStep is one midpoint iteration: x is the octant's horizontal extent at row offset y
type circleStep struct {
	x, y int
}

// walkCircle runs the midpoint circle decision loop starting at (radius, 0), d = 1 - radius
func walkCircle(radius int, step func(circleStep)) {
	x, y := radius, 0
	d := 1 - x
	for y <= x {
		step(circleStep{x: x, y: y})
		y++
		if d <= 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// WalkCircleOutline visits the 8 symmetric reflections of every octant point
// Reflections that coincide (on the axes and diagonals) are visited more than once
func WalkCircleOutline(c core.Circle, visit func(core.Point)) {
	cx, cy := c.Center.X, c.Center.Y
	walkCircle(c.Radius, func(s circleStep) {
		visit(core.Point{X: cx + s.x, Y: cy + s.y})
		visit(core.Point{X: cx - s.x, Y: cy + s.y})
		visit(core.Point{X: cx + s.x, Y: cy - s.y})
		visit(core.Point{X: cx - s.x, Y: cy - s.y})
		visit(core.Point{X: cx + s.y, Y: cy + s.x})
		visit(core.Point{X: cx - s.y, Y: cy + s.x})
		visit(core.Point{X: cx + s.y, Y: cy - s.x})
		visit(core.Point{X: cx - s.y, Y: cy - s.x})
	})
}

// WalkCircleFill visits horizontal spans between the symmetric extents on rows
// cy±y (half-width x) and cy±x (half-width y)
// Rows shared by consecutive steps near the diagonal are spanned twice
func WalkCircleFill(c core.Circle, visit func(core.Point)) {
	cx, cy := c.Center.X, c.Center.Y
	span := func(half, dy int) {
		for i := cx - half; i <= cx+half; i++ {
			visit(core.Point{X: i, Y: cy + dy})
			visit(core.Point{X: i, Y: cy - dy})
		}
	}
	walkCircle(c.Radius, func(s circleStep) {
		span(s.x, s.y)
		span(s.y, s.x)
	})
}

// WalkTriangleFill visits every cell of the triangle's inclusive bounding box that
// passes the barycentric containment test. Degenerate triangles visit nothing
func WalkTriangleFill(t core.Triangle, visit func(core.Point)) {
	b := t.Bounds()
	for y := b.P0.Y; y <= b.P1.Y; y++ {
		for x := b.P0.X; x <= b.P1.X; x++ {
			p := core.Point{X: x, Y: y}
			if vmath.Contains(t, p) {
				visit(p)
			}
		}
	}
}
