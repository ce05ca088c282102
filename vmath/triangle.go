package vmath

import "github.com/lixenwraith/glyphgrid/core"

// degenerate is returned for collinear triangles, every coordinate negative means outside
const degenerate = -1.0

// Barycentric returns the barycentric coordinates of q relative to triangle p0, p1, p2
// A zero denominator (collinear or coincident vertices) yields (-1, -1, -1)
func Barycentric(p0, p1, p2, q core.Point) (alpha, beta, gamma float64) {
	denom := (p1.Y-p2.Y)*(p0.X-p2.X) + (p2.X-p1.X)*(p0.Y-p2.Y)
	if denom == 0 {
		return degenerate, degenerate, degenerate
	}

	// gamma = 1 - alpha - beta, taken over integer numerators so edge points land on exactly 0
	na := (p1.Y-p2.Y)*(q.X-p2.X) + (p2.X-p1.X)*(q.Y-p2.Y)
	nb := (p2.Y-p0.Y)*(q.X-p2.X) + (p0.X-p2.X)*(q.Y-p2.Y)
	d := float64(denom)
	return float64(na) / d, float64(nb) / d, float64(denom-na-nb) / d
}

// InTriangle reports whether q lies inside or on an edge of triangle p0, p1, p2
// Degenerate triangles contain nothing
func InTriangle(p0, p1, p2, q core.Point) bool {
	a, b, g := Barycentric(p0, p1, p2, q)
	return a >= 0 && b >= 0 && g >= 0
}

// Contains is InTriangle for a core.Triangle
func Contains(t core.Triangle, q core.Point) bool {
	return InTriangle(t.P0, t.P1, t.P2, q)
}

// Cross returns the z component of (a-o) x (b-o)
// Positive for a counter-clockwise turn in a y-up frame, negative for clockwise
func Cross(o, a, b core.Point) int {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// IsConvexQuad reports whether the four vertices, in the given order, form a convex
// quadrilateral with consistent winding. Collinear turns count as convex
func IsConvexQuad(q core.Quad) bool {
	pts := [4]core.Point{q.P0, q.P1, q.P2, q.P3}
	var pos, neg bool
	for i := range pts {
		c := Cross(pts[i], pts[(i+1)%4], pts[(i+2)%4])
		switch {
		case c > 0:
			pos = true
		case c < 0:
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}
