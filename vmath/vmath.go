// Package vmath holds the integer helpers and containment tests used by the rasterizer
package vmath

// Abs returns the absolute value of x
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns 1 when a < b, otherwise -1
// Matches the Bresenham step convention where equal coordinates still step negative,
// the walk never advances that axis because its delta is zero
func Sign(a, b int) int {
	if a < b {
		return 1
	}
	return -1
}
