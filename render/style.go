package render

import (
	"github.com/lixenwraith/glyphgrid/core"
	"github.com/lixenwraith/glyphgrid/terminal"
)

// Style is the glyph, color and priority applied to every cell a primitive emits
type Style struct {
	Glyph string
	Color Color
	Z     int
}

// DefaultStyle returns "#" in white at ZBase
func DefaultStyle() Style {
	return Style{Glyph: "#", Color: terminal.White, Z: ZBase}
}

// NewStyle builds a style at ZBase
func NewStyle(glyph string, color Color) Style {
	return Style{Glyph: glyph, Color: color, Z: ZBase}
}

// WithGlyph returns a copy with a different glyph
func (s Style) WithGlyph(glyph string) Style {
	s.Glyph = glyph
	return s
}

// WithColor returns a copy with a different color
func (s Style) WithColor(c Color) Style {
	s.Color = c
	return s
}

// WithZ returns a copy with a different z-index
func (s Style) WithZ(z int) Style {
	s.Z = z
	return s
}

// At creates a request for p
func (s Style) At(p core.Point) Request {
	return Request{At: p, Glyph: s.Glyph, Color: s.Color, Z: s.Z}
}

// Paint pairs the outline style with an optional interior style
// A nil Fill draws the outline only
type Paint struct {
	Stroke Style
	Fill   *Style
}

// Outline paints only the boundary
func Outline(s Style) Paint {
	return Paint{Stroke: s}
}

// Solid paints boundary and interior with the same style
func Solid(s Style) Paint {
	fill := s
	return Paint{Stroke: s, Fill: &fill}
}

// WithFill returns a copy filling the interior with f
func (p Paint) WithFill(f Style) Paint {
	p.Fill = &f
	return p
}

// Filled reports whether the interior is painted
func (p Paint) Filled() bool {
	return p.Fill != nil
}

// distinctStroke reports whether the outline differs from the fill
func (p Paint) distinctStroke() bool {
	return p.Fill != nil && *p.Fill != p.Stroke
}
