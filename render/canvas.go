package render

import (
	"log/slog"
	"sync/atomic"

	"github.com/rivo/uniseg"

	"github.com/lixenwraith/glyphgrid/core"
	"github.com/lixenwraith/glyphgrid/vmath"
)

// Canvas is the rasterizer: it converts shapes and styles into requests on a queue
// Every primitive funnels through Submit, which enforces the clipping policy
type Canvas struct {
	res    core.Resolution
	queue  *Queue
	onClip func(Request)
	strict bool
	logger *slog.Logger

	dropped atomic.Int64
}

// NewCanvas creates a rasterizer bound to a resolution and queue
func NewCanvas(res core.Resolution, queue *Queue, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newCanvas(res, queue, o)
}

func newCanvas(res core.Resolution, queue *Queue, o options) *Canvas {
	return &Canvas{
		res:    res,
		queue:  queue,
		onClip: o.onClip,
		strict: o.strict,
		logger: o.logger,
	}
}

// Resolution returns the grid size requests are clipped against
func (c *Canvas) Resolution() core.Resolution {
	return c.res
}

// Dropped returns how many requests were clipped since creation
func (c *Canvas) Dropped() int {
	return int(c.dropped.Load())
}

// Submit enqueues r if it lies within the grid
// Out-of-range requests are dropped; the clip handler, if set, is told about each one
func (c *Canvas) Submit(r Request) {
	if !c.res.Contains(r.At) {
		c.dropped.Add(1)
		if c.onClip != nil {
			c.onClip(r)
		}
		return
	}
	c.queue.Push(r)
}

// emitter returns a visit func submitting s at each point
func (c *Canvas) emitter(s Style) func(core.Point) {
	return func(p core.Point) {
		c.Submit(s.At(p))
	}
}

// Point draws a single cell
func (c *Canvas) Point(p core.Point, s Style) {
	c.Submit(s.At(p))
}

// Line draws an 8-connected Bresenham path including both endpoints
func (c *Canvas) Line(l core.Line, s Style) {
	WalkLine(l, c.emitter(s))
}

// Polyline draws connected segments through pts, closing back to the first when closed
func (c *Canvas) Polyline(pts []core.Point, closed bool, s Style) {
	for i := 0; i+1 < len(pts); i++ {
		c.Line(core.Line{P0: pts[i], P1: pts[i+1]}, s)
	}
	if closed && len(pts) > 2 {
		c.Line(core.Line{P0: pts[len(pts)-1], P1: pts[0]}, s)
	}
}

// Rect draws the four edges of the normalized rectangle and fills cells strictly inside
func (c *Canvas) Rect(r core.Rect, p Paint) {
	k := r.Corners()
	c.Polyline(k[:], true, p.Stroke)

	if !p.Filled() {
		return
	}
	fill := *p.Fill
	for y := k[0].Y + 1; y < k[2].Y; y++ {
		for x := k[0].X + 1; x < k[2].X; x++ {
			c.Submit(fill.At(core.Point{X: x, Y: y}))
		}
	}
}

// Triangle fills the interior by containment test, then draws the three edges on top
func (c *Canvas) Triangle(t core.Triangle, p Paint) {
	if p.Filled() {
		if c.strict && vmath.Cross(t.P0, t.P1, t.P2) == 0 {
			c.logger.Warn("degenerate triangle has no interior", "p0", t.P0, "p1", t.P1, "p2", t.P2)
		}
		WalkTriangleFill(t, c.emitter(*p.Fill))
	}
	for _, e := range t.Edges() {
		c.Line(e, p.Stroke)
	}
}

// Quad fills as triangles (p0,p1,p2) and (p2,p3,p0), then draws edges p0->p1->p2->p3->p0
// Winding is the caller's responsibility: non-convex or self-intersecting quads fill
// inconsistently. Strict mode logs a warning but renders identically
func (c *Canvas) Quad(q core.Quad, p Paint) {
	if p.Filled() {
		if c.strict && !vmath.IsConvexQuad(q) {
			c.logger.Warn("quad is not convex with consistent winding, fill may be inconsistent",
				"p0", q.P0, "p1", q.P1, "p2", q.P2, "p3", q.P3)
		}
		a, b := q.Split()
		emit := c.emitter(*p.Fill)
		WalkTriangleFill(a, emit)
		WalkTriangleFill(b, emit)
	}
	for _, e := range q.Edges() {
		c.Line(e, p.Stroke)
	}
}

// Circle draws a midpoint circle
// Filled circles are spans in the fill style; when the stroke differs from the fill
// the outline is drawn over the spans
func (c *Canvas) Circle(ci core.Circle, p Paint) {
	if !p.Filled() {
		WalkCircleOutline(ci, c.emitter(p.Stroke))
		return
	}
	WalkCircleFill(ci, c.emitter(*p.Fill))
	if p.distinctStroke() {
		WalkCircleOutline(ci, c.emitter(p.Stroke))
	}
}

// Text lays out one glyph per grapheme cluster from at, left to right
// Reaching the right edge wraps to the next row at the starting column; a newline
// breaks explicitly. Glyphs past the right or bottom edge are clipped by Submit
func (c *Canvas) Text(at core.Point, text string, s Style) {
	col, row := at.X, at.Y
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		if cluster == "\n" || cluster == "\r\n" {
			row++
			col = at.X
			continue
		}
		if col >= c.res.Width {
			row++
			col = at.X
		}
		c.Submit(s.WithGlyph(cluster).At(core.Point{X: col, Y: row}))
		col++
	}
}

// Fill requests every cell of the grid at ZBase
func (c *Canvas) Fill(glyph string, color Color) {
	s := Style{Glyph: glyph, Color: color, Z: ZBase}
	for y := 0; y < c.res.Height; y++ {
		for x := 0; x < c.res.Width; x++ {
			c.queue.Push(s.At(core.Point{X: x, Y: y}))
		}
	}
}

// Blit requests every cell of f at z-index z, positioned with f's origin at offset
// Cells landing outside the grid are clipped
func (c *Canvas) Blit(f *Frame, offset core.Point, z int) {
	fr := f.Resolution()
	for y := 0; y < fr.Height; y++ {
		for x := 0; x < fr.Width; x++ {
			cell := f.cells[y*fr.Width+x]
			c.Submit(Request{
				At:    offset.Add(core.Point{X: x, Y: y}),
				Glyph: cell.Glyph,
				Color: cell.Color,
				Z:     z,
			})
		}
	}
}
