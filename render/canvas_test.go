package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/glyphgrid/core"
	"github.com/lixenwraith/glyphgrid/terminal"
)

func newTestCanvas(w, h int, opts ...Option) (*Canvas, *Queue) {
	q := NewQueue(0)
	return NewCanvas(core.Resolution{Width: w, Height: h}, q, opts...), q
}

// glyphSet groups queued requests by glyph into distinct points
func glyphSet(reqs []Request) map[string]pointSet {
	out := map[string]pointSet{}
	for _, r := range reqs {
		if out[r.Glyph] == nil {
			out[r.Glyph] = pointSet{}
		}
		out[r.Glyph][r.At]++
	}
	return out
}

func keys(set pointSet) []core.Point {
	out := make([]core.Point, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	return out
}

func TestCanvasLineExample(t *testing.T) {
	c, q := newTestCanvas(10, 10)
	c.Line(core.Line{P0: pt(0, 0), P1: pt(9, 9)}, DefaultStyle())

	reqs := q.Pending()
	require.Len(t, reqs, 10)
	for _, r := range reqs {
		assert.Equal(t, r.At.X, r.At.Y)
		assert.Equal(t, "#", r.Glyph)
		assert.Equal(t, terminal.White, r.Color)
		assert.Equal(t, ZBase, r.Z)
	}
}

func TestCanvasFilledRectExample(t *testing.T) {
	c, q := newTestCanvas(10, 10)
	stroke := NewStyle("#", terminal.Red)
	c.Rect(core.Rect{P0: pt(2, 2), P1: pt(5, 5)}, Outline(stroke).WithFill(stroke.WithGlyph(".")))

	sets := glyphSet(q.Pending())

	boundary := sets["#"]
	assert.Len(t, boundary, 12)
	for p := range boundary {
		onEdge := p.X == 2 || p.X == 5 || p.Y == 2 || p.Y == 5
		assert.True(t, onEdge, "boundary point %v not on an edge", p)
	}

	assert.ElementsMatch(t, []core.Point{pt(3, 3), pt(3, 4), pt(4, 3), pt(4, 4)}, keys(sets["."]))
}

func TestCanvasRectCornerOrder(t *testing.T) {
	var want pointSet
	for i, r := range []core.Rect{
		{P0: pt(1, 2), P1: pt(6, 4)},
		{P0: pt(6, 4), P1: pt(1, 2)},
		{P0: pt(1, 4), P1: pt(6, 2)},
		{P0: pt(6, 2), P1: pt(1, 4)},
	} {
		c, q := newTestCanvas(10, 10)
		c.Rect(r, Outline(DefaultStyle()))
		got := glyphSet(q.Pending())["#"]
		for p := range got {
			got[p] = 1
		}
		if i == 0 {
			want = got
			assert.Len(t, want, 2*6+2*3-4)
			continue
		}
		assert.Equal(t, want, got, "rect %v-%v", r.P0, r.P1)
	}
}

func TestCanvasRectThin(t *testing.T) {
	c, q := newTestCanvas(10, 10)
	c.Rect(core.Rect{P0: pt(1, 1), P1: pt(4, 2)}, Solid(DefaultStyle()))
	// Two rows tall: no interior, the boundary is every cell
	assert.Len(t, glyphSet(q.Pending())["#"], 8)
}

func TestCanvasTriangleOutlineOnTop(t *testing.T) {
	c, q := newTestCanvas(10, 10)
	stroke := NewStyle("#", terminal.White)
	c.Triangle(core.Triangle{P0: pt(0, 0), P1: pt(6, 0), P2: pt(0, 6)},
		Outline(stroke).WithFill(stroke.WithGlyph("%")))

	reqs := q.Pending()
	sets := glyphSet(reqs)
	assert.Len(t, sets["%"], 28)

	// Edges come after the fill, so they win at equal z
	last := reqs[len(reqs)-1]
	assert.Equal(t, "#", last.Glyph)
	for _, r := range reqs[:28] {
		assert.Equal(t, "%", r.Glyph)
	}
}

func TestCanvasTriangleOutlineOnly(t *testing.T) {
	c, q := newTestCanvas(10, 10)
	c.Triangle(core.Triangle{P0: pt(0, 0), P1: pt(6, 0), P2: pt(0, 6)}, Outline(DefaultStyle()))
	sets := glyphSet(q.Pending())
	assert.Len(t, sets, 1)
	// Each edge has 7 cells, the three corners are shared
	assert.Len(t, sets["#"], 18)
}

func TestCanvasQuadFill(t *testing.T) {
	c, q := newTestCanvas(10, 10)
	stroke := DefaultStyle()
	c.Quad(core.Quad{P0: pt(1, 1), P1: pt(4, 1), P2: pt(4, 4), P3: pt(1, 4)},
		Outline(stroke).WithFill(stroke.WithGlyph(".")))

	sets := glyphSet(q.Pending())
	assert.Len(t, sets["."], 16)
	assert.Len(t, sets["#"], 12)

	// The diagonal p2-p0 is evaluated by both triangles
	assert.Equal(t, 2, sets["."][pt(2, 2)])
	assert.Equal(t, 1, sets["."][pt(3, 2)])
}

func TestCanvasQuadBowtieFillsAsTwoTriangles(t *testing.T) {
	c, q := newTestCanvas(10, 10)
	q1 := core.Quad{P0: pt(0, 0), P1: pt(4, 4), P2: pt(4, 0), P3: pt(0, 4)}
	c.Quad(q1, Outline(DefaultStyle()).WithFill(DefaultStyle().WithGlyph(".")))

	a, b := q1.Split()
	want := collect(func(v func(core.Point)) {
		WalkTriangleFill(a, v)
		WalkTriangleFill(b, v)
	})
	assert.Equal(t, want, glyphSet(q.Pending())["."])
}

func TestCanvasCircle(t *testing.T) {
	circle := core.Circle{Center: pt(5, 5), Radius: 3}

	c, q := newTestCanvas(11, 11)
	c.Circle(circle, Outline(DefaultStyle()))
	outline := glyphSet(q.Pending())["#"]
	assert.NotEmpty(t, outline)

	c, q = newTestCanvas(11, 11)
	c.Circle(circle, Solid(DefaultStyle()))
	solid := glyphSet(q.Pending())
	assert.Len(t, solid, 1, "solid paint draws spans only")

	c, q = newTestCanvas(11, 11)
	c.Circle(circle, Outline(DefaultStyle().WithGlyph("o")).WithFill(DefaultStyle().WithGlyph("*")))
	reqs := q.Pending()
	sets := glyphSet(reqs)
	assert.Equal(t, len(outline), len(sets["o"]))
	assert.Equal(t, "o", reqs[len(reqs)-1].Glyph, "distinct outline is drawn over the fill")
}

func TestCanvasClipping(t *testing.T) {
	var clipped []Request
	c, q := newTestCanvas(10, 10, WithClipHandler(func(r Request) { clipped = append(clipped, r) }))

	c.Line(core.Line{P0: pt(-5, 0), P1: pt(14, 0)}, DefaultStyle())

	assert.Equal(t, 10, q.Len())
	assert.Equal(t, 10, c.Dropped())
	assert.Len(t, clipped, 10)
	for _, r := range q.Pending() {
		assert.True(t, c.Resolution().Contains(r.At))
	}
}

func TestCanvasClippingSilentByDefault(t *testing.T) {
	c, q := newTestCanvas(3, 3)
	c.Point(pt(3, 0), DefaultStyle())
	c.Point(pt(0, -1), DefaultStyle())
	c.Point(pt(1, 1), DefaultStyle())
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, 2, c.Dropped())
}

func TestCanvasTextWrap(t *testing.T) {
	c, q := newTestCanvas(10, 3)
	c.Text(pt(7, 0), "abcdef", NewStyle("", terminal.Green))

	var got []string
	for _, r := range q.Pending() {
		got = append(got, r.Glyph+r.At.String())
	}
	assert.Equal(t, []string{"a(7,0)", "b(8,0)", "c(9,0)", "d(7,1)", "e(8,1)", "f(9,1)"}, got)
}

func TestCanvasTextClipsBottom(t *testing.T) {
	c, q := newTestCanvas(10, 3)
	c.Text(pt(7, 2), "abcd", DefaultStyle())
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, 1, c.Dropped())
}

func TestCanvasTextGraphemes(t *testing.T) {
	c, q := newTestCanvas(10, 3)
	c.Text(pt(0, 0), "é漢🇯🇵\nx", DefaultStyle())

	reqs := q.Pending()
	require.Len(t, reqs, 4)
	assert.Equal(t, "é", reqs[0].Glyph)
	assert.Equal(t, "漢", reqs[1].Glyph)
	assert.Equal(t, "🇯🇵", reqs[2].Glyph)
	assert.Equal(t, pt(2, 0), reqs[2].At)
	assert.Equal(t, "x", reqs[3].Glyph)
	assert.Equal(t, pt(0, 1), reqs[3].At)
}

func TestCanvasFillAndBlit(t *testing.T) {
	c, q := newTestCanvas(4, 3)
	c.Fill(".", terminal.Blue)
	assert.Equal(t, 12, q.Len())
	q.Drain()

	f := NewFrame(core.Resolution{Width: 2, Height: 2}, Cell{Glyph: "x", Color: terminal.Red, Z: 9})
	c.Blit(f, pt(3, 2), 4)

	reqs := q.Pending()
	require.Len(t, reqs, 1)
	assert.Equal(t, Request{At: pt(3, 2), Glyph: "x", Color: terminal.Red, Z: 4}, reqs[0])
	assert.Equal(t, 3, c.Dropped())
}

func TestCanvasPolyline(t *testing.T) {
	c, q := newTestCanvas(10, 10)
	c.Polyline([]core.Point{pt(0, 0), pt(3, 0), pt(3, 3)}, false, DefaultStyle())
	open := len(glyphSet(q.Pending())["#"])
	q.Drain()

	c.Polyline([]core.Point{pt(0, 0), pt(3, 0), pt(3, 3)}, true, DefaultStyle())
	closed := len(glyphSet(q.Pending())["#"])

	assert.Equal(t, 7, open)
	assert.Equal(t, 9, closed)
}
