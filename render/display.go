package render

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/lixenwraith/glyphgrid/core"
	"github.com/lixenwraith/glyphgrid/terminal"
)

// Defaults in effect until Configure is called
const (
	DefaultEmptyGlyph = " "
	DefaultBaseColor  = terminal.White
)

var (
	// ErrNoSurface is returned by New when no output surface is given
	ErrNoSurface = errors.New("render: nil surface")
	// ErrEmptyGlyph is returned by Configure for a zero-length empty glyph
	ErrEmptyGlyph = errors.New("render: empty glyph must be at least one character")
)

// Stats summarizes the last present
type Stats struct {
	Requests  int // Requests drained from the queue
	Applied   int // Requests that won priority and changed the front buffer
	Presented int // Cells written to the surface
}

// Display is the compositor and the session handle for one grid
// It owns the front buffer, back buffer and request queue; draw calls are promoted
// from the embedded Canvas. Not safe for concurrent use except Queue().Push
type Display struct {
	*Canvas

	res     core.Resolution
	front   *Frame // Computed contents after this frame's requests
	back    *Frame // Contents last written to the surface
	queue   *Queue
	surface Surface
	logger  *slog.Logger

	baseColor  Color
	emptyGlyph string

	frames int
	stats  Stats
}

// New creates a display of the given resolution presenting to surface
// Buffers start as empty glyph / base color / z 0; nothing is presented until the
// first Present or Configure
func New(res core.Resolution, surface Surface, opts ...Option) (*Display, error) {
	if !res.Valid() {
		return nil, fmt.Errorf("render: invalid resolution %s", res)
	}
	if surface == nil {
		return nil, ErrNoSurface
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	queue := NewQueue(res.Cells())
	d := &Display{
		Canvas:     newCanvas(res, queue, o),
		res:        res,
		queue:      queue,
		surface:    surface,
		logger:     o.logger,
		baseColor:  DefaultBaseColor,
		emptyGlyph: DefaultEmptyGlyph,
	}
	empty := d.emptyCell()
	d.front = NewFrame(res, empty)
	d.back = NewFrame(res, empty)
	return d, nil
}

// Configure sets the base color and empty glyph, then clears and presents the grid
func (d *Display) Configure(baseColor Color, emptyGlyph string) error {
	if emptyGlyph == "" {
		return ErrEmptyGlyph
	}
	d.baseColor = baseColor
	d.emptyGlyph = emptyGlyph
	d.Clear()
	return d.Present()
}

// Clear resets both buffers to the empty cell and requests a full-grid fill, so the
// next present repaints every cell even if the device was cleared externally
func (d *Display) Clear() {
	empty := d.emptyCell()
	d.front.Reset(empty)
	d.back.Reset(empty)
	d.Fill(d.emptyGlyph, d.baseColor)
}

// Present applies queued requests, writes changed cells to the surface and syncs the
// back buffer. The cursor is parked below the grid after any write
func (d *Display) Present() error {
	reqs := d.queue.Drain()

	applied := 0
	for _, r := range reqs {
		if d.apply(r) {
			applied++
		}
	}

	presented := d.diff()
	d.frames++
	d.stats = Stats{Requests: len(reqs), Applied: applied, Presented: presented}
	d.logger.Debug("present",
		"frame", d.frames,
		"requests", len(reqs),
		"applied", applied,
		"presented", presented,
		"dropped", d.Dropped())

	if presented == 0 {
		return nil
	}
	d.surface.SetCursor(0, d.res.Height+1)
	if f, ok := d.surface.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("render: flush surface: %w", err)
		}
	}
	return nil
}

// apply writes r into the front buffer when its z-index is at least the cell's, or
// when the cell is still untouched (empty glyph and base color)
func (d *Display) apply(r Request) bool {
	if !d.res.Contains(r.At) {
		return false
	}
	dst := &d.front.cells[d.res.Index(r.At)]
	if r.Z >= dst.Z || d.isEmpty(*dst) {
		*dst = r.Cell()
		return true
	}
	return false
}

// diff writes every cell whose glyph or color differs from the back buffer, plus every
// cell holding the empty glyph, in row-major order. Returns the number written
func (d *Display) diff() int {
	n := 0
	w := d.res.Width
	for y := 0; y < d.res.Height; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			cur := d.front.cells[row+x]
			prev := &d.back.cells[row+x]

			if cur.Glyph == prev.Glyph && cur.Color == prev.Color && cur.Glyph != d.emptyGlyph {
				continue
			}

			d.surface.SetCursor(x, y)
			d.surface.SetForeground(cur.Color)
			d.surface.WriteGlyph(cur.Glyph)
			*prev = cur
			n++
		}
	}
	return n
}

func (d *Display) emptyCell() Cell {
	return Cell{Glyph: d.emptyGlyph, Color: d.baseColor, Z: ZBase}
}

func (d *Display) isEmpty(c Cell) bool {
	return c.Glyph == d.emptyGlyph && c.Color == d.baseColor
}

// Queue returns the request queue, producers on other goroutines may Push to it
func (d *Display) Queue() *Queue {
	return d.queue
}

// Cell returns the front buffer cell at p
func (d *Display) Cell(p core.Point) (Cell, bool) {
	return d.front.At(p)
}

// Front returns a copy of the front buffer
func (d *Display) Front() *Frame {
	return d.front.Clone()
}

// Back returns a copy of the back buffer
func (d *Display) Back() *Frame {
	return d.back.Clone()
}

// BaseColor returns the configured base color
func (d *Display) BaseColor() Color {
	return d.baseColor
}

// EmptyGlyph returns the configured empty glyph
func (d *Display) EmptyGlyph() string {
	return d.emptyGlyph
}

// Stats returns counters from the last present
func (d *Display) Stats() Stats {
	return d.stats
}

// Presented returns the number of cells written by the last present
func (d *Display) Presented() int {
	return d.stats.Presented
}

// Frames returns how many presents have run
func (d *Display) Frames() int {
	return d.frames
}
