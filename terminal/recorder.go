package terminal

import (
	"strings"
)

// Op identifies a surface primitive
type Op uint8

const (
	OpCursor Op = iota
	OpColor
	OpGlyph
)

func (o Op) String() string {
	switch o {
	case OpCursor:
		return "cursor"
	case OpColor:
		return "color"
	case OpGlyph:
		return "glyph"
	}
	return "unknown"
}

// Call is one recorded primitive
type Call struct {
	Op    Op
	X, Y  int
	Color Color
	Glyph string
}

// Write is a glyph write resolved against the cursor and color in effect
type Write struct {
	X, Y  int
	Color Color
	Glyph string
}

// Recorder is an in-memory surface that logs every call
// Used for headless runs and tests
type Recorder struct {
	calls   []Call
	writes  []Write
	flushes int

	x, y  int
	color Color
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{color: White}
}

func (r *Recorder) SetCursor(x, y int) {
	r.x, r.y = x, y
	r.calls = append(r.calls, Call{Op: OpCursor, X: x, Y: y})
}

func (r *Recorder) SetForeground(c Color) {
	r.color = c
	r.calls = append(r.calls, Call{Op: OpColor, Color: c})
}

func (r *Recorder) WriteGlyph(glyph string) {
	r.calls = append(r.calls, Call{Op: OpGlyph, Glyph: glyph})
	r.writes = append(r.writes, Write{X: r.x, Y: r.y, Color: r.color, Glyph: glyph})
}

// Flush counts presents
func (r *Recorder) Flush() error {
	r.flushes++
	return nil
}

// Calls returns all primitives in order
func (r *Recorder) Calls() []Call {
	return r.calls
}

// Writes returns all glyph writes in order
func (r *Recorder) Writes() []Write {
	return r.writes
}

// Flushes returns the number of Flush calls
func (r *Recorder) Flushes() int {
	return r.flushes
}

// Reset forgets recorded calls, cursor and color are kept
// Slices returned earlier by Calls and Writes stay intact
func (r *Recorder) Reset() {
	r.calls = nil
	r.writes = nil
	r.flushes = 0
}

// Grid replays all writes onto a width x height text grid, unwritten cells hold blank
// Writes outside the grid are ignored
func (r *Recorder) Grid(width, height int, blank string) []string {
	cells := make([]string, width*height)
	for i := range cells {
		cells[i] = blank
	}
	for _, w := range r.writes {
		if w.X < 0 || w.X >= width || w.Y < 0 || w.Y >= height {
			continue
		}
		cells[w.Y*width+w.X] = w.Glyph
	}

	rows := make([]string, height)
	var sb strings.Builder
	for y := 0; y < height; y++ {
		sb.Reset()
		for x := 0; x < width; x++ {
			sb.WriteString(cells[y*width+x])
		}
		rows[y] = sb.String()
	}
	return rows
}
