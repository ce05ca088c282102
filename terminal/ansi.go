// @focus: #terminal { ansi }
package terminal

import (
	"bufio"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during present)
var (
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiSGR0  = []byte("\x1b[0m")
)

// DefaultCellWidth is the number of terminal columns one grid cell occupies
// Two columns keep square-ish cells on typical terminal fonts
const DefaultCellWidth = 2

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorPos writes cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// ANSI is an output surface emitting raw escape sequences to a writer
// Colors are encoded through a termenv profile; nothing reaches the writer until Flush
type ANSI struct {
	w         *bufio.Writer
	profile   termenv.Profile
	cellWidth int

	// Requested position in grid cells, moved is set until a glyph or flush emits it
	x, y  int
	moved bool

	// Actual terminal cursor column/row after the last write
	cursorX     int
	cursorY     int
	cursorValid bool

	// Foreground state for coalescing
	fg      Color
	fgValid bool
}

// ANSIOption configures an ANSI surface
type ANSIOption func(*ANSI)

// WithProfile overrides the detected color profile
func WithProfile(p termenv.Profile) ANSIOption {
	return func(a *ANSI) { a.profile = p }
}

// WithCellWidth sets how many terminal columns one cell spans (minimum 1)
func WithCellWidth(n int) ANSIOption {
	return func(a *ANSI) { a.cellWidth = max(n, 1) }
}

// NewANSI creates a surface writing to w
// The color profile defaults to what the environment advertises for w
func NewANSI(w io.Writer, opts ...ANSIOption) *ANSI {
	a := &ANSI{
		w:         bufio.NewWriterSize(w, 65536),
		profile:   termenv.NewOutput(w).EnvColorProfile(),
		cellWidth: DefaultCellWidth,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Profile returns the active color profile
func (a *ANSI) Profile() termenv.Profile {
	return a.profile
}

// SetCursor moves the pending write position, emitted lazily on the next glyph
func (a *ANSI) SetCursor(x, y int) {
	a.x = x
	a.y = y
	a.moved = true
}

// SetForeground selects the glyph color, emitted only when it changes
func (a *ANSI) SetForeground(c Color) {
	if a.fgValid && a.fg == c {
		return
	}
	a.fg = c
	a.fgValid = true

	seq := a.sequence(c)
	if seq == "" {
		return
	}
	a.w.Write(csi)
	a.w.WriteString(seq)
	a.w.WriteByte('m')
}

// sequence returns the SGR parameters for c under the active profile
func (a *ANSI) sequence(c Color) string {
	var tc termenv.Color
	switch a.profile {
	case termenv.TrueColor:
		tc = termenv.RGBColor(c.Hex())
	case termenv.ANSI256:
		tc = termenv.ANSI256Color(c.Index256())
	case termenv.ANSI:
		tc = termenv.ANSIColor(c.ANSI())
	default:
		return ""
	}
	return tc.Sequence(false)
}

// WriteGlyph writes text at the pending position
func (a *ANSI) WriteGlyph(glyph string) {
	col := a.x * a.cellWidth
	if !a.cursorValid || a.cursorX != col || a.cursorY != a.y {
		writeCursorPos(a.w, col, a.y)
	}
	a.w.WriteString(glyph)

	a.cursorX = col + runewidth.StringWidth(glyph)
	a.cursorY = a.y
	a.cursorValid = true
	a.moved = false
}

// Flush emits a cursor move still pending from SetCursor, resets attributes and writes
// all buffered output
func (a *ANSI) Flush() error {
	if a.moved {
		col := a.x * a.cellWidth
		if !a.cursorValid || a.cursorX != col || a.cursorY != a.y {
			writeCursorPos(a.w, col, a.y)
			a.cursorX, a.cursorY = col, a.y
			a.cursorValid = true
		}
		a.moved = false
	}
	a.w.Write(csiSGR0)
	a.fgValid = false
	return a.w.Flush()
}

// Clear erases the terminal and homes the cursor
func (a *ANSI) Clear() error {
	a.w.Write(csiClear)
	a.cursorX, a.cursorY = 0, 0
	a.cursorValid = true
	a.moved = false
	a.fgValid = false
	return a.w.Flush()
}
