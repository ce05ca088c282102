package render

import (
	"strings"

	"github.com/lixenwraith/glyphgrid/core"
)

// Frame is a full grid of cells stored row-major in one flat slice
// Every cell is always populated
type Frame struct {
	res   core.Resolution
	cells []Cell
}

// NewFrame creates a frame with every cell set to fill
func NewFrame(res core.Resolution, fill Cell) *Frame {
	f := &Frame{
		res:   res,
		cells: make([]Cell, max(res.Cells(), 0)),
	}
	f.Reset(fill)
	return f
}

// Resolution returns the frame dimensions
func (f *Frame) Resolution() core.Resolution {
	return f.res
}

// Reset sets every cell to c using exponential copy
func (f *Frame) Reset(c Cell) {
	if len(f.cells) == 0 {
		return
	}
	f.cells[0] = c
	for filled := 1; filled < len(f.cells); filled *= 2 {
		copy(f.cells[filled:], f.cells[:filled])
	}
}

// At returns the cell at p, false when out of bounds
func (f *Frame) At(p core.Point) (Cell, bool) {
	if !f.res.Contains(p) {
		return Cell{}, false
	}
	return f.cells[f.res.Index(p)], true
}

// Set overwrites the cell at p, false when out of bounds
func (f *Frame) Set(p core.Point, c Cell) bool {
	if !f.res.Contains(p) {
		return false
	}
	f.cells[f.res.Index(p)] = c
	return true
}

// Clone returns an independent copy
func (f *Frame) Clone() *Frame {
	cp := &Frame{res: f.res, cells: make([]Cell, len(f.cells))}
	copy(cp.cells, f.cells)
	return cp
}

// Equal reports whether both frames have the same size and cells
func (f *Frame) Equal(o *Frame) bool {
	if f.res != o.res {
		return false
	}
	for i := range f.cells {
		if f.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Glyphs returns the glyph plane indexed [y][x]
func (f *Frame) Glyphs() [][]string {
	return plane(f, func(c Cell) string { return c.Glyph })
}

// Colors returns the color plane indexed [y][x]
func (f *Frame) Colors() [][]Color {
	return plane(f, func(c Cell) Color { return c.Color })
}

// ZIndices returns the z-index plane indexed [y][x]
func (f *Frame) ZIndices() [][]int {
	return plane(f, func(c Cell) int { return c.Z })
}

func plane[T any](f *Frame, pick func(Cell) T) [][]T {
	out := make([][]T, f.res.Height)
	for y := range out {
		row := make([]T, f.res.Width)
		for x := range row {
			row[x] = pick(f.cells[y*f.res.Width+x])
		}
		out[y] = row
	}
	return out
}

// String renders glyphs row by row separated by newlines
func (f *Frame) String() string {
	var sb strings.Builder
	for y := 0; y < f.res.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < f.res.Width; x++ {
			sb.WriteString(f.cells[y*f.res.Width+x].Glyph)
		}
	}
	return sb.String()
}
