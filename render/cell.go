package render

import (
	"github.com/lixenwraith/glyphgrid/core"
	"github.com/lixenwraith/glyphgrid/terminal"
)

// Color is an alias to terminal.Color so surfaces and buffers share the palette
type Color = terminal.Color

// Cell is one addressable grid position
type Cell struct {
	Glyph string
	Color Color
	Z     int
}

// Request is a pending cell-level paint instruction, immutable once created
type Request struct {
	At    core.Point
	Glyph string
	Color Color
	Z     int
}

// Cell returns the cell content the request would write
func (r Request) Cell() Cell {
	return Cell{Glyph: r.Glyph, Color: r.Color, Z: r.Z}
}
