package render

// Surface is the output device a Display presents to
// Coordinates are grid cells; mapping cells to device columns is the surface's concern
type Surface interface {
	SetCursor(x, y int)
	SetForeground(c Color)
	WriteGlyph(glyph string)
}

// Flusher is optionally implemented by surfaces that buffer output
// Flush is called once at the end of every present that wrote cells
type Flusher interface {
	Flush() error
}
