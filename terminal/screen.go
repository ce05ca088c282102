package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Screen is an output surface backed by a tcell.Screen
// Cursor and color are latched until WriteGlyph; Flush shows the frame
type Screen struct {
	screen    tcell.Screen
	cellWidth int

	x, y  int
	style tcell.Style
}

// NewScreen wraps an initialized tcell screen
// cellWidth is the number of terminal columns per grid cell (minimum 1)
func NewScreen(screen tcell.Screen, cellWidth int) *Screen {
	return &Screen{
		screen:    screen,
		cellWidth: max(cellWidth, 1),
		style:     tcell.StyleDefault.Foreground(TcellColor(White)),
	}
}

// TcellColor maps a palette color to the terminal's own palette entry
func TcellColor(c Color) tcell.Color {
	return tcell.PaletteColor(int(c.ANSI()))
}

// Tcell returns the underlying screen
func (s *Screen) Tcell() tcell.Screen {
	return s.screen
}

// SetCursor latches the cell position for the next glyph
func (s *Screen) SetCursor(x, y int) {
	s.x = x
	s.y = y
}

// SetForeground latches the glyph color
func (s *Screen) SetForeground(c Color) {
	s.style = tcell.StyleDefault.Foreground(TcellColor(c))
}

// WriteGlyph places each grapheme cluster of glyph starting at the latched cell
// A cluster occupies as many columns as its display width; an empty glyph blanks the cell
func (s *Screen) WriteGlyph(glyph string) {
	col := s.x * s.cellWidth
	if glyph == "" {
		s.screen.SetContent(col, s.y, ' ', nil, s.style)
		return
	}
	g := uniseg.NewGraphemes(glyph)
	for g.Next() {
		runes := g.Runes()
		s.screen.SetContent(col, s.y, runes[0], runes[1:], s.style)
		col += max(runewidth.StringWidth(g.Str()), 1)
	}
}

// Flush makes the written content visible
func (s *Screen) Flush() error {
	s.screen.Show()
	return nil
}
