// @focus: #sys { term }
// Package terminal provides the output surfaces a display presents to.
//
// Surfaces implement three primitives: position the cursor on a grid cell, select a
// foreground color from the fixed console palette, and write a glyph.
//
// Implementations:
//   - ANSI: raw escape sequences on any io.Writer, colors encoded per termenv profile
//   - Screen: adapter over a tcell.Screen
//   - Recorder: in-memory log of calls for headless runs and tests
//
// Grid cells map to terminal columns through a cell width (default 2 columns per cell).
package terminal
