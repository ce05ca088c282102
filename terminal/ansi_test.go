package terminal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestANSI(profile termenv.Profile, cellWidth int) (*ANSI, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewANSI(&buf, WithProfile(profile), WithCellWidth(cellWidth)), &buf
}

func TestANSIWritesNothingUntilFlush(t *testing.T) {
	a, buf := newTestANSI(termenv.ANSI, 2)
	a.SetCursor(1, 1)
	a.SetForeground(Red)
	a.WriteGlyph("#")
	assert.Zero(t, buf.Len())

	require.NoError(t, a.Flush())
	assert.NotZero(t, buf.Len())
}

func TestANSISequence(t *testing.T) {
	tests := []struct {
		name    string
		profile termenv.Profile
		want    string
	}{
		{"16 colors", termenv.ANSI, "\x1b[91m\x1b[2;7H#\x1b[0m"},
		{"256 colors", termenv.ANSI256, "\x1b[38;5;196m\x1b[2;7H#\x1b[0m"},
		{"true color", termenv.TrueColor, "\x1b[38;2;255;0;0m\x1b[2;7H#\x1b[0m"},
		{"no color", termenv.Ascii, "\x1b[2;7H#\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, buf := newTestANSI(tt.profile, 2)
			a.SetCursor(3, 1)
			a.SetForeground(Red)
			a.WriteGlyph("#")
			require.NoError(t, a.Flush())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestANSICoalescesColorAndCursor(t *testing.T) {
	a, buf := newTestANSI(termenv.ANSI, 1)

	a.SetCursor(0, 0)
	a.SetForeground(Green)
	a.WriteGlyph("a")
	a.SetCursor(1, 0)
	a.SetForeground(Green)
	a.WriteGlyph("b")
	a.SetCursor(5, 0)
	a.SetForeground(Blue)
	a.WriteGlyph("c")
	require.NoError(t, a.Flush())

	assert.Equal(t, "\x1b[92m\x1b[1;1Hab\x1b[94m\x1b[1;6Hc\x1b[0m", buf.String())
}

func TestANSICellWidthScalesColumns(t *testing.T) {
	a, buf := newTestANSI(termenv.Ascii, 2)

	a.SetCursor(0, 0)
	a.WriteGlyph("x")
	a.SetCursor(1, 0)
	a.WriteGlyph("y")
	require.NoError(t, a.Flush())

	// The cursor sits one column short of the next cell after a narrow glyph
	assert.Equal(t, "\x1b[1;1Hx\x1b[1;3Hy\x1b[0m", buf.String())
}

func TestANSIWideGlyphAdvancesCursor(t *testing.T) {
	a, buf := newTestANSI(termenv.Ascii, 2)

	a.SetCursor(0, 0)
	a.WriteGlyph("漢")
	a.SetCursor(1, 0)
	a.WriteGlyph("字")
	require.NoError(t, a.Flush())

	assert.Equal(t, "\x1b[1;1H漢字\x1b[0m", buf.String())
}

func TestANSIColorResetAfterFlush(t *testing.T) {
	a, buf := newTestANSI(termenv.ANSI, 1)

	a.SetForeground(Red)
	require.NoError(t, a.Flush())
	buf.Reset()

	// Flush resets attributes, so the same color must be emitted again
	a.SetForeground(Red)
	require.NoError(t, a.Flush())
	assert.Equal(t, "\x1b[91m\x1b[0m", buf.String())
}

func TestANSIFlushEmitsPendingCursor(t *testing.T) {
	tests := []struct {
		name string
		draw func(a *ANSI)
		want string
	}{
		{
			name: "move without glyph",
			draw: func(a *ANSI) { a.SetCursor(0, 3) },
			want: "\x1b[4;1H\x1b[0m",
		},
		{
			name: "move after glyph",
			draw: func(a *ANSI) {
				a.SetCursor(2, 0)
				a.WriteGlyph("#")
				a.SetCursor(0, 2)
			},
			want: "\x1b[1;5H#\x1b[3;1H\x1b[0m",
		},
		{
			name: "cursor already in place",
			draw: func(a *ANSI) {
				a.SetCursor(0, 0)
				a.WriteGlyph("ab")
				a.SetCursor(1, 0)
			},
			want: "\x1b[1;1Hab\x1b[0m",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, buf := newTestANSI(termenv.Ascii, 2)
			tt.draw(a)
			require.NoError(t, a.Flush())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestANSIPendingCursorEmittedOnce(t *testing.T) {
	a, buf := newTestANSI(termenv.Ascii, 1)
	a.SetCursor(0, 5)
	require.NoError(t, a.Flush())
	buf.Reset()

	require.NoError(t, a.Flush())
	assert.Equal(t, "\x1b[0m", buf.String())
}

func TestANSIClear(t *testing.T) {
	a, buf := newTestANSI(termenv.Ascii, 1)
	require.NoError(t, a.Clear())
	assert.Equal(t, "\x1b[2J\x1b[H", buf.String())

	// Home is tracked, so a glyph at the origin needs no move
	buf.Reset()
	a.SetCursor(0, 0)
	a.WriteGlyph("x")
	require.NoError(t, a.Flush())
	assert.Equal(t, "x\x1b[0m", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestANSIFlushError(t *testing.T) {
	a := NewANSI(failingWriter{}, WithProfile(termenv.Ascii))
	a.WriteGlyph("x")
	assert.Error(t, a.Flush())
}

func TestWriteCursorPosLargeValues(t *testing.T) {
	a, buf := newTestANSI(termenv.Ascii, 1)
	a.SetCursor(1234, 99)
	a.WriteGlyph(".")
	require.NoError(t, a.Flush())
	assert.Equal(t, "\x1b[100;1235H.\x1b[0m", buf.String())
}
