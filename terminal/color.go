package terminal

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color identifies one entry of the fixed 16-color console palette
// Ordering follows the classic console color numbering (DarkBlue = 1), not ANSI SGR order
type Color uint8

const (
	Black Color = iota
	DarkBlue
	DarkGreen
	DarkCyan
	DarkRed
	DarkMagenta
	DarkYellow
	Gray
	DarkGray
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White

	paletteSize
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

type paletteEntry struct {
	name string
	hex  string // Reference sRGB of the console palette
	ansi uint8  // SGR color index 0-15
}

var palette = [paletteSize]paletteEntry{
	Black:       {"black", "#000000", 0},
	DarkBlue:    {"darkblue", "#000080", 4},
	DarkGreen:   {"darkgreen", "#008000", 2},
	DarkCyan:    {"darkcyan", "#008080", 6},
	DarkRed:     {"darkred", "#800000", 1},
	DarkMagenta: {"darkmagenta", "#800080", 5},
	DarkYellow:  {"darkyellow", "#808000", 3},
	Gray:        {"gray", "#c0c0c0", 7},
	DarkGray:    {"darkgray", "#808080", 8},
	Blue:        {"blue", "#0000ff", 12},
	Green:       {"green", "#00ff00", 10},
	Cyan:        {"cyan", "#00ffff", 14},
	Red:         {"red", "#ff0000", 9},
	Magenta:     {"magenta", "#ff00ff", 13},
	Yellow:      {"yellow", "#ffff00", 11},
	White:       {"white", "#ffffff", 15},
}

// paletteRGB is decoded once from the hex table
var paletteRGB [paletteSize]RGB

func init() {
	for i, e := range palette {
		c, err := colorful.Hex(e.hex)
		if err != nil {
			panic(fmt.Sprintf("terminal: bad palette entry %q: %v", e.name, err))
		}
		r, g, b := c.RGB255()
		paletteRGB[i] = RGB{R: r, G: g, B: b}
	}
}

// Valid reports whether c is a palette member
func (c Color) Valid() bool {
	return c < paletteSize
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", uint8(c))
	}
	return palette[c].name
}

// RGB returns the reference 24-bit value, invalid colors map to white
func (c Color) RGB() RGB {
	if !c.Valid() {
		return paletteRGB[White]
	}
	return paletteRGB[c]
}

// Hex returns the reference value as #rrggbb
func (c Color) Hex() string {
	if !c.Valid() {
		return palette[White].hex
	}
	return palette[c].hex
}

// ANSI returns the SGR 16-color index (0-15)
func (c Color) ANSI() uint8 {
	if !c.Valid() {
		return palette[White].ansi
	}
	return palette[c].ansi
}

// Index256 returns the nearest xterm 256-color palette index of the reference value
func (c Color) Index256() uint8 {
	rgb := c.RGB()
	return RGBTo256(rgb)
}

// ParseColor resolves a palette name, case-insensitive, ignoring '_', '-' and spaces
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(name)
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	if key == "grey" {
		key = "gray"
	} else if key == "darkgrey" {
		key = "darkgray"
	}
	for i, e := range palette {
		if e.name == key {
			return Color(i), nil
		}
	}
	return White, fmt.Errorf("unknown color %q", name)
}

// MarshalText encodes the palette name, so config files can use names
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid color %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a palette name
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeLevel maps 0-255 to nearest cube index 0-5
func cubeLevel(v uint8) uint8 {
	best := 0
	bestDist := abs(int(v) - int(cubeValues[0]))
	for j := 1; j < len(cubeValues); j++ {
		d := abs(int(v) - int(cubeValues[j]))
		if d < bestDist {
			bestDist = d
			best = j
		}
	}
	return uint8(best)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 finds the nearest 256-color palette index for an RGB value
func RGBTo256(c RGB) uint8 {
	r, g, b := c.R, c.G, c.B

	// Grayscale ramp: 232-255 maps to luminance 8, 18, 28, ..., 238
	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray))

	cr, cg, cb := cubeLevel(r), cubeLevel(g), cubeLevel(b)

	if maxDiff < 10 {
		if gray < 4 {
			return 16
		}
		if gray > 243 {
			return 231
		}
		grayIdx := min(232+(gray-8)/10, 255)
		grayLevel := 8 + (grayIdx-232)*10
		grayDist := abs(int(r)-grayLevel) + abs(int(g)-grayLevel) + abs(int(b)-grayLevel)

		cubeDist := abs(int(r)-int(cubeValues[cr])) +
			abs(int(g)-int(cubeValues[cg])) +
			abs(int(b)-int(cubeValues[cb]))

		if grayDist < cubeDist {
			return uint8(grayIdx)
		}
	}

	return 16 + 36*cr + 6*cg + cb
}
