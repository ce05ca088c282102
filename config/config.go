// Package config loads display settings from TOML
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/glyphgrid/core"
	"github.com/lixenwraith/glyphgrid/terminal"
)

// Surface kinds accepted by the surface field
const (
	SurfaceTcell  = "tcell"
	SurfaceANSI   = "ansi"
	SurfaceRecord = "record"
)

// Config holds display settings. Zero-valued fields in a file keep their defaults
type Config struct {
	Width          int            `toml:"width"`
	Height         int            `toml:"height"`
	BaseColor      terminal.Color `toml:"base_color"`
	EmptyGlyph     string         `toml:"empty_glyph"`
	CellWidth      int            `toml:"cell_width"`
	Surface        string         `toml:"surface"`
	Strict         bool           `toml:"strict"`
	ReportClipping bool           `toml:"report_clipping"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Width:      28,
		Height:     28,
		BaseColor:  terminal.DarkCyan,
		EmptyGlyph: " ",
		CellWidth:  terminal.DefaultCellWidth,
		Surface:    SurfaceTcell,
	}
}

// Resolution returns the grid size
func (c Config) Resolution() core.Resolution {
	return core.Resolution{Width: c.Width, Height: c.Height}
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("resolution %dx%d must be positive", c.Width, c.Height))
	}
	if c.CellWidth < 1 {
		errs = append(errs, fmt.Errorf("cell_width %d must be at least 1", c.CellWidth))
	}
	if c.EmptyGlyph == "" {
		errs = append(errs, errors.New("empty_glyph must not be empty"))
	}
	if !c.BaseColor.Valid() {
		errs = append(errs, fmt.Errorf("base_color %d is not a palette color", uint8(c.BaseColor)))
	}
	switch c.Surface {
	case SurfaceTcell, SurfaceANSI, SurfaceRecord:
	default:
		errs = append(errs, fmt.Errorf("surface %q must be one of %s, %s, %s",
			c.Surface, SurfaceTcell, SurfaceANSI, SurfaceRecord))
	}
	return errors.Join(errs...)
}

// Parse decodes TOML over the defaults and validates the result
// Unknown keys are rejected
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config: unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Load reads and parses the file at path
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), err
	}
	return Parse(string(data))
}

// Write encodes cfg as TOML
func Write(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
