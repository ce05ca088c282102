package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"

	"github.com/lixenwraith/glyphgrid/config"
	"github.com/lixenwraith/glyphgrid/render"
	"github.com/lixenwraith/glyphgrid/terminal"
)

var (
	configFlag  = flag.String("config", "", "TOML config file (defaults apply when empty)")
	surfaceFlag = flag.String("surface", "", "Output surface: tcell, ansi, record (overrides config)")
	sceneFlag   = flag.String("scene", "triangle", "Scene: "+strings.Join(sceneNames(), ", "))
	colorFlag   = flag.String("color", "auto", "ANSI color mode: auto, truecolor, 256, 16, none")
	strictFlag  = flag.Bool("strict", false, "Warn about degenerate triangles and non-convex quads")
	dumpFlag    = flag.Bool("dump-config", false, "Print the effective config as TOML and exit")
	verboseFlag = flag.Bool("v", false, "Debug logging to stderr")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	level := slog.LevelWarn
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			logger.Error("load config", "path", *configFlag, "err", err)
			return 1
		}
		cfg = loaded
	}
	if *surfaceFlag != "" {
		cfg.Surface = *surfaceFlag
	}
	if *strictFlag {
		cfg.Strict = true
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "err", err)
		return 1
	}

	if *dumpFlag {
		if err := config.Write(os.Stdout, cfg); err != nil {
			logger.Error("write config", "err", err)
			return 1
		}
		return 0
	}

	draw, ok := scenes[*sceneFlag]
	if !ok {
		logger.Error("unknown scene", "scene", *sceneFlag, "available", sceneNames())
		return 1
	}

	opts := []render.Option{
		render.WithLogger(logger),
		render.WithStrict(cfg.Strict),
	}
	if cfg.ReportClipping {
		opts = append(opts, render.WithClipHandler(func(r render.Request) {
			logger.Info("clipped", "at", r.At, "glyph", r.Glyph)
		}))
	}

	switch cfg.Surface {
	case config.SurfaceTcell:
		return runTcell(cfg, draw, opts, logger)
	case config.SurfaceANSI:
		return runANSI(cfg, draw, opts, logger)
	default:
		return runRecord(cfg, draw, opts, logger)
	}
}

// setup creates the display, configures it and draws the scene
func setup(cfg config.Config, surface render.Surface, draw sceneFunc, opts []render.Option) (*render.Display, error) {
	d, err := render.New(cfg.Resolution(), surface, opts...)
	if err != nil {
		return nil, err
	}
	if err := d.Configure(cfg.BaseColor, cfg.EmptyGlyph); err != nil {
		return nil, err
	}
	draw(d)
	if err := d.Present(); err != nil {
		return nil, err
	}
	return d, nil
}

func runTcell(cfg config.Config, draw sceneFunc, opts []render.Option, logger *slog.Logger) int {
	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error("create screen", "err", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		logger.Error("init screen", "err", err)
		return 1
	}

	// Restore the terminal before reporting a crash
	defer func() {
		screen.Fini()
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "glyphgrid crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	d, err := setup(cfg, terminal.NewScreen(screen, cfg.CellWidth), draw, opts)
	if err != nil {
		logger.Error("present", "err", err)
		return 1
	}

	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey:
			return 0
		case *tcell.EventResize:
			// Screen contents are lost on resize, repaint everything
			screen.Clear()
			d.Clear()
			draw(d)
			if err := d.Present(); err != nil {
				logger.Error("present", "err", err)
				return 1
			}
			screen.Sync()
		case nil:
			return 0
		}
	}
}

func runANSI(cfg config.Config, draw sceneFunc, opts []render.Option, logger *slog.Logger) int {
	ansiOpts := []terminal.ANSIOption{terminal.WithCellWidth(cfg.CellWidth)}
	if p, ok := parseProfile(*colorFlag); ok {
		ansiOpts = append(ansiOpts, terminal.WithProfile(p))
	}
	surface := terminal.NewANSI(os.Stdout, ansiOpts...)
	if err := surface.Clear(); err != nil {
		logger.Error("clear terminal", "err", err)
		return 1
	}

	if _, err := setup(cfg, surface, draw, opts); err != nil {
		logger.Error("present", "err", err)
		return 1
	}
	return 0
}

func runRecord(cfg config.Config, draw sceneFunc, opts []render.Option, logger *slog.Logger) int {
	rec := terminal.NewRecorder()
	if _, err := setup(cfg, rec, draw, opts); err != nil {
		logger.Error("present", "err", err)
		return 1
	}
	for _, row := range rec.Grid(cfg.Width, cfg.Height, cfg.EmptyGlyph) {
		fmt.Println(row)
	}
	return 0
}

// parseProfile maps the -color flag to a termenv profile, false means detect
func parseProfile(mode string) (termenv.Profile, bool) {
	switch mode {
	case "truecolor", "true", "24bit":
		return termenv.TrueColor, true
	case "256":
		return termenv.ANSI256, true
	case "16":
		return termenv.ANSI, true
	case "none", "ascii":
		return termenv.Ascii, true
	}
	return termenv.Ascii, false
}
