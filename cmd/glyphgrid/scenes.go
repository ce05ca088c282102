package main

import (
	"sort"

	"github.com/lixenwraith/glyphgrid/core"
	"github.com/lixenwraith/glyphgrid/render"
	"github.com/lixenwraith/glyphgrid/terminal"
)

type sceneFunc func(d *render.Display)

var scenes = map[string]sceneFunc{
	"triangle": sceneTriangle,
	"quad":     sceneQuad,
	"shapes":   sceneShapes,
	"text":     sceneText,
}

func sceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sceneTriangle(d *render.Display) {
	stroke := render.NewStyle("#", terminal.White)
	d.Triangle(core.Triangle{
		P0: core.Point{X: 4, Y: 5},
		P1: core.Point{X: 15, Y: 10},
		P2: core.Point{X: 7, Y: 20},
	}, render.Outline(stroke).WithFill(stroke.WithGlyph("%")))
}

func sceneQuad(d *render.Display) {
	d.Quad(core.Quad{
		P0: core.Point{X: 4, Y: 5},
		P1: core.Point{X: 16, Y: 8},
		P2: core.Point{X: 20, Y: 24},
		P3: core.Point{X: 7, Y: 21},
	}, render.Solid(render.NewStyle("#", terminal.Yellow)))
}

func sceneShapes(d *render.Display) {
	res := d.Resolution()
	frame := core.Area{Width: res.Width, Height: res.Height}

	d.Rect(frame.Rect(), render.Outline(render.NewStyle("+", terminal.DarkGray)))

	inner := frame.Inset(2)
	box := core.Area{X: inner.X, Y: inner.Y, Width: inner.Width / 2, Height: inner.Height / 2}
	d.Rect(box.Rect(), render.Solid(render.NewStyle(".", terminal.Blue).WithZ(render.ZFill)))

	center := inner.Center()
	d.Circle(core.Circle{Center: center, Radius: min(inner.Width, inner.Height) / 4},
		render.Outline(render.NewStyle("o", terminal.Red).WithZ(render.ZShape)).
			WithFill(render.NewStyle("*", terminal.Magenta).WithZ(render.ZShape)))

	d.Line(core.Line{P0: core.Point{X: inner.X, Y: inner.Y + inner.Height - 1}, P1: center},
		render.NewStyle("\\", terminal.Green).WithZ(render.ZShape))

	d.Text(core.Point{X: 1, Y: 0}, "glyphgrid", render.NewStyle("", terminal.Cyan).WithZ(render.ZOverlay))
}

func sceneText(d *render.Display) {
	s := render.NewStyle("", terminal.Green).WithZ(render.ZText)
	d.Text(core.Point{X: 2, Y: 2},
		"Text wraps at the right edge and restarts at its starting column.\nNewlines break explicitly: ✓ é 漢",
		s)
}
