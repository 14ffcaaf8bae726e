package fuelcell

import (
	"image/color"

	"fuelcell/internal/core"
)

const (
	markerRadius = 10
	oxygenRadius = 14
	waterRadius  = 16
	wireWidth    = 3
	outlineWidth = 4
)

var (
	colorBackground  = toRGBA(color.NRGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 255})
	colorElectrode   = toRGBA(color.NRGBA{R: 0xbd, G: 0xc3, B: 0xc7, A: 255})
	colorElectrolyte = toRGBA(color.NRGBA{R: 173, G: 216, B: 230, A: 153})
	colorBorder      = toRGBA(color.NRGBA{R: 0x1a, G: 0x52, B: 0x76, A: 255})
	colorWire        = toRGBA(color.NRGBA{R: 0xf1, G: 0xc4, B: 0x0f, A: 255})
	colorLEDOn       = toRGBA(color.NRGBA{R: 0xff, G: 0x47, B: 0x57, A: 255})
	colorLEDOff      = toRGBA(color.NRGBA{R: 0x95, G: 0xa5, B: 0xa6, A: 255})
	colorLEDRim      = toRGBA(color.NRGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 255})
	colorOutline     = toRGBA(color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 255})
	colorAnodeText   = toRGBA(color.NRGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 255})
	colorWhite       = toRGBA(color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	colorMarker      = toRGBA(color.NRGBA{R: 255, G: 255, B: 255, A: 230})
	colorMinusText   = toRGBA(color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 255})
	colorPlusText    = toRGBA(color.NRGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 255})
	colorAtomFill    = toRGBA(color.NRGBA{R: 230, G: 230, B: 255, A: 242})
	colorAtomRim     = toRGBA(color.NRGBA{R: 120, G: 120, B: 200, A: 230})
	colorAtomText    = toRGBA(color.NRGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 255})
	colorProtonFill  = toRGBA(color.NRGBA{R: 255, G: 245, B: 235, A: 242})
	colorProtonRim   = toRGBA(color.NRGBA{R: 220, G: 90, B: 80, A: 242})
	colorProtonText  = toRGBA(color.NRGBA{R: 0xc0, G: 0x39, B: 0x2b, A: 255})
	colorOxygenFill  = toRGBA(color.NRGBA{R: 200, G: 230, B: 255, A: 242})
	colorOxygenRim   = toRGBA(color.NRGBA{R: 90, G: 140, B: 180, A: 242})
	colorOxygenText  = toRGBA(color.NRGBA{R: 0x0a, G: 0x3b, B: 0x5a, A: 255})
	colorWaterFill   = toRGBA(color.NRGBA{R: 100, G: 160, B: 255, A: 242})
)

func toRGBA(c color.NRGBA) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// Scene builds the drawable shapes for the current state, back to front.
func (w *World) Scene() core.Scene {
	g := w.geom
	st := &w.state
	shapes := make([]core.Shape, 0, 32+len(st.Atoms)+len(st.Water)+len(st.Markers))

	shapes = appendWiresAndLED(shapes, g, st.Indicator.On)
	shapes = append(shapes,
		rectShape(g.Anode, colorElectrode),
		rectShape(g.Electrolyte, colorElectrolyte),
		rectShape(g.LeftBorder, colorBorder),
		rectShape(g.RightBorder, colorBorder),
		rectShape(g.Cathode, colorElectrode),
	)

	for _, m := range st.Markers {
		shapes = append(shapes, markerShape(m))
	}
	for _, a := range st.Atoms {
		shapes = append(shapes, atomShape(a, w.cfg.Params.Radius))
	}
	if st.Oxygen != nil {
		shapes = append(shapes, core.Shape{
			Kind:        core.ShapeCircle,
			X:           st.Oxygen.X,
			Y:           st.Oxygen.Y,
			R:           oxygenRadius,
			Fill:        colorOxygenFill,
			Stroke:      colorOxygenRim,
			StrokeWidth: 2,
			Label:       "O",
			LabelColor:  colorOxygenText,
		})
	}
	for _, drop := range st.Water {
		shapes = append(shapes, core.Shape{
			Kind:       core.ShapeCircle,
			X:          drop.X,
			Y:          drop.Y,
			R:          waterRadius,
			Fill:       colorWaterFill,
			Label:      "H₂O",
			LabelColor: colorWhite,
			Fade:       1 - drop.Opacity,
		})
	}

	shapes = appendOutlineAndLabels(shapes, g)

	return core.Scene{
		Width:      w.cfg.Width,
		Height:     w.cfg.Height,
		Background: colorBackground,
		Shapes:     shapes,
	}
}

func rectShape(r Rect, fill color.RGBA) core.Shape {
	return core.Shape{Kind: core.ShapeRect, X: r.X, Y: r.Y, W: r.W, H: r.H, Fill: fill}
}

func pathShape(stroke color.RGBA, width float64, pts ...core.Point) core.Shape {
	return core.Shape{Kind: core.ShapePath, Points: pts, Stroke: stroke, StrokeWidth: width}
}

func textShape(label string, x, y float64, c color.RGBA) core.Shape {
	return core.Shape{Kind: core.ShapeText, X: x, Y: y, Label: label, LabelColor: c}
}

func markerShape(m IonMarker) core.Shape {
	s := core.Shape{
		Kind:  core.ShapeCircle,
		X:     m.X,
		Y:     m.Y,
		R:     markerRadius,
		Fill:  colorMarker,
		Label: "+",
	}
	s.LabelColor = colorPlusText
	if m.Sign == IonMinus {
		s.Label = "-"
		s.LabelColor = colorMinusText
	}
	return s
}

func atomShape(a HydrogenAtom, radius float64) core.Shape {
	s := core.Shape{
		Kind:        core.ShapeCircle,
		X:           a.X,
		Y:           a.Y,
		R:           radius,
		Fill:        colorAtomFill,
		Stroke:      colorAtomRim,
		StrokeWidth: 2,
		Label:       a.Label,
		LabelColor:  colorAtomText,
	}
	if a.Ionized {
		s.Fill = colorProtonFill
		s.Stroke = colorProtonRim
		s.StrokeWidth = 2.5
		s.LabelColor = colorProtonText
	}
	return s
}

func appendWiresAndLED(shapes []core.Shape, g Geometry, on bool) []core.Shape {
	led := g.LED
	turnY := g.Cell.Y - wireRise
	endY := led.MidY()
	shapes = append(shapes,
		pathShape(colorWire, wireWidth,
			core.Point{X: g.Electrolyte.X, Y: g.Cell.Y},
			core.Point{X: g.Electrolyte.X, Y: turnY},
			core.Point{X: led.X, Y: turnY},
			core.Point{X: led.X, Y: endY},
		),
		pathShape(colorWire, wireWidth,
			core.Point{X: g.Electrolyte.Right(), Y: g.Cell.Y},
			core.Point{X: g.Electrolyte.Right(), Y: turnY},
			core.Point{X: led.Right(), Y: turnY},
			core.Point{X: led.Right(), Y: endY},
		),
	)

	fill := colorLEDOff
	if on {
		fill = colorLEDOn
		// glow
		shapes = append(shapes, core.Shape{
			Kind: core.ShapeRect,
			X:    led.X - 4, Y: led.Y - 4, W: led.W + 8, H: led.H + 8,
			Fill: colorLEDOn,
			Fade: 0.7,
		})
	}
	shapes = append(shapes,
		core.Shape{
			Kind: core.ShapeRect,
			X:    led.X, Y: led.Y, W: led.W, H: led.H,
			Fill:        fill,
			Stroke:      colorLEDRim,
			StrokeWidth: 2,
		},
		textShape("LED", led.MidX(), led.Y-10, colorWhite),
		textShape("-", led.X+led.W/4, led.MidY(), colorWhite),
		textShape("+", led.Right()-led.W/4, led.MidY(), colorWhite),
	)
	return shapes
}

func appendOutlineAndLabels(shapes []core.Shape, g Geometry) []core.Shape {
	c := g.Cell
	gapTop := c.Y + (c.H-gasGap)/2
	gapBottom := gapTop + gasGap
	shapes = append(shapes,
		pathShape(colorOutline, outlineWidth, core.Point{X: c.X, Y: c.Y}, core.Point{X: c.Right(), Y: c.Y}),
		pathShape(colorOutline, outlineWidth, core.Point{X: c.X, Y: c.Bottom()}, core.Point{X: c.Right(), Y: c.Bottom()}),
		pathShape(colorOutline, outlineWidth, core.Point{X: c.X, Y: c.Y}, core.Point{X: c.X, Y: gapTop}),
		pathShape(colorOutline, outlineWidth, core.Point{X: c.X, Y: gapBottom}, core.Point{X: c.X, Y: c.Bottom()}),
		pathShape(colorOutline, outlineWidth, core.Point{X: c.Right(), Y: c.Y}, core.Point{X: c.Right(), Y: gapTop}),
		pathShape(colorOutline, outlineWidth, core.Point{X: c.Right(), Y: gapBottom}, core.Point{X: c.Right(), Y: c.Bottom()}),
		textShape("ELECTROLYTE", g.Electrolyte.MidX(), g.Electrolyte.MidY(), colorWhite),
		textShape("ANODE", g.Anode.MidX(), g.Anode.Y-20, colorAnodeText),
		textShape("CATHODE", g.Cathode.MidX(), g.Cathode.Y-20, colorOutline),
	)
	return shapes
}
