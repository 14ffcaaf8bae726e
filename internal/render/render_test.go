package render

import (
	"image/color"
	"testing"

	"fuelcell/internal/core"
	"fuelcell/internal/sims/fuelcell"
)

func TestFade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	if got := Fade(c, 1); got != c {
		t.Fatalf("full alpha changed color: %v", got)
	}
	if got := Fade(c, 0); got != (color.RGBA{}) {
		t.Fatalf("zero alpha should be transparent, got %v", got)
	}
	if got := Fade(c, 0.5); got != (color.RGBA{R: 100, G: 50, B: 25, A: 128}) {
		t.Fatalf("half alpha: %v", got)
	}
}

func TestBlend(t *testing.T) {
	dst := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	opaque := color.RGBA{R: 255, A: 255}
	if got := Blend(dst, opaque); got != opaque {
		t.Fatalf("opaque src should replace dst, got %v", got)
	}
	if got := Blend(dst, color.RGBA{}); got != dst {
		t.Fatalf("transparent src should keep dst, got %v", got)
	}
	half := Blend(dst, Fade(opaque, 0.5))
	if half.R != 128 || half.B != 127 || half.A != 255 {
		t.Fatalf("half blend: %v", half)
	}
}

func TestPlainLabel(t *testing.T) {
	if got := PlainLabel("H₂O"); got != "H2O" {
		t.Fatalf("plain label %q", got)
	}
	if got := PlainLabel("H+"); got != "H+" {
		t.Fatalf("ascii label changed: %q", got)
	}
}

func TestCanvasPaintsShapesInOrder(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	bg := color.RGBA{A: 255}
	scene := core.Scene{
		Width:      100,
		Height:     100,
		Background: bg,
		Shapes: []core.Shape{
			{Kind: core.ShapeRect, X: 0, Y: 0, W: 50, H: 100, Fill: red},
			{Kind: core.ShapeCircle, X: 25, Y: 55, R: 20, Fill: blue, Label: "O", LabelColor: red},
			{Kind: core.ShapePath, Points: []core.Point{{X: 60, Y: 5}, {X: 100, Y: 5}}, Stroke: blue},
			{Kind: core.ShapeText, X: 75, Y: 80, Label: "ANODE", LabelColor: red},
		},
	}
	c := NewCanvas(10, 10)
	c.Paint(scene)

	if got := c.At(0, 0); !near(got, red) {
		t.Fatalf("rect cell %v, want red", got)
	}
	if got := c.At(2, 5); !near(got, blue) {
		t.Fatalf("circle cell %v, want blue over red", got)
	}
	if got := c.At(8, 8); got != bg {
		t.Fatalf("empty cell %v, want background", got)
	}
	for x := 6; x <= 9; x++ {
		if got := c.At(x, 0); !near(got, blue) {
			t.Fatalf("path cell (%d,0) %v, want blue", x, got)
		}
	}
	if len(c.Labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(c.Labels))
	}
	if l := c.Labels[1]; l.Text != "ANODE" || l.X != 5 || l.Y != 8 {
		t.Fatalf("unexpected text label %+v", l)
	}
}

func TestCanvasBlendsPartialCoverage(t *testing.T) {
	bg := color.RGBA{A: 255}
	scene := core.Scene{
		Width:      10,
		Height:     10,
		Background: bg,
		Shapes: []core.Shape{
			{Kind: core.ShapeRect, X: 0, Y: 0, W: 2.5, H: 10, Fill: color.RGBA{R: 255, A: 255}},
		},
	}
	c := NewCanvas(10, 10)
	c.Paint(scene)
	if got := c.At(1, 4); got.R < 250 {
		t.Fatalf("covered cell %v", got)
	}
	if got := c.At(2, 4); got.R < 110 || got.R > 145 || got.A != 255 {
		t.Fatalf("half covered cell %v, want about half red", got)
	}
	if got := c.At(3, 4); got != bg {
		t.Fatalf("uncovered cell %v", got)
	}
}

func TestCanvasKeepsTinyCirclesVisible(t *testing.T) {
	bg := color.RGBA{A: 255}
	scene := core.Scene{
		Width:      800,
		Height:     500,
		Background: bg,
		Shapes: []core.Shape{
			{Kind: core.ShapeCircle, X: 405, Y: 250, R: 2, Fill: color.RGBA{G: 255, A: 255}},
		},
	}
	c := NewCanvas(80, 25)
	c.Paint(scene)
	if got := c.At(40, 12); got.G == 0 {
		t.Fatalf("tiny circle vanished: %v", got)
	}
}

func near(a, b color.RGBA) bool {
	d := func(x, y uint8) bool { return x-y < 8 || y-x < 8 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestCanvasSkipsFullyFadedShapes(t *testing.T) {
	bg := color.RGBA{A: 255}
	scene := core.Scene{
		Width:      10,
		Height:     10,
		Background: bg,
		Shapes: []core.Shape{
			{Kind: core.ShapeCircle, X: 5, Y: 5, R: 4, Fill: color.RGBA{G: 255, A: 255}, Label: "H₂O", Fade: 1},
		},
	}
	c := NewCanvas(10, 10)
	c.Paint(scene)
	if got := c.At(5, 5); got != bg {
		t.Fatalf("faded circle still painted: %v", got)
	}
	if len(c.Labels) != 0 {
		t.Fatalf("faded label still emitted: %+v", c.Labels)
	}
}

func TestCanvasImageMatchesCells(t *testing.T) {
	w := fuelcell.New(800, 500)
	w.Step(0)
	c := NewCanvas(80, 25)
	c.Paint(w.Scene())
	img := c.Image()
	if img.Bounds().Dx() != 80 || img.Bounds().Dy() != 25 {
		t.Fatalf("image bounds %v", img.Bounds())
	}
	for _, pt := range [][2]int{{0, 0}, {15, 12}, {40, 12}, {79, 24}} {
		want := c.At(pt[0], pt[1])
		if got := img.RGBAAt(pt[0], pt[1]); got != want {
			t.Fatalf("pixel %v = %v, want %v", pt, got, want)
		}
	}
	found := false
	for _, l := range c.Labels {
		if l.Text == "ELECTROLYTE" {
			found = true
		}
	}
	if !found {
		t.Fatal("ELECTROLYTE label missing from canvas")
	}
}
