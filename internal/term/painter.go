// Package term renders the fuel cell scene in a terminal with tcell and
// drives it from keyboard input.
package term

import (
	"image/color"

	"fuelcell/internal/core"
	"fuelcell/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Painter rasterizes scenes into terminal cells. The bottom row is reserved
// for a status line.
type Painter struct {
	canvas *render.Canvas
}

// NewPainter returns an empty painter; the canvas is sized on first draw.
func NewPainter() *Painter {
	return &Painter{canvas: render.NewCanvas(0, 0)}
}

// Draw paints scene and status onto screen. It does not call Show.
func (p *Painter) Draw(screen tcell.Screen, scene core.Scene, status string) {
	w, h := screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	rows := h - 1
	if rows < 1 {
		rows = h
		status = ""
	}
	if p.canvas.W != w || p.canvas.H != rows {
		p.canvas = render.NewCanvas(w, rows)
	}
	p.canvas.Paint(scene)

	for y := 0; y < rows; y++ {
		for x := 0; x < w; x++ {
			screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(rgb(p.canvas.At(x, y))))
		}
	}
	for _, l := range p.canvas.Labels {
		x := l.X
		for _, r := range l.Text {
			if x >= 0 && x < w && l.Y >= 0 && l.Y < rows {
				bg := p.canvas.At(x, l.Y)
				fg := render.Blend(bg, l.Color)
				screen.SetContent(x, l.Y, r, nil, tcell.StyleDefault.Background(rgb(bg)).Foreground(rgb(fg)))
			}
			x++
		}
	}
	if status != "" {
		drawStatus(screen, h-1, w, status)
	}
}

func drawStatus(screen tcell.Screen, y, w int, status string) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	x := 0
	for _, r := range status {
		if x >= w {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// rgb drops alpha; canvas cells are composed over an opaque background.
func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
