//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// DebugSource supplies the lifecycle summary for the overlay.
type DebugSource func() (DebugInfo, bool)

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	source    DebugSource
	scale     int
	showDebug bool
	showGrid  bool
	width     int
	height    int
}

// NewOverlay constructs a new overlay for a view of the given logical size.
func NewOverlay(source DebugSource, width, height, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{source: source, scale: scale, width: width, height: height}
}

// Update toggles panels: 1 shows the lifecycle readout, 2 a coordinate grid.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showDebug = !o.showDebug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showGrid {
		o.drawGrid(screen)
	}
	if o.showDebug && o.source != nil {
		if info, ok := o.source(); ok {
			o.drawDebug(screen, info)
		}
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image) {
	const spacing = 50
	col := color.RGBA{R: 90, G: 130, B: 170, A: 90}
	s := float32(o.scale)
	for x := 0; x <= o.width; x += spacing {
		vector.StrokeLine(screen, float32(x)*s, 0, float32(x)*s, float32(o.height)*s, 1, col, false)
	}
	for y := 0; y <= o.height; y += spacing {
		vector.StrokeLine(screen, 0, float32(y)*s, float32(o.width)*s, float32(y)*s, 1, col, false)
	}
}

func (o *Overlay) drawDebug(screen *ebiten.Image, info DebugInfo) {
	lines := DebugLines(info)
	face := basicfont.Face7x13
	const (
		pad        = 6
		lineHeight = 15
	)
	boxW := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > boxW {
			boxW = w
		}
	}
	boxW += 2 * pad
	boxH := len(lines)*lineHeight + 2*pad
	vector.DrawFilledRect(screen, 8, 8, float32(boxW), float32(boxH), color.RGBA{R: 10, G: 10, B: 16, A: 200}, false)
	for i, line := range lines {
		text.Draw(screen, line, face, 8+pad, 8+pad+(i+1)*lineHeight-3, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
