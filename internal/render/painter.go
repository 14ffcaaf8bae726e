//go:build ebiten

package render

import (
	"image/color"

	"fuelcell/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// ScenePainter draws a core.Scene onto an ebiten image using vector paths.
type ScenePainter struct {
	face font.Face
}

// NewScenePainter constructs a painter using the 7x13 bitmap face for labels.
func NewScenePainter() *ScenePainter {
	return &ScenePainter{face: basicfont.Face7x13}
}

// Draw paints the scene at the given scale. Shapes are drawn in scene order.
func (p *ScenePainter) Draw(dst *ebiten.Image, scene core.Scene, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	dst.Fill(scene.Background)
	for _, s := range scene.Shapes {
		alpha := s.Alpha()
		if alpha <= 0 {
			continue
		}
		switch s.Kind {
		case core.ShapeRect:
			p.drawRect(dst, s, alpha, scale)
		case core.ShapeCircle:
			p.drawCircle(dst, s, alpha, scale)
		case core.ShapePath:
			p.drawPath(dst, s, alpha, scale)
		case core.ShapeText:
			p.drawText(dst, s.Label, s.X*scale, s.Y*scale, Fade(s.LabelColor, alpha))
		}
	}
}

func (p *ScenePainter) drawRect(dst *ebiten.Image, s core.Shape, alpha, scale float64) {
	x, y := float32(s.X*scale), float32(s.Y*scale)
	w, h := float32(s.W*scale), float32(s.H*scale)
	if s.Fill.A > 0 {
		vector.DrawFilledRect(dst, x, y, w, h, Fade(s.Fill, alpha), false)
	}
	if s.StrokeWidth > 0 && s.Stroke.A > 0 {
		vector.StrokeRect(dst, x, y, w, h, float32(s.StrokeWidth*scale), Fade(s.Stroke, alpha), true)
	}
}

func (p *ScenePainter) drawCircle(dst *ebiten.Image, s core.Shape, alpha, scale float64) {
	cx, cy, r := float32(s.X*scale), float32(s.Y*scale), float32(s.R*scale)
	if s.Fill.A > 0 {
		vector.DrawFilledCircle(dst, cx, cy, r, Fade(s.Fill, alpha), true)
	}
	if s.StrokeWidth > 0 && s.Stroke.A > 0 {
		vector.StrokeCircle(dst, cx, cy, r, float32(s.StrokeWidth*scale), Fade(s.Stroke, alpha), true)
	}
	if s.Label != "" {
		p.drawText(dst, s.Label, s.X*scale, s.Y*scale, Fade(s.LabelColor, alpha))
	}
}

func (p *ScenePainter) drawPath(dst *ebiten.Image, s core.Shape, alpha, scale float64) {
	if len(s.Points) < 2 || s.Stroke.A == 0 {
		return
	}
	width := s.StrokeWidth
	if width <= 0 {
		width = 1
	}
	col := Fade(s.Stroke, alpha)
	for i := 1; i < len(s.Points); i++ {
		a, b := s.Points[i-1], s.Points[i]
		vector.StrokeLine(dst,
			float32(a.X*scale), float32(a.Y*scale),
			float32(b.X*scale), float32(b.Y*scale),
			float32(width*scale), col, true)
	}
}

// drawText centers label on (x, y).
func (p *ScenePainter) drawText(dst *ebiten.Image, label string, x, y float64, col color.RGBA) {
	if label == "" || col.A == 0 {
		return
	}
	label = PlainLabel(label)
	bounds := text.BoundString(p.face, label)
	tx := int(x) - bounds.Dx()/2
	ty := int(y) + bounds.Dy()/2
	text.Draw(dst, label, p.face, tx, ty, col)
}
