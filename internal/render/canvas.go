package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"fuelcell/internal/core"
)

// Label is a piece of text anchored on a canvas cell.
type Label struct {
	X, Y  int
	Text  string
	Color color.RGBA
}

// Canvas rasterizes a scene into a coarse grid of premultiplied colors. It
// backs the terminal renderer, where one cell covers many scene units. Only
// fills are rasterized for rects and circles; strokes are drawn for paths.
// Edges are anti-aliased, so a partly covered cell gets a blended color.
type Canvas struct {
	W, H   int
	Labels []Label

	img  *image.RGBA
	mask *image.Alpha
	z    *vector.Rasterizer

	sx, sy float64
}

// NewCanvas allocates a canvas of w*h cells.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	bounds := image.Rect(0, 0, w, h)
	return &Canvas{
		W:    w,
		H:    h,
		img:  image.NewRGBA(bounds),
		mask: image.NewAlpha(bounds),
		z:    vector.NewRasterizer(w, h),
	}
}

// At returns the color of cell (x, y), or transparent black when out of range.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return color.RGBA{}
	}
	return c.img.RGBAAt(x, y)
}

// Paint clears the canvas to the scene background and draws every shape in
// order, stretching the scene surface over the whole canvas.
func (c *Canvas) Paint(scene core.Scene) {
	c.Labels = c.Labels[:0]
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(scene.Background), image.Point{}, draw.Src)
	if scene.Width <= 0 || scene.Height <= 0 || c.W == 0 || c.H == 0 {
		return
	}
	c.sx = float64(c.W) / float64(scene.Width)
	c.sy = float64(c.H) / float64(scene.Height)

	for _, s := range scene.Shapes {
		alpha := s.Alpha()
		if alpha <= 0 {
			continue
		}
		switch s.Kind {
		case core.ShapeRect:
			if s.Fill.A > 0 {
				c.rect(s.X, s.Y, s.W, s.H)
				c.fill(Fade(s.Fill, alpha))
			}
		case core.ShapeCircle:
			if s.Fill.A > 0 {
				c.ellipse(s.X, s.Y, s.R)
				c.fill(Fade(s.Fill, alpha))
			}
			if s.Label != "" {
				c.addLabel(s.X, s.Y, s.Label, Fade(s.LabelColor, alpha))
			}
		case core.ShapePath:
			col := Fade(s.Stroke, alpha)
			for i := 1; i < len(s.Points); i++ {
				if c.segment(s.Points[i-1], s.Points[i], s.StrokeWidth) {
					c.fill(col)
				}
			}
		case core.ShapeText:
			c.addLabel(s.X, s.Y, s.Label, Fade(s.LabelColor, alpha))
		}
	}
}

// Image returns a copy of the canvas as an RGBA image.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(c.img.Bounds())
	copy(img.Pix, c.img.Pix)
	return img
}

// fill rasterizes the pending path into the coverage mask and composites col
// through it.
func (c *Canvas) fill(col color.RGBA) {
	c.z.DrawOp = draw.Src
	c.z.Draw(c.mask, c.mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, c.mask, image.Point{}, draw.Over)
	c.z.Reset(c.W, c.H)
}

func (c *Canvas) rect(x, y, w, h float64) {
	x0, y0 := float32(x*c.sx), float32(y*c.sy)
	x1, y1 := float32((x+w)*c.sx), float32((y+h)*c.sy)
	c.z.MoveTo(x0, y0)
	c.z.LineTo(x1, y0)
	c.z.LineTo(x1, y1)
	c.z.LineTo(x0, y1)
	c.z.ClosePath()
}

// ellipse traces the circle of radius r as four cubic arcs. Cells are not
// square, so the circle becomes an ellipse on the grid. Radii below half a
// cell are raised so small particles stay visible.
func (c *Canvas) ellipse(x, y, r float64) {
	const k = 0.5522848
	cx, cy := float32(x*c.sx), float32(y*c.sy)
	rx := float32(math.Max(r*c.sx, 0.5))
	ry := float32(math.Max(r*c.sy, 0.5))
	c.z.MoveTo(cx+rx, cy)
	c.z.CubeTo(cx+rx, cy+k*ry, cx+k*rx, cy+ry, cx, cy+ry)
	c.z.CubeTo(cx-k*rx, cy+ry, cx-rx, cy+k*ry, cx-rx, cy)
	c.z.CubeTo(cx-rx, cy-k*ry, cx-k*rx, cy-ry, cx, cy-ry)
	c.z.CubeTo(cx+k*rx, cy-ry, cx+rx, cy-k*ry, cx+rx, cy)
	c.z.ClosePath()
}

// segment traces the line a-b as a quad at least one cell wide. It reports
// false for a zero-length segment.
func (c *Canvas) segment(a, b core.Point, width float64) bool {
	ax, ay := a.X*c.sx, a.Y*c.sy
	bx, by := b.X*c.sx, b.Y*c.sy
	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	if length == 0 {
		return false
	}
	half := math.Max(width*math.Min(c.sx, c.sy), 1) / 2
	nx, ny := -dy/length*half, dx/length*half
	c.z.MoveTo(float32(ax+nx), float32(ay+ny))
	c.z.LineTo(float32(bx+nx), float32(by+ny))
	c.z.LineTo(float32(bx-nx), float32(by-ny))
	c.z.LineTo(float32(ax-nx), float32(ay-ny))
	c.z.ClosePath()
	return true
}

func (c *Canvas) addLabel(x, y float64, text string, col color.RGBA) {
	width := len([]rune(text))
	cx := int(math.Floor(x*c.sx)) - width/2
	cy := int(math.Floor(y * c.sy))
	c.Labels = append(c.Labels, Label{X: cx, Y: cy, Text: text, Color: col})
}
