package core

import "image/color"

// ShapeKind enumerates the primitives a renderer must support.
type ShapeKind uint8

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
	ShapePath
	ShapeText
)

// Point is a position on the drawing surface.
type Point struct {
	X, Y float64
}

// Shape is a single positioned, optionally labeled primitive.
//
// Rects use X/Y as the top-left corner and W/H as the extent. Circles use X/Y
// as the centre and R as the radius. Paths connect Points in order. Text
// draws Label centred on X/Y. Any shape with a Label draws it centred on the
// shape after the body.
type Shape struct {
	Kind ShapeKind

	X, Y   float64
	W, H   float64
	R      float64
	Points []Point

	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64

	Label      string
	LabelColor color.RGBA

	// Fade is the transparency of the whole shape: 0 draws it as specified,
	// 1 hides it.
	Fade float64
}

// Alpha returns the effective opacity in [0, 1].
func (s Shape) Alpha() float64 {
	switch {
	case s.Fade <= 0:
		return 1
	case s.Fade >= 1:
		return 0
	default:
		return 1 - s.Fade
	}
}

// Scene is the full set of shapes to draw for one tick, back to front.
type Scene struct {
	Width, Height int
	Background    color.RGBA
	Shapes        []Shape
}

// Labeled returns the shapes carrying the given label.
func (s Scene) Labeled(label string) []Shape {
	var out []Shape
	for _, shape := range s.Shapes {
		if shape.Label == label {
			out = append(out, shape)
		}
	}
	return out
}
