package render

import (
	"image/color"
	"math"
	"strings"
)

// Fade scales a premultiplied color by alpha in [0,1].
func Fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: scaleComponent(c.R, alpha),
		G: scaleComponent(c.G, alpha),
		B: scaleComponent(c.B, alpha),
		A: scaleComponent(c.A, alpha),
	}
}

// Blend composites premultiplied src over dst.
func Blend(dst, src color.RGBA) color.RGBA {
	if src.A == 255 {
		return src
	}
	if src.A == 0 {
		return dst
	}
	inv := 255 - uint32(src.A)
	return color.RGBA{
		R: blendComponent(src.R, dst.R, inv),
		G: blendComponent(src.G, dst.G, inv),
		B: blendComponent(src.B, dst.B, inv),
		A: blendComponent(src.A, dst.A, inv),
	}
}

var subscriptDigits = strings.NewReplacer(
	"₀", "0", "₁", "1", "₂", "2", "₃", "3", "₄", "4",
	"₅", "5", "₆", "6", "₇", "7", "₈", "8", "₉", "9",
)

// PlainLabel rewrites subscript digits for bitmap faces that only carry ASCII.
func PlainLabel(s string) string {
	return subscriptDigits.Replace(s)
}

func scaleComponent(v uint8, factor float64) uint8 {
	scaled := math.Round(float64(v) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

func blendComponent(src, dst uint8, inv uint32) uint8 {
	v := uint32(src) + (uint32(dst)*inv+127)/255
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
