package gfxlab

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: c.r8(),
		G: c.g8(),
		B: c.b8(),
		A: c.a8(),
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGB8 creates an opaque color from 8-bit channel values.
func RGB8(r, g, b uint8) RGBA {
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}
}

func (c RGBA) r8() uint8 { return uint8(clamp255(c.R*255 + 0.5)) }
func (c RGBA) g8() uint8 { return uint8(clamp255(c.G*255 + 0.5)) }
func (c RGBA) b8() uint8 { return uint8(clamp255(c.B*255 + 0.5)) }
func (c RGBA) a8() uint8 { return uint8(clamp255(c.A*255 + 0.5)) }

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Gray        = RGB(0.5, 0.5, 0.5)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
