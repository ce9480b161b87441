package filter

import (
	"math"

	"github.com/gogpu/gfxlab"
	"github.com/gogpu/gfxlab/rawrgb"
)

// DefaultBrightness is the brightness factor applied by [NewSplit].
const DefaultBrightness = 1.5

// Luma holds luminance weights in thousandths.
// Weights that sum to 1000 map a neutral gray onto itself.
type Luma struct {
	R, G, B uint32
}

// Rec601 are the ITU-R BT.601 luma weights (0.299, 0.587, 0.114).
var Rec601 = Luma{R: 299, G: 587, B: 114}

// Op transforms a single pixel.
type Op interface {
	Apply(p rawrgb.Pixel) rawrgb.Pixel
}

// OpFunc adapts an ordinary function to the Op interface.
type OpFunc func(p rawrgb.Pixel) rawrgb.Pixel

// Apply calls f(p).
func (f OpFunc) Apply(p rawrgb.Pixel) rawrgb.Pixel {
	return f(p)
}

// Grayscale returns the weighted sum of the channels, truncated to 8 bits,
// in all three channels. Integer arithmetic keeps the result exact:
// 0.299*r + 0.587*g + 0.114*b is never rounded up by float error.
func Grayscale(p rawrgb.Pixel, w Luma) rawrgb.Pixel {
	sum := w.R*uint32(p.R) + w.G*uint32(p.G) + w.B*uint32(p.B)
	y := sum / 1000
	if y > 255 {
		y = 255
	}
	v := uint8(y)
	return rawrgb.Pixel{R: v, G: v, B: v}
}

// Brighten scales every channel by factor, rounding to the nearest integer
// and clamping to [0, 255].
func Brighten(p rawrgb.Pixel, factor float64) rawrgb.Pixel {
	return rawrgb.Pixel{
		R: scale(p.R, factor),
		G: scale(p.G, factor),
		B: scale(p.B, factor),
	}
}

func scale(c uint8, factor float64) uint8 {
	v := math.Round(float64(c) * factor)
	if v > 255 {
		return 255
	}
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return uint8(v)
}

// GrayscaleOp converts pixels to grayscale with the given weights.
type GrayscaleOp struct {
	Weights Luma
}

// Apply implements Op.
func (o GrayscaleOp) Apply(p rawrgb.Pixel) rawrgb.Pixel {
	return Grayscale(p, o.Weights)
}

// BrightnessOp scales pixels by a constant factor.
type BrightnessOp struct {
	Factor float64
}

// Apply implements Op.
func (o BrightnessOp) Apply(p rawrgb.Pixel) rawrgb.Pixel {
	return Brighten(p, o.Factor)
}

// Apply runs op over every pixel of img in place.
func Apply(img *rawrgb.Image, op Op) {
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			img.Set(x, y, op.Apply(img.At(x, y)))
		}
	}
}

// Split applies Left to the columns x < At and Right to the rest.
type Split struct {
	Left  Op
	Right Op

	// At is the first column handled by Right.
	// Zero or negative means the middle of the image (width/2).
	At int
}

// NewSplit returns the exercise filter: Rec. 601 grayscale on the left half,
// 1.5x brightness on the right half.
func NewSplit() *Split {
	return &Split{
		Left:  GrayscaleOp{Weights: Rec601},
		Right: BrightnessOp{Factor: DefaultBrightness},
	}
}

// boundary returns the split column for an image of the given width.
func (s *Split) boundary(width int) int {
	if s.At <= 0 {
		return width / 2
	}
	return s.At
}

// Apply filters img in place.
func (s *Split) Apply(img *rawrgb.Image) {
	at := s.boundary(img.Width)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			op := s.Right
			if x < at {
				op = s.Left
			}
			if op == nil {
				continue
			}
			img.Set(x, y, op.Apply(img.At(x, y)))
		}
	}
	gfxlab.Logger().Debug("filter: split applied",
		"width", img.Width, "height", img.Height, "split", at)
}
