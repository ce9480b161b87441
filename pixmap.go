package gfxlab

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

// Pixmap represents a rectangular pixel buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
// The pixmap starts out opaque black.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	p := &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
	p.Clear(Black)
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
// Coordinates outside the pixmap are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.r8()
	p.data[i+1] = c.g8()
	p.data[i+2] = c.b8()
	p.data[i+3] = c.a8()
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// RGB8At returns the 8-bit color channels of a single pixel.
func (p *Pixmap) RGB8At(x, y int) (r, g, b uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.data[i], p.data[i+1], p.data[i+2]
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r, g, b, a := c.r8(), c.g8(), c.b8(), c.a8()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// EncodePNG writes the pixmap to w as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, p.ToImage()); err != nil {
		return fmt.Errorf("gfxlab: encode PNG: %w", err)
	}
	return nil
}

// EncodeBMP writes the pixmap to w as BMP.
// Opaque pixmaps are written as 24-bit bitmaps.
func (p *Pixmap) EncodeBMP(w io.Writer) error {
	if err := bmp.Encode(w, p.ToImage()); err != nil {
		return fmt.Errorf("gfxlab: encode BMP: %w", err)
	}
	return nil
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	return p.save(path, p.EncodePNG)
}

// SaveBMP saves the pixmap to a BMP file.
func (p *Pixmap) SaveBMP(path string) error {
	return p.save(path, p.EncodeBMP)
}

func (p *Pixmap) save(path string, encode func(io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("gfxlab: create file: %w", err)
	}

	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
