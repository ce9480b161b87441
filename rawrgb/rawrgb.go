// Package rawrgb reads and writes headerless 8-bit RGB pixel buffers.
//
// A raw buffer is width*height pixels stored row-major, three bytes per
// pixel (R, G, B), with no header, padding or alpha channel. The image
// dimensions are not stored in the file and must be known by the caller.
package rawrgb

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/gfxlab"
)

// Size is the edge length of the square buffers used by the filter exercise.
const Size = 512

// BytesPerPixel is the number of bytes one pixel occupies in a raw buffer.
const BytesPerPixel = 3

// ErrInvalidSize is returned when a buffer is requested with non-positive dimensions.
var ErrInvalidSize = errors.New("rawrgb: invalid size")

// Pixel is a single RGB pixel.
type Pixel struct {
	R, G, B uint8
}

// Image is a raw RGB pixel buffer.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// New allocates a zeroed (black) image.
func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*BytesPerPixel),
	}, nil
}

// Fill sets every pixel to p.
func (m *Image) Fill(p Pixel) {
	for i := 0; i+2 < len(m.Pix); i += BytesPerPixel {
		m.Pix[i], m.Pix[i+1], m.Pix[i+2] = p.R, p.G, p.B
	}
}

// ByteSize returns the encoded size of the image in bytes.
func (m *Image) ByteSize() int {
	return m.Width * m.Height * BytesPerPixel
}

// offset returns the index of the first byte of pixel (x, y).
func (m *Image) offset(x, y int) int {
	return (y*m.Width + x) * BytesPerPixel
}

// At returns the pixel at (x, y). Out-of-range coordinates yield black.
func (m *Image) At(x, y int) Pixel {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return Pixel{}
	}
	i := m.offset(x, y)
	return Pixel{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2]}
}

// Set stores p at (x, y). Out-of-range coordinates are ignored.
func (m *Image) Set(x, y int, p Pixel) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	i := m.offset(x, y)
	m.Pix[i], m.Pix[i+1], m.Pix[i+2] = p.R, p.G, p.B
}

// Row returns the bytes of row y.
func (m *Image) Row(y int) []uint8 {
	start := m.offset(0, y)
	return m.Pix[start : start+m.Width*BytesPerPixel]
}

// ToPixmap converts the image to an opaque RGBA pixmap.
func (m *Image) ToPixmap() *gfxlab.Pixmap {
	pm := gfxlab.NewPixmap(m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := m.At(x, y)
			pm.SetPixel(x, y, gfxlab.RGB8(p.R, p.G, p.B))
		}
	}
	return pm
}

// Decode reads exactly width*height*3 bytes from r.
// A short input returns an error wrapping io.ErrUnexpectedEOF.
func Decode(r io.Reader, width, height int) (*Image, error) {
	m, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(r, m.Pix); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("rawrgb: read %dx%d pixels: %w", width, height, err)
	}
	return m, nil
}

// Encode writes the pixel bytes to w.
func (m *Image) Encode(w io.Writer) error {
	if _, err := w.Write(m.Pix); err != nil {
		return fmt.Errorf("rawrgb: write pixels: %w", err)
	}
	return nil
}

// Load reads a width x height raw image from path.
func Load(path string, width, height int) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("rawrgb: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	m, err := Decode(f, width, height)
	if err != nil {
		return nil, err
	}
	gfxlab.Logger().Debug("rawrgb: loaded", "path", path, "width", width, "height", height)
	return m, nil
}

// Save writes the image to path, replacing any existing file.
func (m *Image) Save(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("rawrgb: create file: %w", err)
	}

	if err := m.Encode(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
