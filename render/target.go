// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/gogpu/gfxlab"
)

// Target is a CPU render target: a color pixmap and a depth buffer of the
// same size. Depth values are normalized device Z in [-1, 1]; smaller is
// closer.
type Target struct {
	pm    *gfxlab.Pixmap
	depth []float32
}

// NewTarget creates a target cleared to opaque black with an empty depth buffer.
func NewTarget(width, height int) *Target {
	t := &Target{
		pm: gfxlab.NewPixmap(width, height),
	}
	t.depth = make([]float32, t.pm.Width()*t.pm.Height())
	t.ClearDepth()
	return t
}

// Width returns the target width in pixels.
func (t *Target) Width() int {
	return t.pm.Width()
}

// Height returns the target height in pixels.
func (t *Target) Height() int {
	return t.pm.Height()
}

// Pixmap returns the color buffer. It shares memory with the target.
func (t *Target) Pixmap() *gfxlab.Pixmap {
	return t.pm
}

// Clear fills the color buffer with c and resets the depth buffer.
func (t *Target) Clear(c gfxlab.RGBA) {
	t.pm.Clear(c)
	t.ClearDepth()
}

// ClearDepth resets every depth sample to the far plane.
func (t *Target) ClearDepth() {
	inf := float32(math.Inf(1))
	for i := range t.depth {
		t.depth[i] = inf
	}
}

// Depth returns the depth sample at (x, y), or +Inf outside the target.
func (t *Target) Depth(x, y int) float32 {
	if x < 0 || x >= t.Width() || y < 0 || y >= t.Height() {
		return float32(math.Inf(1))
	}
	return t.depth[y*t.Width()+x]
}

// SetPixel writes c without a depth test.
// Target implements raster.Plotter through this method.
func (t *Target) SetPixel(x, y int, c gfxlab.RGBA) {
	t.pm.SetPixel(x, y, c)
}

// plot writes c at (x, y) if z passes the less-or-equal depth test, so
// among fragments at equal depth the last one drawn wins.
func (t *Target) plot(x, y int, z float32, c gfxlab.RGBA) bool {
	if x < 0 || x >= t.Width() || y < 0 || y >= t.Height() {
		return false
	}
	i := y*t.Width() + x
	if z > t.depth[i] {
		return false
	}
	t.depth[i] = z
	t.pm.SetPixel(x, y, c)
	return true
}
