// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/gfxlab"
	"github.com/gogpu/gfxlab/raster"
	"github.com/gogpu/gfxlab/scene"
)

// minW is the smallest clip-space w accepted for a vertex. Triangles with a
// vertex closer to (or behind) the eye plane are skipped, not clipped.
const minW = 1e-6

// Stats counts the work done since the last ResetStats.
type Stats struct {
	Triangles int // triangles submitted
	Culled    int // triangles skipped (behind the eye or zero area)
	Fragments int // pixels that passed the depth test
}

// SoftwareRenderer is a CPU rasterizer for flat-colored triangle meshes and
// line strips. It is not safe for concurrent use.
type SoftwareRenderer struct {
	stats Stats
}

var _ Renderer = (*SoftwareRenderer)(nil)

// NewSoftwareRenderer creates a new CPU-based software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

// Stats returns the counters accumulated since the last reset.
func (r *SoftwareRenderer) Stats() Stats {
	return r.stats
}

// ResetStats zeroes the counters.
func (r *SoftwareRenderer) ResetStats() {
	r.stats = Stats{}
}

// Render implements Renderer.
func (r *SoftwareRenderer) Render(target *Target, s scene.Scene) error {
	if target == nil {
		return errors.New("render: nil target")
	}
	if s == nil {
		return errors.New("render: nil scene")
	}

	target.Clear(Vec3Color(s.Background()))

	cam := s.Camera()
	for _, o := range s.Objects() {
		if o.Mesh == nil {
			continue
		}
		if _, err := r.DrawMesh(target, o.Mesh, cam.MVP(o), o.Color); err != nil {
			return fmt.Errorf("render: object %q: %w", o.Name, err)
		}
	}
	return nil
}

// vertex is a vertex after projection: pixel position and NDC depth.
type vertex struct {
	x, y float64
	z    float32
}

// project runs one vertex through mvp, the perspective divide and the
// viewport transform. ok is false for vertices at or behind the eye.
func project(v mgl32.Vec3, mvp mgl32.Mat4, vp gfxlab.Matrix) (out vertex, ok bool) {
	clip := mvp.Mul4x1(v.Vec4(1))
	w := clip.W()
	if w < minW {
		return vertex{}, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	p := vp.TransformPoint(gfxlab.Pt(float64(ndc.X()), float64(ndc.Y())))
	return vertex{x: p.X, y: p.Y, z: ndc.Z()}, true
}

// DrawMesh fills every face of m transformed by mvp in a flat color and
// returns the number of triangles rasterized. A mesh with out-of-range face
// indices is rejected with scene.ErrInvalidMesh before anything is drawn.
func (r *SoftwareRenderer) DrawMesh(target *Target, m *scene.Mesh, mvp mgl32.Mat4, color mgl32.Vec3) (int, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}

	vp := gfxlab.Viewport(target.Width(), target.Height())
	c := Vec3Color(color)

	projected := make([]vertex, len(m.Vertices))
	visible := make([]bool, len(m.Vertices))
	for i, v := range m.Vertices {
		projected[i], visible[i] = project(v, mvp, vp)
	}

	drawn := 0
	for _, f := range m.Faces {
		r.stats.Triangles++
		if !visible[f.A] || !visible[f.B] || !visible[f.C] {
			r.stats.Culled++
			continue
		}
		if r.fillTriangle(target, projected[f.A], projected[f.B], projected[f.C], c) {
			drawn++
		} else {
			r.stats.Culled++
		}
	}
	return drawn, nil
}

// edge returns twice the signed area of the triangle (a, b, p).
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// fillTriangle rasterizes a triangle by testing pixel centers against its
// three edge functions. Both windings are filled. Returns false for
// degenerate triangles.
func (r *SoftwareRenderer) fillTriangle(target *Target, a, b, c vertex, col gfxlab.RGBA) bool {
	area := edge(a.x, a.y, b.x, b.y, c.x, c.y)
	if area == 0 || math.IsNaN(area) {
		return false
	}

	minX := max(0, int(math.Floor(min(a.x, b.x, c.x))))
	maxX := min(target.Width()-1, int(math.Ceil(max(a.x, b.x, c.x))))
	minY := max(0, int(math.Floor(min(a.y, b.y, c.y))))
	maxY := min(target.Height()-1, int(math.Ceil(max(a.y, b.y, c.y))))

	inv := 1 / area
	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			w0 := edge(b.x, b.y, c.x, c.y, px, py) * inv
			w1 := edge(c.x, c.y, a.x, a.y, px, py) * inv
			w2 := edge(a.x, a.y, b.x, b.y, px, py) * inv
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := float32(w0)*a.z + float32(w1)*b.z + float32(w2)*c.z
			if z < -1 || z > 1 {
				continue
			}
			if target.plot(x, y, z, col) {
				r.stats.Fragments++
			}
		}
	}
	return true
}

// DrawLineStrip connects pts, given in normalized device coordinates, with
// Bresenham lines in color c. No depth test is applied.
func (r *SoftwareRenderer) DrawLineStrip(target *Target, pts []gfxlab.Point, c gfxlab.RGBA) {
	vp := gfxlab.Viewport(target.Width(), target.Height())
	pixels := make([]raster.Point, len(pts))
	for i, p := range pts {
		q := vp.TransformPoint(p)
		pixels[i] = raster.Pt(int(math.Floor(q.X)), int(math.Floor(q.Y)))
	}
	raster.DrawPolyline(target, pixels, c)
}
