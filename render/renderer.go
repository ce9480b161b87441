// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/gfxlab"
	"github.com/gogpu/gfxlab/scene"
)

// Renderer draws a whole scene into a target.
type Renderer interface {
	// Render clears target to the scene background and draws every object
	// with the scene camera.
	Render(target *Target, s scene.Scene) error
}

// DrawFunc draws one frame into target for time t (seconds since start).
// Frame loops (Frames, package viewer) call it once per frame.
type DrawFunc func(target *Target, t float32) error

// SceneFunc returns a DrawFunc that advances s to the frame time and
// renders it with r.
func SceneFunc(r Renderer, s scene.Scene) DrawFunc {
	return func(target *Target, t float32) error {
		s.Update(t)
		return r.Render(target, s)
	}
}

// StripFunc returns a DrawFunc that draws a static line strip of points in
// normalized device coordinates over a solid background.
func StripFunc(r *SoftwareRenderer, pts []gfxlab.Point, background, c gfxlab.RGBA) DrawFunc {
	return func(target *Target, _ float32) error {
		target.Clear(background)
		r.DrawLineStrip(target, pts, c)
		return nil
	}
}

// Vec3Color converts a mathgl RGB triple into an opaque color.
func Vec3Color(v mgl32.Vec3) gfxlab.RGBA {
	return gfxlab.RGB(float64(v.X()), float64(v.Y()), float64(v.Z()))
}
