// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws scenes into pixmaps on the CPU.
//
// It plays the part a shader pipeline plays in a GPU program: vertices are
// multiplied by Projection x View x Model, divided by w, mapped onto the
// pixel grid with [gfxlab.Viewport] and filled as flat-colored triangles
// with a depth test. Line strips given in normalized device coordinates are
// drawn with the Bresenham rasterizer from package raster.
//
// # Core Types
//
//   - Target: a pixmap plus its depth buffer
//   - SoftwareRenderer: triangle and line-strip rasterization
//   - DrawFunc: one frame of drawing at a given time
//
// # Usage
//
//	s := scene.NewShapes2D()
//	r := render.NewSoftwareRenderer()
//	for i, pm := range render.Frames(render.SceneFunc(r, s), render.WithFrameCount(30)) {
//		_ = pm.SavePNG(fmt.Sprintf("frame%03d.png", i))
//	}
package render
