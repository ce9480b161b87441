// Package gfxlab is a small collection of computer graphics fundamentals
// written as plain Go.
//
// # Overview
//
// The library works through the classic first exercises of a graphics
// course: a per-pixel image filter over a raw RGB buffer, Bresenham line
// rasterization, cubic Bezier evaluation and simple animated 2D and 3D
// scenes rendered by a software rasterizer or shown in a window.
//
// # Quick Start
//
//	pm := gfxlab.NewPixmap(512, 512)
//	raster.DrawPolyline(pm, raster.Star(512), gfxlab.White)
//	_ = pm.SaveBMP("star.bmp")
//
// # Architecture
//
// The root package holds the shared value types:
//   - Pixmap: RGBA8 framebuffer with PNG and BMP output
//   - RGBA, Point, Matrix: color, 2D point and 2D affine transform
//
// The exercises live in sub-packages:
//   - rawrgb: headerless 8-bit RGB buffers (load/save)
//   - filter: per-pixel luminance and brightness filters
//   - raster: integer Bresenham line drawing
//   - curve: de Casteljau cubic Bezier chains
//   - scene: meshes, transforms and time-driven scenes
//   - render: software triangle and line-strip renderer
//   - viewer: windowed frame loop
//   - config: YAML configuration for the cmd/ programs
//
// # Coordinate System
//
// Pixmaps use standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Scene geometry uses normalized device coordinates ([-1, 1], Y up); see
// [Viewport] for the mapping between the two.
package gfxlab
