// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"iter"

	"github.com/gogpu/gfxlab"
)

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Plotter receives rasterized pixels.
// *gfxlab.Pixmap implements Plotter.
type Plotter interface {
	SetPixel(x, y int, c gfxlab.RGBA)
}

var _ Plotter = (*gfxlab.Pixmap)(nil)

// Line yields the pixels of the segment from -> to.
//
// The walk stops when the dominant axis reaches the target coordinate, so
// the terminal pixel itself is not yielded and coincident endpoints yield
// nothing.
func Line(from, to Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		dx := abs(to.X - from.X)
		dy := abs(to.Y - from.Y)

		sx := 1
		if from.X > to.X {
			sx = -1
		}
		sy := 1
		if from.Y > to.Y {
			sy = -1
		}

		x, y := from.X, from.Y

		if dx > dy {
			// More horizontal: x is the dominant axis.
			p := 2*dy - dx
			for x != to.X {
				if !yield(Point{X: x, Y: y}) {
					return
				}
				x += sx
				if p >= 0 {
					y += sy
					p += 2 * (dy - dx)
				} else {
					p += 2 * dy
				}
			}
			return
		}

		// More vertical (or diagonal): y is the dominant axis.
		p := 2*dx - dy
		for y != to.Y {
			if !yield(Point{X: x, Y: y}) {
				return
			}
			y += sy
			if p >= 0 {
				x += sx
				p += 2 * (dx - dy)
			} else {
				p += 2 * dx
			}
		}
	}
}

// LinePoints collects the pixels of Line(from, to).
func LinePoints(from, to Point) []Point {
	pts := make([]Point, 0, max(abs(to.X-from.X), abs(to.Y-from.Y)))
	for p := range Line(from, to) {
		pts = append(pts, p)
	}
	return pts
}

// DrawLine plots the segment from -> to in color c.
func DrawLine(dst Plotter, from, to Point, c gfxlab.RGBA) {
	for p := range Line(from, to) {
		dst.SetPixel(p.X, p.Y, c)
	}
}

// DrawPolyline plots the segments pts[0]->pts[1], pts[1]->pts[2], ... in order.
// Pixels are overwritten, so where segments overlap the later one wins.
func DrawPolyline(dst Plotter, pts []Point, c gfxlab.RGBA) {
	for i := 0; i+1 < len(pts); i++ {
		DrawLine(dst, pts[i], pts[i+1], c)
	}
	gfxlab.Logger().Debug("raster: polyline drawn", "points", len(pts))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
