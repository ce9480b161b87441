package gfxlab

import "math"

// Point represents a 2D point in normalized device or pixel space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Lerp performs linear interpolation between two points.
// t=0 returns exactly p, t=1 returns exactly q.
func (p Point) Lerp(q Point, t float64) Point {
	mt := 1 - t
	return Point{
		X: p.X*mt + q.X*t,
		Y: p.Y*mt + q.Y*t,
	}
}

// Approx reports whether p and q differ by less than epsilon on both axes.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}
