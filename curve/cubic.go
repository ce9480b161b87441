// Package curve evaluates chains of cubic Bezier segments.
//
// Points are computed with de Casteljau's algorithm: the four control
// points are collapsed pairwise by linear interpolation until one point
// remains. A chain shares endpoints between segments, so n segments are
// described by 3n+1 control points.
package curve

import "github.com/gogpu/gfxlab"

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 gfxlab.Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 gfxlab.Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) gfxlab.Point {
	return BezierPoint(c.P0, c.P1, c.P2, c.P3, t)
}

// Sample returns count+1 points at evenly spaced parameters 0, 1/count, ..., 1.
func (c CubicBez) Sample(count int) []gfxlab.Point {
	if count < 1 {
		return nil
	}
	return c.appendSamples(make([]gfxlab.Point, 0, count+1), count)
}

func (c CubicBez) appendSamples(dst []gfxlab.Point, count int) []gfxlab.Point {
	for j := 0; j <= count; j++ {
		t := float64(j) / float64(count)
		dst = append(dst, c.Eval(t))
	}
	return dst
}

// BezierPoint returns the point at parameter t on the cubic Bezier curve
// defined by p0..p3, by three rounds of linear interpolation.
func BezierPoint(p0, p1, p2, p3 gfxlab.Point, t float64) gfxlab.Point {
	a := p0.Lerp(p1, t)
	b := p1.Lerp(p2, t)
	c := p2.Lerp(p3, t)
	d := a.Lerp(b, t)
	e := b.Lerp(c, t)
	return d.Lerp(e, t)
}
