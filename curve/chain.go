package curve

import "github.com/gogpu/gfxlab"

// GlyphQ holds the control points of the greek letter q: a closed bowl
// followed by a descending tail. The first segment uses four points, every
// following segment reuses the previous end point plus three new points.
// Coordinates are in normalized device space.
var GlyphQ = []gfxlab.Point{
	{X: 0, Y: 0},
	{X: -.5, Y: 0},
	{X: -.5, Y: -.7},
	{X: 0, Y: -.7},
	{X: .5, Y: -.7},
	{X: .5, Y: 0},
	{X: 0, Y: .2},
	{X: -.5, Y: .3},
	{X: -.5, Y: .7},
	{X: .5, Y: .7},
}

// Segments returns the number of complete cubic segments in ctrl.
// Trailing control points that do not complete a segment are ignored.
func Segments(ctrl []gfxlab.Point) int {
	if len(ctrl) < 4 {
		return 0
	}
	return (len(ctrl) - 1) / 3
}

// Segment returns the i-th cubic segment of the chain.
func Segment(ctrl []gfxlab.Point, i int) CubicBez {
	k := 3 * i
	return NewCubicBez(ctrl[k], ctrl[k+1], ctrl[k+2], ctrl[k+3])
}

// Chain samples every segment of the control point chain at count+1 evenly
// spaced parameters and concatenates the results in segment order, giving
// Segments(ctrl)*(count+1) points. Shared endpoints appear twice, once as
// the end of a segment and once as the start of the next.
//
// Chain returns nil when count < 1 or ctrl holds fewer than four points.
func Chain(ctrl []gfxlab.Point, count int) []gfxlab.Point {
	n := Segments(ctrl)
	if n == 0 || count < 1 {
		return nil
	}
	pts := make([]gfxlab.Point, 0, n*(count+1))
	for i := 0; i < n; i++ {
		pts = Segment(ctrl, i).appendSamples(pts, count)
	}
	gfxlab.Logger().Debug("curve: chain sampled", "segments", n, "points", len(pts))
	return pts
}
