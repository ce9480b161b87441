package curve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/gfxlab"
)

const epsilon = 1e-12

var pointComparer = cmp.Comparer(func(p1, p2 gfxlab.Point) bool {
	return p1.Approx(p2, 1e-9)
})

func TestBezierPointEndpoints(t *testing.T) {
	ctrl := [][4]gfxlab.Point{
		{gfxlab.Pt(0, 0), gfxlab.Pt(1, 2), gfxlab.Pt(3, 2), gfxlab.Pt(4, 0)},
		{gfxlab.Pt(-1, -1), gfxlab.Pt(-1, -1), gfxlab.Pt(-1, -1), gfxlab.Pt(-1, -1)},
		{gfxlab.Pt(0.3, -0.7), gfxlab.Pt(100, 5), gfxlab.Pt(-8, 2), gfxlab.Pt(1e3, -1e3)},
	}
	for _, c := range ctrl {
		if got := BezierPoint(c[0], c[1], c[2], c[3], 0); got != c[0] {
			t.Errorf("BezierPoint(%v, t=0) = %v, want %v", c, got, c[0])
		}
		if got := BezierPoint(c[0], c[1], c[2], c[3], 1); got != c[3] {
			t.Errorf("BezierPoint(%v, t=1) = %v, want %v", c, got, c[3])
		}
	}
}

func TestBezierPointMatchesBernstein(t *testing.T) {
	c := NewCubicBez(gfxlab.Pt(0, 0), gfxlab.Pt(1, 3), gfxlab.Pt(4, -2), gfxlab.Pt(5, 1))
	for i := 0; i <= 10; i++ {
		tt := float64(i) / 10
		mt := 1 - tt
		want := gfxlab.Pt(
			mt*mt*mt*c.P0.X+3*mt*mt*tt*c.P1.X+3*mt*tt*tt*c.P2.X+tt*tt*tt*c.P3.X,
			mt*mt*mt*c.P0.Y+3*mt*mt*tt*c.P1.Y+3*mt*tt*tt*c.P2.Y+tt*tt*tt*c.P3.Y,
		)
		if got := c.Eval(tt); !got.Approx(want, 1e-9) {
			t.Errorf("Eval(%v) = %v, want %v", tt, got, want)
		}
	}
}

func TestBezierPointMidpoint(t *testing.T) {
	got := BezierPoint(gfxlab.Pt(0, 0), gfxlab.Pt(0, 1), gfxlab.Pt(1, 1), gfxlab.Pt(1, 0), 0.5)
	want := gfxlab.Pt(0.5, 0.75)
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("BezierPoint(t=0.5) = %v, want %v", got, want)
	}
}

func TestSegments(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0}, {3, 0}, {4, 1}, {6, 1}, {7, 2}, {10, 3}, {11, 3},
	}
	for _, tt := range tests {
		if got := Segments(make([]gfxlab.Point, tt.n)); got != tt.want {
			t.Errorf("Segments(%d points) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestChainLength(t *testing.T) {
	for _, count := range []int{1, 2, 15, 64} {
		pts := Chain(GlyphQ, count)
		if want := Segments(GlyphQ) * (count + 1); len(pts) != want {
			t.Errorf("len(Chain(GlyphQ, %d)) = %d, want %d", count, len(pts), want)
		}
	}
}

func TestChainSharedEndpoints(t *testing.T) {
	const count = 15
	pts := Chain(GlyphQ, count)
	per := count + 1
	for s := 0; s < Segments(GlyphQ); s++ {
		first, last := pts[s*per], pts[s*per+count]
		if first != GlyphQ[3*s] {
			t.Errorf("segment %d starts at %v, want %v", s, first, GlyphQ[3*s])
		}
		if last != GlyphQ[3*s+3] {
			t.Errorf("segment %d ends at %v, want %v", s, last, GlyphQ[3*s+3])
		}
	}
}

func TestChainCount1(t *testing.T) {
	ctrl := []gfxlab.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 1}, {X: 5, Y: 1}, {X: 6, Y: 0}}
	want := []gfxlab.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 0}, {X: 6, Y: 0}}
	if d := cmp.Diff(want, Chain(ctrl, 1), pointComparer); d != "" {
		t.Errorf("Chain(count=1) mismatch (-want +got):\n%s", d)
	}
}

func TestChainDegenerate(t *testing.T) {
	if got := Chain(GlyphQ[:3], 10); got != nil {
		t.Errorf("Chain(3 points) = %v, want nil", got)
	}
	if got := Chain(GlyphQ, 0); got != nil {
		t.Errorf("Chain(count=0) = %v, want nil", got)
	}
	if got := NewCubicBez(gfxlab.Pt(0, 0), gfxlab.Pt(0, 0), gfxlab.Pt(0, 0), gfxlab.Pt(0, 0)).Sample(-1); got != nil {
		t.Errorf("Sample(-1) = %v, want nil", got)
	}
}

func TestSampleEvenlySpaced(t *testing.T) {
	line := NewCubicBez(gfxlab.Pt(0, 0), gfxlab.Pt(1, 0), gfxlab.Pt(2, 0), gfxlab.Pt(3, 0))
	want := []gfxlab.Point{{X: 0}, {X: 1}, {X: 2}, {X: 3}}
	if d := cmp.Diff(want, line.Sample(3), pointComparer); d != "" {
		t.Errorf("Sample(3) mismatch (-want +got):\n%s", d)
	}
}
