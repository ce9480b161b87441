// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/gfxlab"
)

func TestLinePoints(t *testing.T) {
	tests := []struct {
		name     string
		from, to Point
		want     []Point
	}{
		{
			name: "horizontal",
			from: Pt(0, 0), to: Pt(5, 0),
			want: []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}},
		},
		{
			name: "vertical upwards",
			from: Pt(0, 0), to: Pt(0, -3),
			want: []Point{{0, 0}, {0, -1}, {0, -2}},
		},
		{
			name: "diagonal",
			from: Pt(0, 0), to: Pt(3, 3),
			want: []Point{{0, 0}, {1, 1}, {2, 2}},
		},
		{
			name: "shallow",
			from: Pt(0, 0), to: Pt(4, 2),
			want: []Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}},
		},
		{
			name: "shallow reversed",
			from: Pt(4, 2), to: Pt(0, 0),
			want: []Point{{4, 2}, {3, 1}, {2, 1}, {1, 0}},
		},
		{
			name: "steep negative x",
			from: Pt(0, 0), to: Pt(-2, 4),
			want: []Point{{0, 0}, {-1, 1}, {-1, 2}, {-2, 3}},
		},
		{
			name: "coincident endpoints",
			from: Pt(7, 7), to: Pt(7, 7),
			want: []Point{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinePoints(tt.from, tt.to)
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("LinePoints(%v, %v) mismatch (-want +got):\n%s", tt.from, tt.to, d)
			}
		})
	}
}

// TestLineProperties checks every segment between points of a small grid:
// pixels stay inside the bounding box, consecutive pixels touch, the walk
// starts at from and stops one step short of to.
func TestLineProperties(t *testing.T) {
	var grid []Point
	for y := -6; y <= 6; y += 3 {
		for x := -7; x <= 7; x++ {
			grid = append(grid, Pt(x, y))
		}
	}

	for _, from := range grid {
		for _, to := range grid {
			pts := LinePoints(from, to)

			if n, want := len(pts), max(abs(to.X-from.X), abs(to.Y-from.Y)); n != want {
				t.Fatalf("Line(%v, %v) emitted %d pixels, want %d", from, to, n, want)
			}
			if len(pts) == 0 {
				continue
			}
			if pts[0] != from {
				t.Fatalf("Line(%v, %v) starts at %v", from, to, pts[0])
			}
			last := pts[len(pts)-1]
			if abs(last.X-to.X) > 1 || abs(last.Y-to.Y) > 1 {
				t.Fatalf("Line(%v, %v) ends at %v, not adjacent to the endpoint", from, to, last)
			}

			minX, maxX := min(from.X, to.X), max(from.X, to.X)
			minY, maxY := min(from.Y, to.Y), max(from.Y, to.Y)
			for i, p := range pts {
				if p.X < minX || p.X > maxX || p.Y < minY || p.Y > maxY {
					t.Fatalf("Line(%v, %v) pixel %v outside bounding box", from, to, p)
				}
				if i > 0 {
					q := pts[i-1]
					if abs(p.X-q.X) > 1 || abs(p.Y-q.Y) > 1 {
						t.Fatalf("Line(%v, %v) gap between %v and %v", from, to, q, p)
					}
				}
			}
		}
	}
}

func TestLineEarlyStop(t *testing.T) {
	n := 0
	for range Line(Pt(0, 0), Pt(100, 30)) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d pixels, want 3", n)
	}
}

type recorder struct {
	pixels []Point
}

func (r *recorder) SetPixel(x, y int, _ gfxlab.RGBA) {
	r.pixels = append(r.pixels, Pt(x, y))
}

func TestDrawPolylineOrder(t *testing.T) {
	var rec recorder
	DrawPolyline(&rec, []Point{{0, 0}, {2, 0}, {2, 2}}, gfxlab.White)

	want := []Point{{0, 0}, {1, 0}, {2, 0}, {2, 1}}
	if d := cmp.Diff(want, rec.pixels); d != "" {
		t.Errorf("DrawPolyline mismatch (-want +got):\n%s", d)
	}
}

func TestDrawPolylineLastWriteWins(t *testing.T) {
	pm := gfxlab.NewPixmap(8, 8)
	DrawLine(pm, Pt(0, 3), Pt(8, 3), gfxlab.Red)
	DrawLine(pm, Pt(4, 0), Pt(4, 8), gfxlab.Green)

	if r, g, _ := pm.RGB8At(4, 3); r != 0 || g != 255 {
		t.Errorf("crossing pixel = (%d, %d), want green", r, g)
	}
	if r, _, _ := pm.RGB8At(3, 3); r != 255 {
		t.Errorf("pixel (3, 3) red = %d, want 255", r)
	}
}

func TestStar(t *testing.T) {
	const size = 512
	pts := Star(size)
	if len(pts) != 6 {
		t.Fatalf("len(Star) = %d, want 6", len(pts))
	}
	if pts[0] != pts[len(pts)-1] {
		t.Errorf("star outline is not closed: %v != %v", pts[0], pts[len(pts)-1])
	}

	pm := gfxlab.NewPixmap(size, size)
	DrawPolyline(pm, pts, gfxlab.White)

	lit := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if r, _, _ := pm.RGB8At(x, y); r == 255 {
				lit++
			}
		}
	}
	if lit < size {
		t.Errorf("only %d pixels lit, want at least %d", lit, size)
	}
	if r, _, _ := pm.RGB8At(size/2, 0); r != 255 {
		t.Error("star apex (size/2, 0) not drawn")
	}
}

func TestStarEdgeClipped(t *testing.T) {
	const size = 16
	var rec recorder
	DrawPolyline(&rec, Star(size), gfxlab.White)

	inside := map[Point]bool{}
	outside := 0
	for _, p := range rec.pixels {
		if p.X >= size || p.Y >= size || p.X < 0 || p.Y < 0 {
			outside++
			continue
		}
		inside[p] = true
	}
	if outside == 0 {
		t.Fatal("star outline never reaches past the pixmap edge")
	}

	pm := gfxlab.NewPixmap(size, size)
	DrawPolyline(pm, Star(size), gfxlab.White)
	lit := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if r, _, _ := pm.RGB8At(x, y); r == 255 {
				lit++
			}
		}
	}
	if lit != len(inside) {
		t.Errorf("lit pixels = %d, want the %d in-bounds outline pixels", lit, len(inside))
	}
}
