package gfxlab

import "testing"

const epsilon = 1e-9

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"translate", Translate(10, -2), Pt(1, 1), Pt(11, -1)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"translate after scale", Translate(1, 1).Multiply(Scale(2, 2)), Pt(1, 1), Pt(3, 3)},
		{"scale after translate", Scale(2, 2).Multiply(Translate(1, 1)), Pt(1, 1), Pt(4, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !got.Approx(tt.want, epsilon) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestViewport(t *testing.T) {
	vp := Viewport(512, 256)
	tests := []struct {
		ndc, want Point
	}{
		{Pt(-1, 1), Pt(0, 0)},
		{Pt(1, -1), Pt(512, 256)},
		{Pt(0, 0), Pt(256, 128)},
		{Pt(-1, -1), Pt(0, 256)},
	}
	for _, tt := range tests {
		if got := vp.TransformPoint(tt.ndc); !got.Approx(tt.want, epsilon) {
			t.Errorf("Viewport.TransformPoint(%v) = %v, want %v", tt.ndc, got, tt.want)
		}
	}
}

func TestPointLerp(t *testing.T) {
	p, q := Pt(0, 0), Pt(10, -4)
	if got := p.Lerp(q, 0); got != p {
		t.Errorf("Lerp(0) = %v, want %v", got, p)
	}
	if got := p.Lerp(q, 1); got != q {
		t.Errorf("Lerp(1) = %v, want %v", got, q)
	}
	if got := p.Lerp(q, 0.5); !got.Approx(Pt(5, -2), epsilon) {
		t.Errorf("Lerp(0.5) = %v, want (5, -2)", got)
	}
}

func TestColorConversion(t *testing.T) {
	r, g, b, a := RGB8(200, 100, 50).Color().RGBA()
	if r>>8 != 200 || g>>8 != 100 || b>>8 != 50 || a>>8 != 255 {
		t.Errorf("Color().RGBA() = (%d, %d, %d, %d), want (200, 100, 50, 255)", r>>8, g>>8, b>>8, a>>8)
	}
}
