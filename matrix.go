package gfxlab

// Matrix is a 2D affine transform stored as the top two rows of a 3x3
// matrix:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a scaling by (x, y) about the origin.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Viewport returns the matrix mapping normalized device coordinates
// ([-1, 1] on both axes, Y up) onto a width x height pixel grid
// (origin top-left, Y down).
func Viewport(width, height int) Matrix {
	hw := float64(width) / 2
	hh := float64(height) / 2
	return Translate(hw, hh).Multiply(Scale(hw, -hh))
}

// Multiply returns m * other: other is applied first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies m to p.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}
