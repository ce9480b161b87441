package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidMesh is returned by Mesh.Validate for faces that index past
// the vertex list.
var ErrInvalidMesh = errors.New("scene: invalid mesh")

// Face is a triangle given by three vertex indices.
type Face struct {
	A, B, C uint32
}

// Mesh is an indexed triangle mesh. Meshes are immutable once built.
type Mesh struct {
	Vertices []mgl32.Vec3
	Faces    []Face
}

// Validate checks that every face references existing vertices.
func (m *Mesh) Validate() error {
	n := uint32(len(m.Vertices))
	for i, f := range m.Faces {
		if f.A >= n || f.B >= n || f.C >= n {
			return fmt.Errorf("%w: face %d %v with %d vertices", ErrInvalidMesh, i, f, n)
		}
	}
	return nil
}

// XShape returns the letter X built from two crossing parallelograms,
// spanning [-0.5, 0.5] on both axes in the z = 0 plane.
func XShape() *Mesh {
	return &Mesh{
		Vertices: []mgl32.Vec3{
			// First parallelogram
			{-0.5, 0.5, 0}, {-0.2, 0.5, 0}, {0.5, -0.5, 0}, {0.2, -0.5, 0},
			// Second parallelogram
			{-0.2, -0.5, 0}, {-0.5, -0.5, 0}, {0.2, 0.5, 0}, {0.5, 0.5, 0},
		},
		Faces: []Face{
			{0, 1, 2}, {2, 3, 0},
			{4, 5, 6}, {6, 7, 4},
		},
	}
}

// Cube returns a unit cube centered on the origin.
func Cube() *Mesh {
	return &Mesh{
		Vertices: []mgl32.Vec3{
			// Front face
			{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
			// Back face
			{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
		},
		Faces: []Face{
			{0, 1, 2}, {2, 3, 0}, // front
			{1, 5, 6}, {6, 2, 1}, // right
			{5, 4, 7}, {7, 6, 5}, // back
			{4, 0, 3}, {3, 7, 4}, // left
			{3, 2, 6}, {6, 7, 3}, // top
			{4, 5, 1}, {1, 0, 4}, // bottom
		},
	}
}
