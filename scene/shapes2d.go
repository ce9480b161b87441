package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitRadius is the radius of the circle the second X shape travels on.
const OrbitRadius = 0.7

// Shapes2D animates two X shapes in the XY plane: one bobbing up and down
// while pulsing in size, one circling the origin while spinning.
type Shapes2D struct {
	bob   *Object
	orbit *Object
}

var _ Scene = (*Shapes2D)(nil)

// NewShapes2D creates the scene at t = 0.
func NewShapes2D() *Shapes2D {
	mesh := XShape()
	s := &Shapes2D{
		bob:   NewObject("bob", mesh, Planar),
		orbit: NewObject("orbit", mesh, Planar),
	}
	s.bob.Color = mgl32.Vec3{1, 0, 0}
	s.orbit.Color = mgl32.Vec3{0, 1, 0}
	s.Update(0)
	return s
}

// Name implements Scene.
func (s *Shapes2D) Name() string { return "shapes2d" }

// Update implements Scene.
func (s *Shapes2D) Update(t float32) {
	sin := float32(math.Sin(float64(t)))

	s.bob.Position = mgl32.Vec3{s.bob.Position.X(), sin, s.bob.Position.Z()}
	s.bob.Scale = mgl32.Vec3{0.5 * sin, 0.5 * sin, 1}

	p := mgl32.Rotate2D(t).Mul2x1(mgl32.Vec2{OrbitRadius, 0})
	s.orbit.Position = mgl32.Vec3{p.X(), p.Y(), 0}
	s.orbit.Rotation = mgl32.Vec3{s.orbit.Rotation.X(), s.orbit.Rotation.Y(), 5 * t}

	s.bob.Update()
	s.orbit.Update()
}

// Camera implements Scene. The shapes are drawn in normalized device
// coordinates.
func (s *Shapes2D) Camera() Camera { return IdentityCamera() }

// Objects implements Scene.
func (s *Shapes2D) Objects() []*Object { return []*Object{s.bob, s.orbit} }

// Background implements Scene.
func (s *Shapes2D) Background() mgl32.Vec3 { return mgl32.Vec3{.1, .1, .1} }
