package scene

import "github.com/go-gl/mathgl/mgl32"

// Axis cube dimensions: long along their axis, thin across it.
const (
	AxisThickness = 0.03
	AxisLength    = 10.0
)

// Camera defaults for Origin3D.
var (
	DefaultEye    = mgl32.Vec3{5, 5, 10}
	DefaultTarget = mgl32.Vec3{0, 0, 0}
	DefaultUp     = mgl32.Vec3{0, 1, 0}
)

// Origin3D shows the three coordinate axes as stretched cubes and a gray
// cube circling the Z axis, under a perspective camera that slowly orbits
// the origin.
type Origin3D struct {
	axisX, axisY, axisZ *Object
	cube                *Object

	// ViewRotation holds the camera orbit angles, advanced by Update.
	ViewRotation mgl32.Vec3

	camera Camera
}

var _ Scene = (*Origin3D)(nil)

// NewOrigin3D creates the scene at t = 0.
func NewOrigin3D() *Origin3D {
	mesh := Cube()
	s := &Origin3D{
		axisX: NewObject("axis-x", mesh, Orbital),
		axisY: NewObject("axis-y", mesh, Orbital),
		axisZ: NewObject("axis-z", mesh, Orbital),
		cube:  NewObject("cube", mesh, Orbital),
	}

	s.axisX.Color = mgl32.Vec3{1, 0, 0}
	s.axisY.Color = mgl32.Vec3{0, 1, 0}
	s.axisZ.Color = mgl32.Vec3{0, 0, 1}
	s.cube.Color = mgl32.Vec3{0.5, 0.5, 0.5}

	s.axisX.Scale = mgl32.Vec3{AxisLength, AxisThickness, AxisThickness}
	s.axisY.Scale = mgl32.Vec3{AxisThickness, AxisLength, AxisThickness}
	s.axisZ.Scale = mgl32.Vec3{AxisThickness, AxisThickness, AxisLength}

	s.cube.Position = mgl32.Vec3{0, 0, 5}

	s.camera.Projection = mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 100)
	s.Update(0)
	return s
}

// Name implements Scene.
func (s *Origin3D) Name() string { return "origin3d" }

// Update implements Scene.
func (s *Origin3D) Update(t float32) {
	s.cube.Rotation = mgl32.Vec3{s.cube.Rotation.X(), s.cube.Rotation.Y(), 2 * t}
	s.ViewRotation = mgl32.Vec3{0.1 * t, 0.1 * t, 0.1 * t}

	s.camera.View = OrbitView(s.ViewRotation)

	for _, o := range s.Objects() {
		o.Update()
	}
}

// OrbitView returns the view matrix looking from DefaultEye, rotated about
// the Y axis by rotation.Y, toward the origin.
func OrbitView(rotation mgl32.Vec3) mgl32.Mat4 {
	eye := mgl32.Rotate3DY(rotation.Y()).Mul3x1(DefaultEye)
	return mgl32.LookAtV(eye, DefaultTarget, DefaultUp)
}

// Camera implements Scene.
func (s *Origin3D) Camera() Camera { return s.camera }

// Objects implements Scene.
func (s *Origin3D) Objects() []*Object {
	return []*Object{s.axisX, s.axisY, s.axisZ, s.cube}
}

// Background implements Scene.
func (s *Origin3D) Background() mgl32.Vec3 { return mgl32.Vec3{.1, .1, .1} }
