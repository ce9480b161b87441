package scene

import "github.com/go-gl/mathgl/mgl32"

// Transform is the mutable placement of an object.
// Rotation holds Euler angles in radians around X, Y and Z.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

// NewTransform returns a transform at the origin with unit scale.
func NewTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// ComposeFunc turns a transform into a model matrix.
type ComposeFunc func(Transform) mgl32.Mat4

// Planar composes translate x rotateZ x scale, the order used for flat
// shapes moving in the XY plane.
func Planar(t Transform) mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(mgl32.HomogRotate3DZ(t.Rotation.Z())).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// Orbital composes the matrix for an object circling the Z axis:
// translate along Z by Position.Z, rotate around Z by Rotation.Z, shift one
// unit along X, spin in place by yaw (Rotation.Y) and pitch (Rotation.X),
// then scale. Position.X and Position.Y are ignored.
func Orbital(t Transform) mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, t.Position.Z()).
		Mul4(mgl32.HomogRotate3DZ(t.Rotation.Z())).
		Mul4(mgl32.Translate3D(1, 0, 0)).
		Mul4(YawPitchRoll(t.Rotation.Y(), t.Rotation.X(), 0)).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// YawPitchRoll returns Ry(yaw) x Rx(pitch) x Rz(roll).
func YawPitchRoll(yaw, pitch, roll float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(yaw).
		Mul4(mgl32.HomogRotate3DX(pitch)).
		Mul4(mgl32.HomogRotate3DZ(roll))
}

// Object is a mesh instance with its own transform and flat color.
type Object struct {
	Name string
	Mesh *Mesh
	Transform
	Color mgl32.Vec3

	// Model is the matrix computed by the latest Update.
	Model mgl32.Mat4

	compose ComposeFunc
}

// NewObject creates an object at the origin with unit scale.
// A nil compose defaults to Planar.
func NewObject(name string, mesh *Mesh, compose ComposeFunc) *Object {
	if compose == nil {
		compose = Planar
	}
	o := &Object{
		Name:      name,
		Mesh:      mesh,
		Transform: NewTransform(),
		Color:     mgl32.Vec3{1, 0, 0},
		compose:   compose,
	}
	o.Update()
	return o
}

// Update recomputes Model from the current transform.
func (o *Object) Update() {
	o.Model = o.compose(o.Transform)
}
