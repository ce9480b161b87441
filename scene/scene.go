// Package scene describes small animated scenes: fixed meshes, per-object
// transform state and the camera that views them.
//
// A Scene is advanced by calling Update with the elapsed time in seconds.
// Each object recomputes its position, rotation and scale from that time
// alone, then composes its model matrix. Objects never read each other's
// state, so the update order does not matter.
//
// Rendering is left to the caller; see package render.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Scene is an animated collection of objects seen through one camera.
type Scene interface {
	// Name identifies the scene (used for window titles and file names).
	Name() string

	// Update recomputes every object for time t (seconds since start).
	Update(t float32)

	// Camera returns the camera for the latest update.
	Camera() Camera

	// Objects returns the objects in draw order.
	Objects() []*Object

	// Background returns the clear color.
	Background() mgl32.Vec3
}

// Camera holds the view and projection matrices.
type Camera struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// IdentityCamera returns a camera that passes coordinates through unchanged,
// so geometry is given directly in normalized device coordinates.
func IdentityCamera() Camera {
	return Camera{View: mgl32.Ident4(), Projection: mgl32.Ident4()}
}

// ViewProjection returns Projection x View.
func (c Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.View)
}

// MVP returns the full Projection x View x Model matrix for o.
func (c Camera) MVP(o *Object) mgl32.Mat4 {
	return c.ViewProjection().Mul4(o.Model)
}
