package trainer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera looking at the instrument. It turns 2D
// cursor positions into pointer rays and projects scene points back onto the
// viewport.
type Camera struct {
	Eye, Target, Up mgl32.Vec3
	FovY            float32 // degrees
	Near, Far       float32
}

var DefaultCamera = Camera{
	Eye:    mgl32.Vec3{0, 0, 1.2},
	Target: mgl32.Vec3{0, 0, 0},
	Up:     mgl32.Vec3{0, 1, 0},
	FovY:   45,
	Near:   0.1,
	Far:    10,
}

func (c Camera) matrices(width, height int) (view, projection mgl32.Mat4) {
	aspect := float32(width) / float32(max(height, 1))
	projection = mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
	view = mgl32.LookAtV(c.Eye, c.Target, c.Up)
	return
}

// Ray returns the pointer ray under the cursor at (x, y), in pixels from the
// top left corner of a viewport of the given size.
func (c Camera) Ray(x, y float32, width, height int) (Ray, error) {
	if width <= 0 || height <= 0 {
		return Ray{}, fmt.Errorf("invalid viewport %dx%d", width, height)
	}
	view, projection := c.matrices(width, height)
	wy := float32(height) - y
	near, err := mgl32.UnProject(mgl32.Vec3{x, wy, 0}, view, projection, 0, 0, width, height)
	if err != nil {
		return Ray{}, fmt.Errorf("unproject near point: %w", err)
	}
	far, err := mgl32.UnProject(mgl32.Vec3{x, wy, 1}, view, projection, 0, 0, width, height)
	if err != nil {
		return Ray{}, fmt.Errorf("unproject far point: %w", err)
	}
	return Ray{Origin: near, Dir: far.Sub(near).Normalize()}, nil
}

// Project returns the viewport position of a point in instrument-local space,
// in pixels from the top left corner.
func (c Camera) Project(p mgl32.Vec3, width, height int) (x, y float32) {
	view, projection := c.matrices(width, height)
	w := mgl32.Project(p, view, projection, 0, 0, width, height)
	return w[0], float32(height) - w[1]
}

// RayTo returns the ray from the eye through a point, as if the cursor was
// placed over it.
func (c Camera) RayTo(p mgl32.Vec3) Ray {
	return PointerRay(c.Eye, p)
}
