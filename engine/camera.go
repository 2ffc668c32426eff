package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	Fov    float32 // vertical field of view, degrees
	Aspect float32
	Near   float32
	Far    float32

	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
}

func NewPerspectiveCamera(fov, aspect, near, far float32) *Camera {
	if aspect <= 0 {
		aspect = 1
	}
	return &Camera{
		Fov:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Up:     mgl32.Vec3{0, 1, 0},
	}
}

func (c *Camera) SetPosition(p mgl32.Vec3) { c.Position = p }

func (c *Camera) LookAt(target mgl32.Vec3) { c.Target = target }

// SetAspect updates the aspect ratio from a viewport size.
func (c *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		c.Aspect = 1
		return
	}
	c.Aspect = float32(width) / float32(height)
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) Projection() mgl32.Mat4 {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), aspect, c.Near, c.Far)
}

// ViewProjection is Projection * View.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Project maps a world point to pixel coordinates in a width x height target.
// ok is false for points at or behind the near plane. depth is the clip-space
// w, which grows with distance from the camera.
func Project(vp mgl32.Mat4, p mgl32.Vec3, near float32, width, height int) (x, y, depth float32, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= near {
		return 0, 0, w, false
	}
	nx := clip.X() / w
	ny := clip.Y() / w
	x = (nx + 1) / 2 * float32(width)
	y = (1 - ny) / 2 * float32(height)
	return x, y, w, true
}
