package viewer

import (
	"math"

	"github.com/ADavid9914/PaginaWebTRB/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	dragSensitivity  = 0.005
	wheelSensitivity = 0.01
	moveSpeed        = 0.12

	MinDistance = 2.0
	MaxDistance = 40.0
)

// PitchLimit keeps the camera off the poles.
const PitchLimit = math.Pi/2 - 0.1

// Orbit is the spherical camera rig around a movable target.
type Orbit struct {
	Yaw      float64
	Pitch    float64
	Distance float64
	Target   mgl32.Vec3
}

func NewOrbit() Orbit {
	return Orbit{
		Yaw:      0,
		Pitch:    0.2,
		Distance: 8,
		Target:   mgl32.Vec3{0, 0.5, 0},
	}
}

// Drag turns a pointer delta into yaw/pitch. Dragging right decreases yaw,
// dragging down decreases pitch.
func (o *Orbit) Drag(dx, dy float64) {
	o.Yaw -= dx * dragSensitivity
	o.Pitch = common.Clamp(o.Pitch-dy*dragSensitivity, -PitchLimit, PitchLimit)
}

// Zoom applies a wheel delta (positive moves away).
func (o *Orbit) Zoom(deltaY float64) {
	o.Distance = common.Clamp(o.Distance+deltaY*wheelSensitivity, MinDistance, MaxDistance)
}

// Move slides the target on the ground plane, relative to the current yaw.
// forward and left are -1, 0 or +1 per axis.
func (o *Orbit) Move(forward, left float64) {
	if forward == 0 && left == 0 {
		return
	}
	fx, fz := math.Sin(o.Yaw), math.Cos(o.Yaw)
	lx, lz := math.Sin(o.Yaw-math.Pi/2), math.Cos(o.Yaw-math.Pi/2)
	dx := (fx*forward + lx*left) * moveSpeed
	dz := (fz*forward + lz*left) * moveSpeed
	o.Target = o.Target.Add(mgl32.Vec3{float32(dx), 0, float32(dz)})
}

// Eye is the camera position for the current angles and distance.
func (o *Orbit) Eye() mgl32.Vec3 {
	cp := math.Cos(o.Pitch)
	return o.Target.Add(mgl32.Vec3{
		float32(o.Distance * cp * math.Sin(o.Yaw)),
		float32(o.Distance * math.Sin(o.Pitch)),
		float32(o.Distance * cp * math.Cos(o.Yaw)),
	})
}
