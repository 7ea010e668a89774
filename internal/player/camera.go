package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	maxPitch = 89.0
	minPitch = -89.0
)

// Camera is the first-person viewpoint: a world-space position plus yaw
// and pitch in degrees. Yaw 0 looks down +X.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float64
	Pitch    float64
}

// ApplyLookDelta adds a look change in degrees. Pitch is constrained so
// the view can never flip over the vertical.
func (c *Camera) ApplyLookDelta(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < minPitch {
		c.Pitch = minPitch
	}
}

// MoveLocal applies a per-tick position delta from the movement integrator.
// The integrator's horizontal axes are camera-local with an inverted sign
// (forward accumulates negative z, right accumulates negative x), so the
// horizontal components are negated and rotated into the yaw frame; the
// vertical component passes through unchanged.
func (c *Camera) MoveLocal(delta mgl32.Vec3) {
	yaw := mgl32.DegToRad(float32(c.Yaw))
	front := mgl32.Vec3{float32(math.Cos(float64(yaw))), 0, float32(math.Sin(float64(yaw)))}
	right := mgl32.Vec3{-front.Z(), 0, front.X()}

	c.Position = c.Position.
		Add(right.Mul(-delta.X())).
		Add(front.Mul(-delta.Z()))
	c.Position[1] += delta.Y()
}

// Front returns the unit view direction.
func (c *Camera) Front() mgl32.Vec3 {
	y := mgl32.DegToRad(float32(c.Yaw))
	p := mgl32.DegToRad(float32(c.Pitch))
	return mgl32.Vec3{
		float32(math.Cos(float64(y)) * math.Cos(float64(p))),
		float32(math.Sin(float64(p))),
		float32(math.Sin(float64(y)) * math.Cos(float64(p))),
	}.Normalize()
}

// ViewMatrix builds the look-at matrix for the current pose.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	target := c.Position.Add(c.Front())
	return mgl32.LookAtV(c.Position, target, mgl32.Vec3{0, 1, 0})
}
