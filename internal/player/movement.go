package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	Gravity           = 9.8
	HorizontalDamping = 10.0
	MoveAcceleration  = 20.0
	JumpVelocity      = 8.0

	// GroundY is the height of the flat ground plane the viewer lands on.
	GroundY = 2.0
)

// InputIntent is the per-tick movement request sampled from the input
// layer: four held directional flags plus an edge-triggered jump pulse.
type InputIntent struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Jump     bool
}

// MovementState is the viewer's physics state. Horizontal position and
// velocity live in the camera-local frame with the original's inverted
// sign convention; the camera applies deltas negated in its yaw frame.
type MovementState struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	OnGround bool
}

// Step advances the state by one tick. It is a pure function of its
// arguments, so replays and tests are deterministic.
//
// Tick order: gravity, horizontal damping, input acceleration, position
// integration, ground clamp, jump. A jump pulse is consumed only while
// grounded. The acceleration is subtracted, not added; see MovementState.
func Step(s MovementState, in InputIntent, dt float64) MovementState {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	d := float32(dt)

	s.Velocity[1] -= Gravity * d
	s.Velocity[0] -= s.Velocity[0] * HorizontalDamping * d
	s.Velocity[2] -= s.Velocity[2] * HorizontalDamping * d

	dir := mgl32.Vec3{
		boolAxis(in.Right) - boolAxis(in.Left),
		0,
		boolAxis(in.Forward) - boolAxis(in.Backward),
	}
	// A zero intent vector stays zero; normalizing it would divide by zero.
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}

	if in.Forward || in.Backward {
		s.Velocity[2] -= dir.Z() * MoveAcceleration * d
	}
	if in.Left || in.Right {
		s.Velocity[0] -= dir.X() * MoveAcceleration * d
	}

	s.Position = s.Position.Add(s.Velocity.Mul(d))

	if s.Position.Y() < GroundY {
		s.Velocity[1] = 0
		s.Position[1] = GroundY
		s.OnGround = true
	} else {
		s.OnGround = false
	}

	if in.Jump && s.OnGround {
		s.Velocity[1] += JumpVelocity
		s.OnGround = false
	}

	return s
}

func boolAxis(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
