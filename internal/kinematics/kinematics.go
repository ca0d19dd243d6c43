package kinematics

import "github.com/san-kum/bodykin/internal/geom"

// State is the instantaneous kinematic state of a body reference frame:
// reference-point position, velocity and acceleration in the inertial
// frame, and the frame angle with its first two time derivatives.
type State struct {
	C     geom.Vec2
	CDot  geom.Vec2
	CDDot geom.Vec2

	Alpha     float64
	AlphaDot  float64
	AlphaDDot float64
}

// Kinematics evaluates a prescribed motion at time t. Implementations
// are immutable after construction and safe to share; Evaluate is a
// total function over t.
type Kinematics interface {
	Evaluate(t float64) State
}

// ConstantVelocity translates at (U, V) and rotates at Omega, starting
// from the origin with zero angle.
type ConstantVelocity struct {
	U, V  float64
	Omega float64
}

func (k ConstantVelocity) Evaluate(t float64) State {
	return State{
		C:        geom.V(k.U*t, k.V*t),
		CDot:     geom.V(k.U, k.V),
		Alpha:    k.Omega * t,
		AlphaDot: k.Omega,
	}
}

// offsetTerms returns the position, velocity and acceleration
// contributions of a rotation center displaced by (ax, ay) from the
// translating reference point, in the body frame. The velocity and
// acceleration entries are the product-rule terms of the rotating
// offset vector and must accompany any kinematics with a nonzero pivot
// offset.
func offsetTerms(ax, ay, alpha, alphaDot, alphaDDot float64) (pos, vel, acc geom.Vec2) {
	sin, cos := sincos(alpha)

	pos = geom.V(-ax*cos+ay*sin, -ay*cos-ax*sin)
	vel = geom.V(
		alphaDot*(ax*sin+ay*cos),
		alphaDot*(ay*sin-ax*cos),
	)
	acc = geom.V(
		alphaDDot*(ax*sin+ay*cos)+alphaDot*alphaDot*(ax*cos-ay*sin),
		alphaDDot*(ay*sin-ax*cos)+alphaDot*alphaDot*(ay*cos+ax*sin),
	)
	return pos, vel, acc
}
