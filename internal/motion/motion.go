// Package motion implements the motion algebra that animates bodies:
// rigid motions driven by prescribed kinematics, directly specified
// deformation velocity fields, their superposition, and the flat
// state/velocity vector bookkeeping across body collections.
//
// Motions are immutable evaluators; only bodies carry mutable state.
// The external time-integration driver evaluates [ListVelocity],
// advances the flat state itself, and pushes it back with
// [UpdateBodies].
package motion

import (
	"fmt"
	"math"

	"github.com/san-kum/bodykin/internal/body"
	"github.com/san-kum/bodykin/internal/geom"
	"github.com/san-kum/bodykin/internal/kinematics"
)

// State is a flat vector of reals describing the minimal configuration
// of one or more body/motion pairs. For a rigid motion it is
// (cx, cy, alpha); for a deforming motion the body-fixed x coordinates
// followed by the y coordinates; composites and lists concatenate.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// DimError reports a state or velocity vector whose length does not
// match the length implied by a body/motion pairing. It always aborts
// the operation that detected it; nothing is truncated or padded.
type DimError struct {
	Op   string
	Want int
	Got  int
}

func (e DimError) Error() string {
	return fmt.Sprintf("motion: %s: expected %d values, got %d", e.Op, e.Want, e.Got)
}

// Motion is one way of moving a body: rigid, deforming, or a
// superposition. Implementations are stateless after construction and
// may be shared across bodies.
type Motion interface {
	// StateDim is the length of the state (and velocity) vector for
	// this motion paired with b.
	StateDim(b *body.Body) int

	// MotionState reads the body's current configuration under this
	// motion as a flat vector. It does not evaluate kinematics.
	MotionState(b *body.Body) State

	// MotionVelocity evaluates the rate of change of the motion state
	// at time t.
	MotionVelocity(b *body.Body, t float64) (State, error)

	// SurfaceVelocity fills uOut, vOut with the velocity of every
	// surface point at time t. Rigid and composite motions report
	// inertial-frame velocity; plain deforming motions report their
	// body-fixed field unrotated, leaving frame handling to the caller.
	SurfaceVelocity(uOut, vOut []float64, b *body.Body, t float64) error

	// UpdateBody pushes a state vector into the body's pose and/or
	// body-fixed coordinates, re-deriving inertial coordinates.
	UpdateBody(b *body.Body, state State) error
}

// RigidBodyMotion moves a body as a rigid whole according to a
// prescribed kinematics evaluator.
type RigidBodyMotion struct {
	Kin kinematics.Kinematics
}

func NewRigidBodyMotion(k kinematics.Kinematics) *RigidBodyMotion {
	return &RigidBodyMotion{Kin: k}
}

// Rigid is the constant-velocity convenience constructor: translation
// at (u, v) and rotation at omega.
func Rigid(u, v, omega float64) *RigidBodyMotion {
	return NewRigidBodyMotion(kinematics.ConstantVelocity{U: u, V: v, Omega: omega})
}

// Motion evaluates the wrapped kinematics at t.
func (m *RigidBodyMotion) Motion(t float64) kinematics.State {
	return m.Kin.Evaluate(t)
}

func (m *RigidBodyMotion) StateDim(*body.Body) int { return 3 }

// MotionState reads the body's current pose; it does not re-evaluate
// the kinematics.
func (m *RigidBodyMotion) MotionState(b *body.Body) State {
	return State{b.Cent.X, b.Cent.Y, b.Alpha}
}

func (m *RigidBodyMotion) MotionVelocity(b *body.Body, t float64) (State, error) {
	st := m.Kin.Evaluate(t)
	return State{st.CDot.X, st.CDot.Y, st.AlphaDot}, nil
}

// SurfaceVelocity reports the inertial velocity of each surface point:
// the reference-point velocity plus the angular velocity crossed with
// the rotated radius vector.
func (m *RigidBodyMotion) SurfaceVelocity(uOut, vOut []float64, b *body.Body, t float64) error {
	if err := checkSurfaceLen(uOut, vOut, b); err != nil {
		return err
	}
	st := m.Kin.Evaluate(t)
	for i := range uOut {
		r := geom.V(b.XB[i], b.YB[i]).Rotate(st.Alpha)
		uOut[i] = st.CDot.X - st.AlphaDot*r.Y
		vOut[i] = st.CDot.Y + st.AlphaDot*r.X
	}
	return nil
}

// UpdateBody interprets state as (cx, cy, alpha) and applies the
// corresponding rigid transform to the body.
func (m *RigidBodyMotion) UpdateBody(b *body.Body, state State) error {
	if len(state) != 3 {
		return DimError{Op: "rigid update", Want: 3, Got: len(state)}
	}
	rt := body.NewRigidTransform(geom.V(state[0], state[1]), state[2])
	rt.ApplyTo(b)
	return nil
}

func checkSurfaceLen(uOut, vOut []float64, b *body.Body) error {
	n := b.NumPoints()
	if len(uOut) != n {
		return DimError{Op: "surface velocity u", Want: n, Got: len(uOut)}
	}
	if len(vOut) != n {
		return DimError{Op: "surface velocity v", Want: n, Got: len(vOut)}
	}
	return nil
}
