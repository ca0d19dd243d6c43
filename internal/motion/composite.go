package motion

import (
	"github.com/san-kum/bodykin/internal/body"
	"github.com/san-kum/bodykin/internal/geom"
)

// RigidAndDeformingMotion superposes a rigid motion and a deforming
// motion. State and velocity vectors put the rigid 3-vector first,
// followed by the deformation 2N-vector.
type RigidAndDeformingMotion struct {
	Rigid  *RigidBodyMotion
	Deform Motion
}

func NewRigidAndDeformingMotion(rigid *RigidBodyMotion, deform Motion) *RigidAndDeformingMotion {
	return &RigidAndDeformingMotion{Rigid: rigid, Deform: deform}
}

func (m *RigidAndDeformingMotion) StateDim(b *body.Body) int {
	return m.Rigid.StateDim(b) + m.Deform.StateDim(b)
}

func (m *RigidAndDeformingMotion) MotionState(b *body.Body) State {
	out := m.Rigid.MotionState(b)
	return append(out, m.Deform.MotionState(b)...)
}

func (m *RigidAndDeformingMotion) MotionVelocity(b *body.Body, t float64) (State, error) {
	rigid, err := m.Rigid.MotionVelocity(b, t)
	if err != nil {
		return nil, err
	}
	deform, err := m.Deform.MotionVelocity(b, t)
	if err != nil {
		return nil, err
	}
	return append(rigid, deform...), nil
}

// SurfaceVelocity rotates the deformation velocity from the body frame
// into the inertial frame using the body's current angle, then adds the
// rigid surface velocity. The rotation must happen before the
// superposition: the deforming field knows nothing of the pose.
func (m *RigidAndDeformingMotion) SurfaceVelocity(uOut, vOut []float64, b *body.Body, t float64) error {
	if err := checkSurfaceLen(uOut, vOut, b); err != nil {
		return err
	}
	n := b.NumPoints()
	ud := make([]float64, n)
	vd := make([]float64, n)
	if err := m.Deform.SurfaceVelocity(ud, vd, b, t); err != nil {
		return err
	}
	rot := body.NewRigidTransform(geom.Vec2{}, b.Alpha)
	if err := m.Rigid.SurfaceVelocity(uOut, vOut, b, t); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		w := rot.Rotate(geom.V(ud[i], vd[i]))
		uOut[i] += w.X
		vOut[i] += w.Y
	}
	return nil
}

// UpdateBody splits the state at the rigid/deformation boundary,
// applies the deformation half first, then the rigid half. The rigid
// transform regenerates the inertial coordinates, so they end up
// reflecting both the new shape and the new pose.
func (m *RigidAndDeformingMotion) UpdateBody(b *body.Body, state State) error {
	want := m.StateDim(b)
	if len(state) != want {
		return DimError{Op: "composite update", Want: want, Got: len(state)}
	}
	if err := m.Deform.UpdateBody(b, state[3:]); err != nil {
		return err
	}
	return m.Rigid.UpdateBody(b, state[:3])
}
