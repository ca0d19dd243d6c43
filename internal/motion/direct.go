package motion

import (
	"fmt"

	"github.com/san-kum/bodykin/internal/body"
)

// BasicDirectMotion prescribes a constant body-fixed velocity for every
// surface point. The velocity field deforms the surface; it is
// independent of the body's rigid pose.
type BasicDirectMotion struct {
	U, V []float64
}

func NewBasicDirectMotion(u, v []float64) (*BasicDirectMotion, error) {
	if len(u) != len(v) {
		return nil, fmt.Errorf("motion: direct velocity arrays differ in length: %d != %d", len(u), len(v))
	}
	return &BasicDirectMotion{U: u, V: v}, nil
}

func (m *BasicDirectMotion) StateDim(b *body.Body) int {
	return 2 * b.NumPoints()
}

func (m *BasicDirectMotion) MotionState(b *body.Body) State {
	return deformState(b)
}

func (m *BasicDirectMotion) MotionVelocity(b *body.Body, t float64) (State, error) {
	n := b.NumPoints()
	if len(m.U) != n {
		return nil, DimError{Op: "direct velocity", Want: n, Got: len(m.U)}
	}
	out := make(State, 0, 2*n)
	out = append(out, m.U...)
	out = append(out, m.V...)
	return out, nil
}

// SurfaceVelocity copies the prescribed field straight through. The
// field is defined in the body frame; rotation into the inertial frame
// is the caller's concern (the composite motion does it).
func (m *BasicDirectMotion) SurfaceVelocity(uOut, vOut []float64, b *body.Body, t float64) error {
	if err := checkSurfaceLen(uOut, vOut, b); err != nil {
		return err
	}
	if len(m.U) != b.NumPoints() {
		return DimError{Op: "direct velocity", Want: b.NumPoints(), Got: len(m.U)}
	}
	copy(uOut, m.U)
	copy(vOut, m.V)
	return nil
}

func (m *BasicDirectMotion) UpdateBody(b *body.Body, state State) error {
	return deformUpdate("direct update", b, state)
}

// VelocityField evaluates a time-dependent body-fixed deformation
// velocity at the given body-fixed coordinates, writing into u, v.
type VelocityField func(t float64, xb, yb, u, v []float64)

// DirectMotion prescribes a user-supplied, time-dependent body-fixed
// velocity field.
type DirectMotion struct {
	Field VelocityField
}

func NewDirectMotion(field VelocityField) *DirectMotion {
	return &DirectMotion{Field: field}
}

func (m *DirectMotion) StateDim(b *body.Body) int {
	return 2 * b.NumPoints()
}

func (m *DirectMotion) MotionState(b *body.Body) State {
	return deformState(b)
}

func (m *DirectMotion) MotionVelocity(b *body.Body, t float64) (State, error) {
	n := b.NumPoints()
	u := make([]float64, n)
	v := make([]float64, n)
	m.Field(t, b.XB, b.YB, u, v)
	out := make(State, 0, 2*n)
	out = append(out, u...)
	out = append(out, v...)
	return out, nil
}

func (m *DirectMotion) SurfaceVelocity(uOut, vOut []float64, b *body.Body, t float64) error {
	if err := checkSurfaceLen(uOut, vOut, b); err != nil {
		return err
	}
	m.Field(t, b.XB, b.YB, uOut, vOut)
	return nil
}

func (m *DirectMotion) UpdateBody(b *body.Body, state State) error {
	return deformUpdate("direct update", b, state)
}

// deformState packs the body-fixed coordinates, x then y.
func deformState(b *body.Body) State {
	n := b.NumPoints()
	out := make(State, 0, 2*n)
	out = append(out, b.XB...)
	out = append(out, b.YB...)
	return out
}

// deformUpdate splits state into halves, writes the body-fixed
// coordinates, and re-derives the inertial coordinates through the
// body's existing pose. The pose itself is untouched: deformation moves
// the shape, not the frame.
func deformUpdate(op string, b *body.Body, state State) error {
	n := b.NumPoints()
	if len(state) != 2*n {
		return DimError{Op: op, Want: 2 * n, Got: len(state)}
	}
	copy(b.XB, state[:n])
	copy(b.YB, state[n:])
	b.Pose().ApplyTo(b)
	return nil
}
