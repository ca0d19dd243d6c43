package motion

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/bodykin/internal/body"
	"github.com/san-kum/bodykin/internal/geom"
	"github.com/san-kum/bodykin/internal/kinematics"
)

func TestRigidBodyMotion_Velocity(t *testing.T) {
	kin := kinematics.Oscillation{Omega: 2 * math.Pi, AmpX: 1}
	m := NewRigidBodyMotion(kin)
	b := body.Circle(1, 8)

	v, err := m.MotionVelocity(b, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(v) != 3 {
		t.Fatalf("velocity length = %d, want 3", len(v))
	}
	st := kin.Evaluate(0.0)
	if v[0] != st.CDot.X || v[1] != st.CDot.Y || v[2] != st.AlphaDot {
		t.Errorf("velocity = %v, kinematics = %+v", v, st)
	}
}

func TestRigid_MatchesZeroAmplitudeOscillation(t *testing.T) {
	m := Rigid(1.5, -0.5, 0.25)
	osc := kinematics.Oscillation{Ux: 1.5, Uy: -0.5, AlphaDot0: 0.25}

	for _, tm := range []float64{0, 0.7, 2.4} {
		a := m.Motion(tm)
		b := osc.Evaluate(tm)
		if math.Abs(a.C.X-b.C.X) > 1e-14 || math.Abs(a.C.Y-b.C.Y) > 1e-14 ||
			math.Abs(a.Alpha-b.Alpha) > 1e-14 ||
			a.CDot != b.CDot || a.AlphaDot != b.AlphaDot {
			t.Errorf("t=%v: constant-velocity %+v != zero-amplitude oscillation %+v", tm, a, b)
		}
	}
}

func TestRigidBodyMotion_SurfaceVelocityPureRotation(t *testing.T) {
	b := body.Circle(1, 16)
	m := Rigid(0, 0, 2.0)

	u := make([]float64, b.NumPoints())
	v := make([]float64, b.NumPoints())
	if err := m.SurfaceVelocity(u, v, b, 0); err != nil {
		t.Fatal(err)
	}
	// At t=0 the frame is unrotated: u = -omega*y, v = omega*x.
	for i := range u {
		if math.Abs(u[i]+2*b.YB[i]) > 1e-12 || math.Abs(v[i]-2*b.XB[i]) > 1e-12 {
			t.Fatalf("point %d: (%v, %v)", i, u[i], v[i])
		}
	}
}

func TestRigidBodyMotion_SurfaceVelocityDimError(t *testing.T) {
	b := body.Circle(1, 16)
	m := Rigid(1, 0, 0)

	err := m.SurfaceVelocity(make([]float64, 5), make([]float64, 16), b, 0)
	if err == nil {
		t.Fatal("expected dimension error")
	}
	var de DimError
	if !errors.As(err, &de) {
		t.Fatalf("error type %T, want DimError", err)
	}
	if de.Want != 16 || de.Got != 5 {
		t.Errorf("DimError = %+v", de)
	}
}

func TestBasicDirectMotion_SurfaceVelocityCopiesThrough(t *testing.T) {
	b := body.Circle(1, 4)
	u := []float64{1, 2, 3, 4}
	v := []float64{5, 6, 7, 8}
	m, err := NewBasicDirectMotion(u, v)
	if err != nil {
		t.Fatal(err)
	}

	// Rotate the body; the plain deforming motion must ignore the pose.
	body.NewRigidTransform(geom.V(3, 0), math.Pi/2).ApplyTo(b)

	uo := make([]float64, 4)
	vo := make([]float64, 4)
	if err := m.SurfaceVelocity(uo, vo, b, 1.23); err != nil {
		t.Fatal(err)
	}
	for i := range u {
		if uo[i] != u[i] || vo[i] != v[i] {
			t.Fatalf("point %d: (%v, %v), want (%v, %v)", i, uo[i], vo[i], u[i], v[i])
		}
	}
}

func TestBasicDirectMotion_LengthMismatch(t *testing.T) {
	if _, err := NewBasicDirectMotion([]float64{1}, []float64{1, 2}); err == nil {
		t.Error("expected constructor error for unequal arrays")
	}

	m, _ := NewBasicDirectMotion([]float64{1, 2}, []float64{3, 4})
	b := body.Circle(1, 5)
	if _, err := m.MotionVelocity(b, 0); err == nil {
		t.Error("expected error for 2-point field on 5-point body")
	}
}

func TestDirectMotion_TimeDependentField(t *testing.T) {
	b := body.Circle(1, 8)
	// Radial pulsing: each point moves outward at rate proportional to cos(t).
	m := NewDirectMotion(func(t float64, xb, yb, u, v []float64) {
		c := math.Cos(t)
		for i := range xb {
			u[i] = c * xb[i]
			v[i] = c * yb[i]
		}
	})

	vel, err := m.MotionVelocity(b, 0)
	if err != nil {
		t.Fatal(err)
	}
	n := b.NumPoints()
	for i := 0; i < n; i++ {
		if vel[i] != b.XB[i] || vel[n+i] != b.YB[i] {
			t.Fatalf("point %d: (%v, %v)", i, vel[i], vel[n+i])
		}
	}

	velLater, _ := m.MotionVelocity(b, math.Pi/2)
	if velLater.Norm() > 1e-12 {
		t.Errorf("field should vanish at t=pi/2, norm %v", velLater.Norm())
	}
}

func TestComposite_SurfaceVelocityRotatesDeformation(t *testing.T) {
	b := body.Circle(1, 4)
	body.NewRigidTransform(geom.V(0, 0), math.Pi/2).ApplyTo(b)

	deform, _ := NewBasicDirectMotion([]float64{1, 1, 1, 1}, []float64{0, 0, 0, 0})
	m := NewRigidAndDeformingMotion(Rigid(0, 0, 0), deform)

	u := make([]float64, 4)
	v := make([]float64, 4)
	if err := m.SurfaceVelocity(u, v, b, 0); err != nil {
		t.Fatal(err)
	}
	// Body-fixed +x velocity, body rotated a quarter turn: inertial +y.
	for i := range u {
		if math.Abs(u[i]) > 1e-12 || math.Abs(v[i]-1) > 1e-12 {
			t.Fatalf("point %d: (%v, %v), want (0, 1)", i, u[i], v[i])
		}
	}
}

func TestComposite_SurfaceVelocitySuperposes(t *testing.T) {
	b := body.Circle(1, 8)
	deform, _ := NewBasicDirectMotion(make([]float64, 8), make([]float64, 8))
	m := NewRigidAndDeformingMotion(Rigid(2, 3, 0), deform)

	u := make([]float64, 8)
	v := make([]float64, 8)
	if err := m.SurfaceVelocity(u, v, b, 0.5); err != nil {
		t.Fatal(err)
	}
	for i := range u {
		if u[i] != 2 || v[i] != 3 {
			t.Fatalf("point %d: (%v, %v), want (2, 3)", i, u[i], v[i])
		}
	}
}
