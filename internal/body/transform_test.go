package body

import (
	"math"
	"testing"

	"github.com/san-kum/bodykin/internal/geom"
)

func TestRigidTransform_Apply(t *testing.T) {
	rt := NewRigidTransform(geom.V(1, 2), math.Pi/2)
	x, y := rt.Apply([]float64{1, 0}, []float64{0, 1})

	want := [][2]float64{{1, 3}, {0, 2}}
	for i, w := range want {
		if math.Abs(x[i]-w[0]) > 1e-12 || math.Abs(y[i]-w[1]) > 1e-12 {
			t.Errorf("point %d: got (%v, %v), want (%v, %v)", i, x[i], y[i], w[0], w[1])
		}
	}
}

func TestRigidTransform_ApplyMatchesApplyTo(t *testing.T) {
	b := Circle(0.5, 20)
	rt := NewRigidTransform(geom.V(-0.3, 1.7), 0.8)

	x, y := rt.Apply(b.XB, b.YB)
	rt.ApplyTo(b)

	for i := range x {
		if math.Abs(b.X[i]-x[i]) > 1e-12 || math.Abs(b.Y[i]-y[i]) > 1e-12 {
			t.Fatalf("point %d: body path (%v, %v) != pure path (%v, %v)",
				i, b.X[i], b.Y[i], x[i], y[i])
		}
	}
	if b.Cent != geom.V(-0.3, 1.7) || b.Alpha != 0.8 {
		t.Errorf("pose not written: cent=%v alpha=%v", b.Cent, b.Alpha)
	}
}

func TestRigidTransform_ApplyToMidpoints(t *testing.T) {
	b := Plate(1.0, 11)
	rt := NewRigidTransform(geom.V(2, 0), math.Pi/4)
	rt.ApplyTo(b)

	xm, ym := rt.Apply(b.XBMid, b.YBMid)
	for i := range xm {
		if math.Abs(b.XMid[i]-xm[i]) > 1e-12 || math.Abs(b.YMid[i]-ym[i]) > 1e-12 {
			t.Fatalf("midpoint %d not transformed", i)
		}
	}
}

func TestRigidTransform_Rotate(t *testing.T) {
	rt := NewRigidTransform(geom.V(10, 10), math.Pi/2)
	got := rt.Rotate(geom.V(1, 0))
	// Rotation part only: translation must not leak in.
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y-1) > 1e-12 {
		t.Errorf("Rotate = %v, want {0 1}", got)
	}
}

func TestApplyAll(t *testing.T) {
	bodies := List{Circle(1, 8), Circle(1, 8)}
	transforms := []RigidTransform{
		NewRigidTransform(geom.V(1, 0), 0),
		NewRigidTransform(geom.V(0, 1), math.Pi),
	}

	if _, err := ApplyAll(transforms, bodies); err != nil {
		t.Fatalf("ApplyAll: %v", err)
	}
	if bodies[0].Cent != geom.V(1, 0) {
		t.Errorf("body 0 cent = %v", bodies[0].Cent)
	}
	if bodies[1].Alpha != math.Pi {
		t.Errorf("body 1 alpha = %v", bodies[1].Alpha)
	}

	if _, err := ApplyAll(transforms[:1], bodies); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}
