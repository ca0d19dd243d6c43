package body

import (
	"math"
	"testing"
)

func TestCircle(t *testing.T) {
	b := Circle(2.0, 100)
	if b.NumPoints() != 100 {
		t.Fatalf("point count = %d, want 100", b.NumPoints())
	}
	for i := range b.XB {
		r := math.Hypot(b.XB[i], b.YB[i])
		if math.Abs(r-2.0) > 1e-12 {
			t.Fatalf("point %d radius = %v, want 2", i, r)
		}
	}
	// Inertial coords start identical to body-fixed (identity pose).
	for i := range b.X {
		if b.X[i] != b.XB[i] || b.Y[i] != b.YB[i] {
			t.Fatal("inertial coords not initialized from body-fixed")
		}
	}
}

func TestEllipse(t *testing.T) {
	b := Ellipse(2, 1, 64)
	for i := range b.XB {
		v := b.XB[i]*b.XB[i]/4 + b.YB[i]*b.YB[i]
		if math.Abs(v-1) > 1e-12 {
			t.Fatalf("point %d off ellipse: %v", i, v)
		}
	}
}

func TestPlate(t *testing.T) {
	b := Plate(1.0, 11)
	if b.NumPoints() != 11 {
		t.Fatalf("point count = %d", b.NumPoints())
	}
	if !b.HasMidpoints() {
		t.Fatal("plate should carry midpoints")
	}
	if len(b.XBMid) != 10 {
		t.Fatalf("midpoint count = %d, want 10", len(b.XBMid))
	}
	if b.XB[0] != -0.5 || b.XB[10] != 0.5 {
		t.Errorf("endpoints = %v, %v", b.XB[0], b.XB[10])
	}
	for i := range b.YB {
		if b.YB[i] != 0 {
			t.Fatal("plate should be flat")
		}
	}
}

func TestRectangle(t *testing.T) {
	b := Rectangle(1, 0.5, 60)
	if b.NumPoints() != 60 {
		t.Fatalf("point count = %d", b.NumPoints())
	}
	for i := range b.XB {
		onX := math.Abs(math.Abs(b.XB[i])-1) < 1e-9
		onY := math.Abs(math.Abs(b.YB[i])-0.5) < 1e-9
		if !onX && !onY {
			t.Fatalf("point %d (%v, %v) not on perimeter", i, b.XB[i], b.YB[i])
		}
	}
}

func TestPolygonBranchesBothCarryMidpoints(t *testing.T) {
	xs := []float64{0, 1, 0.5}
	ys := []float64{0, 0, 1}

	for _, shifted := range []bool{false, true} {
		b, err := Polygon(xs, ys, 30, shifted)
		if err != nil {
			t.Fatalf("shifted=%v: %v", shifted, err)
		}
		if !b.HasMidpoints() {
			t.Fatalf("shifted=%v: missing midpoints", shifted)
		}
		if len(b.XBMid) != 30 || len(b.YBMid) != 30 {
			t.Fatalf("shifted=%v: midpoint count %d", shifted, len(b.XBMid))
		}
		for k := 0; k < 30; k++ {
			next := (k + 1) % 30
			wantX := 0.5 * (b.XB[k] + b.XB[next])
			wantY := 0.5 * (b.YB[k] + b.YB[next])
			if math.Abs(b.XBMid[k]-wantX) > 1e-12 || math.Abs(b.YBMid[k]-wantY) > 1e-12 {
				t.Fatalf("shifted=%v: midpoint %d inconsistent", shifted, k)
			}
		}
	}
}

func TestPolygonErrors(t *testing.T) {
	if _, err := Polygon([]float64{0, 1}, []float64{0}, 10, false); err == nil {
		t.Error("expected error for mismatched vertex arrays")
	}
	if _, err := Polygon([]float64{0, 1}, []float64{0, 1}, 10, false); err == nil {
		t.Error("expected error for two-vertex polygon")
	}
}

func TestSplinedPoints(t *testing.T) {
	// Control points on a circle; the spline should stay near it.
	m := 12
	xs := make([]float64, m)
	ys := make([]float64, m)
	for i := 0; i < m; i++ {
		th := 2 * math.Pi * float64(i) / float64(m)
		xs[i] = math.Cos(th)
		ys[i] = math.Sin(th)
	}
	b, err := SplinedPoints(xs, ys, 80)
	if err != nil {
		t.Fatal(err)
	}
	if b.NumPoints() != 80 {
		t.Fatalf("point count = %d", b.NumPoints())
	}
	for i := range b.XB {
		r := math.Hypot(b.XB[i], b.YB[i])
		if r < 0.9 || r > 1.1 {
			t.Fatalf("point %d radius %v strays from control circle", i, r)
		}
	}
}

func TestNACA4(t *testing.T) {
	b := NACA4(0.02, 0.4, 0.12, 200)
	if b.NumPoints() != 200 {
		t.Fatalf("point count = %d", b.NumPoints())
	}
	var minX, maxX float64
	for i := range b.XB {
		minX = math.Min(minX, b.XB[i])
		maxX = math.Max(maxX, b.XB[i])
	}
	if chord := maxX - minX; math.Abs(chord-1) > 0.02 {
		t.Errorf("chord = %v, want ~1", chord)
	}
}
