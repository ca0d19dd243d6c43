package body

import (
	"fmt"
	"math"

	"github.com/san-kum/bodykin/internal/geom"
)

// RigidTransform is an immutable 2D pose: a rotation by Angle followed
// by a translation to Trans. The sine and cosine are cached at
// construction since a transform is applied to every point of a body.
type RigidTransform struct {
	Trans geom.Vec2
	Angle float64

	c, s float64
}

// NewRigidTransform returns the transform that rotates by angle radians
// and translates by trans.
func NewRigidTransform(trans geom.Vec2, angle float64) RigidTransform {
	return RigidTransform{
		Trans: trans,
		Angle: angle,
		c:     math.Cos(angle),
		s:     math.Sin(angle),
	}
}

// Identity returns the transform that leaves coordinates unchanged.
func Identity() RigidTransform {
	return NewRigidTransform(geom.Vec2{}, 0)
}

// Rotate applies only the rotation part to a single vector.
func (rt RigidTransform) Rotate(v geom.Vec2) geom.Vec2 {
	return geom.Vec2{
		X: v.X*rt.c - v.Y*rt.s,
		Y: v.X*rt.s + v.Y*rt.c,
	}
}

// Apply maps body-fixed coordinates to inertial coordinates,
// elementwise rotate-then-translate. The input slices must have equal
// length; freshly allocated output slices are returned.
func (rt RigidTransform) Apply(xb, yb []float64) (x, y []float64) {
	x = make([]float64, len(xb))
	y = make([]float64, len(yb))
	rt.applyInto(x, y, xb, yb)
	return x, y
}

func (rt RigidTransform) applyInto(x, y, xb, yb []float64) {
	for i := range xb {
		x[i] = rt.Trans.X + xb[i]*rt.c - yb[i]*rt.s
		y[i] = rt.Trans.Y + xb[i]*rt.s + yb[i]*rt.c
	}
}

// ApplyTo overwrites the body's pose with the transform and recomputes
// the inertial coordinates (and midpoints, when present) from the
// body-fixed coordinates. The body is mutated in place and returned.
func (rt RigidTransform) ApplyTo(b *Body) *Body {
	b.Cent = rt.Trans
	b.Alpha = rt.Angle
	rt.applyInto(b.X, b.Y, b.XB, b.YB)
	if b.HasMidpoints() {
		rt.applyInto(b.XMid, b.YMid, b.XBMid, b.YBMid)
	}
	return b
}

// ApplyAll applies transforms to bodies element-wise, index-aligned.
func ApplyAll(transforms []RigidTransform, bodies List) (List, error) {
	if len(transforms) != len(bodies) {
		return nil, fmt.Errorf("body: %d transforms for %d bodies", len(transforms), len(bodies))
	}
	for i, rt := range transforms {
		rt.ApplyTo(bodies[i])
	}
	return bodies, nil
}
