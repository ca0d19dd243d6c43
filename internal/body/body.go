// Package body defines 2D surface bodies, the rigid transform that
// positions them in the inertial frame, and parametric generators for
// common shapes.
//
// A body carries two parallel representations of its surface:
//
//   - XB, YB: coordinates in the body-fixed frame
//   - X, Y: coordinates in the inertial frame
//
// The inertial coordinates are never authoritative. They are always the
// image of the body-fixed coordinates under the body's current pose, and
// the only sanctioned way to move a body is [RigidTransform.ApplyTo],
// which rewrites the pose and regenerates X, Y in one step.
package body

import (
	"fmt"

	"github.com/san-kum/bodykin/internal/geom"
)

// Body is a closed or open set of surface points with a pose.
// Zero-thickness shapes such as plates additionally carry midpoint
// arrays used by staggered-grid immersed boundary discretizations.
type Body struct {
	// Body-fixed coordinates.
	XB, YB []float64
	// Inertial coordinates, derived from XB, YB via the current pose.
	X, Y []float64

	// Pose: centroid position in the inertial frame and orientation angle.
	Cent  geom.Vec2
	Alpha float64

	// Optional midpoint representation (nil for most shapes).
	XBMid, YBMid []float64
	XMid, YMid   []float64
}

// New builds a body from body-fixed coordinates, placing it at the
// origin with zero angle. Panics if the coordinate slices differ in
// length; generators in this package never produce mismatched arrays.
func New(xb, yb []float64) *Body {
	if len(xb) != len(yb) {
		panic(fmt.Sprintf("body: coordinate length mismatch %d != %d", len(xb), len(yb)))
	}
	b := &Body{
		XB: xb,
		YB: yb,
		X:  make([]float64, len(xb)),
		Y:  make([]float64, len(yb)),
	}
	Identity().ApplyTo(b)
	return b
}

// NumPoints returns the number of surface points.
func (b *Body) NumPoints() int {
	return len(b.XB)
}

// HasMidpoints reports whether the body carries the auxiliary midpoint
// representation.
func (b *Body) HasMidpoints() bool {
	return b.XBMid != nil
}

// Pose returns the body's current pose as a transform. Applying it to
// the body is a no-op on observable state.
func (b *Body) Pose() RigidTransform {
	return NewRigidTransform(b.Cent, b.Alpha)
}

// List is an ordered collection of bodies, index-aligned with a motion
// list during simulation.
type List []*Body

// NumPoints returns the total point count across all bodies.
func (l List) NumPoints() int {
	n := 0
	for _, b := range l {
		n += b.NumPoints()
	}
	return n
}
