// Package geom provides the 2D vector arithmetic used throughout the
// kinematics engine. Positions, velocities and accelerations of body
// reference points are all Vec2 values; rotations act on them through
// [Vec2.Rotate].
package geom

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// V returns a new Vec2.
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Norm returns the Euclidean length of the vector.
func (a Vec2) Norm() float64 {
	return math.Hypot(a.X, a.Y)
}

// Rotate returns the vector rotated counterclockwise by angle radians.
func (a Vec2) Rotate(angle float64) Vec2 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec2{a.X*c - a.Y*s, a.X*s + a.Y*c}
}

// Perp returns the vector rotated by +90 degrees. Multiplying the angular
// velocity into Perp of a radius vector gives the rotational contribution
// to surface velocity.
func (a Vec2) Perp() Vec2 {
	return Vec2{-a.Y, a.X}
}

// IsValid reports whether both components are finite.
func (a Vec2) IsValid() bool {
	return !math.IsNaN(a.X) && !math.IsInf(a.X, 0) &&
		!math.IsNaN(a.Y) && !math.IsInf(a.Y, 0)
}
