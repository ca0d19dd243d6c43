package kinematics

import "math"

// Profile is a scalar function of time with its first two derivatives,
// used as the pluggable ramp shape of maneuver kinematics. Implementations
// must be smooth enough that the kinematic acceleration built from
// SecondDeriv stays consistent with the analytically differentiated
// position.
type Profile interface {
	Value(t float64) float64
	Deriv(t float64) float64
	SecondDeriv(t float64) float64
}

// EldredgeRamp is the canonical smoothed one-sided ramp
// (log(cosh(sigma*t))/sigma + t)/2. It tends to zero for t << 0 and to
// t for t >> 0, with the transition sharpness set by Sigma; its slope
// rises smoothly from 0 to 1.
type EldredgeRamp struct {
	Sigma float64
}

func (r EldredgeRamp) Value(t float64) float64 {
	return 0.5 * (logCosh(r.Sigma*t)/r.Sigma + t)
}

func (r EldredgeRamp) Deriv(t float64) float64 {
	return 0.5 * (math.Tanh(r.Sigma*t) + 1)
}

func (r EldredgeRamp) SecondDeriv(t float64) float64 {
	s := sech(r.Sigma * t)
	return 0.5 * r.Sigma * s * s
}

// logCosh computes log(cosh(x)) without overflowing cosh for large x.
func logCosh(x float64) float64 {
	ax := math.Abs(x)
	return ax + math.Log1p(math.Exp(-2*ax)) - math.Ln2
}

func sech(x float64) float64 {
	e := math.Exp(-math.Abs(x))
	return 2 * e / (1 + e*e)
}

// PitchUp is the canonical pitch-up maneuver: constant forward
// translation at U0 with the angle of attack ramping from Alpha0 by
// DeltaAlpha, rotating about an axis offset Pivot from the reference
// point along the body x axis. The angle profile is built from two
// time-shifted copies of Ramp so the pitch rate rises to 2K and falls
// back to zero once the commanded angle is reached.
type PitchUp struct {
	U0    float64
	Pivot float64

	// Nondimensional pitch rate; the peak angular velocity is 2K.
	K float64

	Alpha0     float64
	T0         float64
	DeltaAlpha float64

	Ramp Profile
}

// angle returns alpha and its first two derivatives at t.
func (k PitchUp) angle(t float64) (alpha, alphaDot, alphaDDot float64) {
	dt := k.DeltaAlpha / (2 * k.K)
	u1 := t - k.T0
	u2 := t - k.T0 - dt
	alpha = k.Alpha0 + 2*k.K*(k.Ramp.Value(u1)-k.Ramp.Value(u2))
	alphaDot = 2 * k.K * (k.Ramp.Deriv(u1) - k.Ramp.Deriv(u2))
	alphaDDot = 2 * k.K * (k.Ramp.SecondDeriv(u1) - k.Ramp.SecondDeriv(u2))
	return alpha, alphaDot, alphaDDot
}

func (k PitchUp) Evaluate(t float64) State {
	alpha, alphaDot, alphaDDot := k.angle(t)
	pos, vel, acc := offsetTerms(k.Pivot, 0, alpha, alphaDot, alphaDDot)

	st := State{
		Alpha:     alpha,
		AlphaDot:  alphaDot,
		AlphaDDot: alphaDDot,
	}
	st.C.X = k.U0*t + pos.X
	st.C.Y = pos.Y
	st.CDot.X = k.U0 + vel.X
	st.CDot.Y = vel.Y
	st.CDDot = acc
	return st
}
