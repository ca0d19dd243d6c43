package kinematics

import "math"

func sincos(x float64) (sin, cos float64) {
	return math.Sin(x), math.Cos(x)
}

// Oscillation is the general composite oscillatory kinematics: mean
// drift (Ux, Uy), mean angular velocity AlphaDot0 from initial angle
// Alpha0, sinusoidal oscillation at common frequency Omega in x, y and
// angle, and a rotation center offset (OffsetX, OffsetY) in the body
// frame. All other oscillatory variants are restrictions of this form.
type Oscillation struct {
	Ux, Uy    float64
	Alpha0    float64
	AlphaDot0 float64

	// Rotation-center offset from the reference point, body frame.
	OffsetX, OffsetY float64

	// Common angular frequency of all three oscillations.
	Omega float64

	AmpX, PhiX         float64
	AmpY, PhiY         float64
	AmpAlpha, PhiAlpha float64
}

func (k Oscillation) Evaluate(t float64) State {
	sa, ca := sincos(k.Omega*t - k.PhiAlpha)
	alpha := k.Alpha0 + k.AlphaDot0*t + k.AmpAlpha*sa
	alphaDot := k.AlphaDot0 + k.AmpAlpha*k.Omega*ca
	alphaDDot := -k.AmpAlpha * k.Omega * k.Omega * sa

	sx, cx := sincos(k.Omega*t - k.PhiX)
	sy, cy := sincos(k.Omega*t - k.PhiY)

	pos, vel, acc := offsetTerms(k.OffsetX, k.OffsetY, alpha, alphaDot, alphaDDot)

	st := State{
		Alpha:     alpha,
		AlphaDot:  alphaDot,
		AlphaDDot: alphaDDot,
	}
	st.C.X = k.Ux*t + k.AmpX*sx + pos.X
	st.C.Y = k.Uy*t + k.AmpY*sy + pos.Y
	st.CDot.X = k.Ux + k.AmpX*k.Omega*cx + vel.X
	st.CDot.Y = k.Uy + k.AmpY*k.Omega*cy + vel.Y
	st.CDDot.X = -k.AmpX*k.Omega*k.Omega*sx + acc.X
	st.CDDot.Y = -k.AmpY*k.Omega*k.Omega*sy + acc.Y
	return st
}

// OscillationX oscillates along x about a mean drift velocity Ux, with
// no rotation and no y motion.
type OscillationX struct {
	Ux       float64
	Omega    float64
	Amp, Phi float64
}

func (k OscillationX) Evaluate(t float64) State {
	s, c := sincos(k.Omega*t - k.Phi)
	st := State{}
	st.C.X = k.Ux*t + k.Amp*s
	st.CDot.X = k.Ux + k.Amp*k.Omega*c
	st.CDDot.X = -k.Amp * k.Omega * k.Omega * s
	return st
}

// OscillationY oscillates along y about a mean drift velocity Uy, with
// no rotation and no x motion.
type OscillationY struct {
	Uy       float64
	Omega    float64
	Amp, Phi float64
}

func (k OscillationY) Evaluate(t float64) State {
	s, c := sincos(k.Omega*t - k.Phi)
	st := State{}
	st.C.Y = k.Uy*t + k.Amp*s
	st.CDot.Y = k.Uy + k.Amp*k.Omega*c
	st.CDDot.Y = -k.Amp * k.Omega * k.Omega * s
	return st
}

// RotationalOscillation rocks the body about its reference point with
// no translation.
type RotationalOscillation struct {
	Omega    float64
	Amp, Phi float64
}

func (k RotationalOscillation) Evaluate(t float64) State {
	s, c := sincos(k.Omega*t - k.Phi)
	return State{
		Alpha:     k.Amp * s,
		AlphaDot:  k.Amp * k.Omega * c,
		AlphaDDot: -k.Amp * k.Omega * k.Omega * s,
	}
}

// PitchHeave combines constant forward translation at U0, sinusoidal
// heave of amplitude AmpY, and sinusoidal pitch of amplitude AmpAlpha
// about an axis offset Pivot ahead of the reference point along the
// body x axis. The classic flapping-foil kinematics.
type PitchHeave struct {
	U0    float64
	Pivot float64
	Omega float64

	Alpha0             float64
	AmpAlpha, PhiAlpha float64
	AmpY, PhiY         float64
}

func (k PitchHeave) Evaluate(t float64) State {
	sa, ca := sincos(k.Omega*t - k.PhiAlpha)
	alpha := k.Alpha0 + k.AmpAlpha*sa
	alphaDot := k.AmpAlpha * k.Omega * ca
	alphaDDot := -k.AmpAlpha * k.Omega * k.Omega * sa

	sy, cy := sincos(k.Omega*t - k.PhiY)
	pos, vel, acc := offsetTerms(k.Pivot, 0, alpha, alphaDot, alphaDDot)

	st := State{
		Alpha:     alpha,
		AlphaDot:  alphaDot,
		AlphaDDot: alphaDDot,
	}
	st.C.X = k.U0*t + pos.X
	st.C.Y = k.AmpY*sy + pos.Y
	st.CDot.X = k.U0 + vel.X
	st.CDot.Y = k.AmpY*k.Omega*cy + vel.Y
	st.CDDot.X = acc.X
	st.CDDot.Y = -k.AmpY*k.Omega*k.Omega*sy + acc.Y
	return st
}
