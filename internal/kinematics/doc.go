// Package kinematics provides prescribed rigid-body kinematics: pure
// functions of time that report where a body's reference point is, how
// fast it moves, and how it rotates, together with exact first and
// second time derivatives.
//
// Every evaluator implements [Kinematics], returning a [State] with the
// reference-point position, velocity and acceleration and the angle,
// angular velocity and angular acceleration:
//
//   - [ConstantVelocity]: steady translation and rotation
//   - [Oscillation]: the general oscillatory form with mean drift,
//     x/y/angular oscillation and an offset pitch axis
//   - [OscillationX], [OscillationY], [RotationalOscillation]:
//     single-axis restrictions of the general form
//   - [PitchHeave]: heaving and pitching about an offset axis at
//     constant forward speed
//   - [PitchUp]: smoothed ramp pitch-up maneuver with a pluggable
//     [Profile] ramp shape
//
// Derivatives are analytic, not numerical. When the rotation center is
// offset from the translating reference point, velocity and
// acceleration carry the rotational coupling terms of the moving offset
// vector; restrictions omit only terms that are identically zero.
package kinematics
