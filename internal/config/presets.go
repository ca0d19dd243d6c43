package config

import "math"

// Presets are ready-made scenarios for the CLI and the live view.
var Presets = map[string]*Config{
	"cylinder": {
		Name: "cylinder", Dt: 0.01, Duration: 5.0,
		Bodies: []BodyConfig{
			{
				Shape: "circle", Radius: 0.5, Points: 64,
				Motion: MotionConfig{Kind: "constant", U: 1.0},
			},
		},
	},
	"oscillating_cylinder": {
		Name: "oscillating_cylinder", Dt: 0.005, Duration: 4.0,
		Bodies: []BodyConfig{
			{
				Shape: "circle", Radius: 0.5, Points: 64,
				Motion: MotionConfig{
					Kind: "oscillation_y", Frequency: 2 * math.Pi, AmpY: 0.75,
				},
			},
		},
	},
	"heaving_plate": {
		Name: "heaving_plate", Dt: 0.005, Duration: 4.0,
		Bodies: []BodyConfig{
			{
				Shape: "plate", Length: 1.0, Points: 51,
				Motion: MotionConfig{
					Kind: "pitch_heave", U0: 1.0, Pivot: 0.25,
					Frequency: 2 * math.Pi,
					AmpAlpha:  0.35, PhiAlpha: math.Pi / 2,
					AmpY: 0.25,
				},
			},
		},
	},
	"pitching_foil": {
		Name: "pitching_foil", Dt: 0.005, Duration: 6.0,
		Bodies: []BodyConfig{
			{
				Shape: "naca", Thickness: 0.12, Points: 128,
				Motion: MotionConfig{
					Kind: "pitch_up", U0: 1.0, Pivot: 0.25, K: 0.2,
					T0: 1.0, DeltaAlpha: math.Pi / 4, Sigma: 11,
				},
			},
		},
	},
	"pulsing_circle": {
		Name: "pulsing_circle", Dt: 0.005, Duration: 4.0,
		Bodies: []BodyConfig{
			{
				Shape: "circle", Radius: 0.5, Points: 64,
				Motion: MotionConfig{
					Kind: "pulsing", U: 0.5, Frequency: 2 * math.Pi, PulseAmp: 0.5,
				},
			},
		},
	},
	"tandem": {
		Name: "tandem", Dt: 0.005, Duration: 4.0,
		Bodies: []BodyConfig{
			{
				Shape: "circle", Radius: 0.3, Points: 48, X: -1,
				Motion: MotionConfig{Kind: "constant", U: 1.0},
			},
			{
				Shape: "plate", Length: 1.0, Points: 51, X: 1,
				Motion: MotionConfig{
					Kind: "rotational", Frequency: math.Pi, AmpAlpha: 0.5,
				},
			},
		},
	},
}
