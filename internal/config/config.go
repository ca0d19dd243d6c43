// Package config defines the YAML scenario format: which bodies exist,
// how each one moves, and the timestep settings for driving them.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bodykin/internal/body"
	"github.com/san-kum/bodykin/internal/geom"
	"github.com/san-kum/bodykin/internal/kinematics"
	"github.com/san-kum/bodykin/internal/motion"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 5.0
	DefaultPoints   = 64
)

type Config struct {
	Name     string       `yaml:"name"`
	Dt       float64      `yaml:"dt"`
	Duration float64      `yaml:"duration"`
	Bodies   []BodyConfig `yaml:"bodies"`
}

type BodyConfig struct {
	// Shape: circle, ellipse, rectangle, plate, naca.
	Shape  string `yaml:"shape"`
	Points int    `yaml:"points"`

	Radius    float64 `yaml:"radius"`
	A         float64 `yaml:"a"`
	B         float64 `yaml:"b"`
	Length    float64 `yaml:"length"`
	Camber    float64 `yaml:"camber"`
	CamberPos float64 `yaml:"camber_pos"`
	Thickness float64 `yaml:"thickness"`

	// Initial pose.
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Alpha float64 `yaml:"alpha"`

	Motion MotionConfig `yaml:"motion"`
}

type MotionConfig struct {
	// Kind: constant, oscillation, oscillation_x, oscillation_y,
	// rotational, pitch_heave, pitch_up, pulsing.
	Kind string `yaml:"kind"`

	// Constant velocity.
	U     float64 `yaml:"u"`
	V     float64 `yaml:"v"`
	Omega float64 `yaml:"omega"`

	// Oscillatory parameters; frequency is the angular frequency.
	Frequency float64 `yaml:"frequency"`
	Alpha0    float64 `yaml:"alpha0"`
	AlphaDot0 float64 `yaml:"alpha_dot0"`
	OffsetX   float64 `yaml:"offset_x"`
	OffsetY   float64 `yaml:"offset_y"`
	AmpX      float64 `yaml:"amp_x"`
	PhiX      float64 `yaml:"phi_x"`
	AmpY      float64 `yaml:"amp_y"`
	PhiY      float64 `yaml:"phi_y"`
	AmpAlpha  float64 `yaml:"amp_alpha"`
	PhiAlpha  float64 `yaml:"phi_alpha"`

	// Pitch-up maneuver.
	U0         float64 `yaml:"u0"`
	Pivot      float64 `yaml:"pivot"`
	K          float64 `yaml:"k"`
	T0         float64 `yaml:"t0"`
	DeltaAlpha float64 `yaml:"delta_alpha"`
	Sigma      float64 `yaml:"sigma"`

	// Pulsing deformation amplitude (radial rate per unit radius).
	PulseAmp float64 `yaml:"pulse_amp"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:     "cylinder",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Bodies: []BodyConfig{
			{
				Shape: "circle", Radius: 0.5, Points: DefaultPoints,
				Motion: MotionConfig{Kind: "constant", U: 1.0},
			},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Bodies = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if len(cfg.Bodies) == 0 {
		return nil, fmt.Errorf("config: no bodies in %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build constructs the body and motion lists described by the config,
// index-aligned, with each body posed at its configured position.
func (c *Config) Build() (body.List, motion.List, error) {
	var bodies body.List
	var motions motion.List

	for i, bc := range c.Bodies {
		b, err := bc.buildBody()
		if err != nil {
			return nil, nil, fmt.Errorf("config: body %d: %w", i, err)
		}
		m, err := bc.Motion.buildMotion()
		if err != nil {
			return nil, nil, fmt.Errorf("config: body %d: %w", i, err)
		}
		bodies = append(bodies, b)
		motions.PushBack(m)
	}
	return bodies, motions, nil
}

func (bc BodyConfig) buildBody() (*body.Body, error) {
	n := bc.Points
	if n == 0 {
		n = DefaultPoints
	}

	var b *body.Body
	switch bc.Shape {
	case "circle":
		b = body.Circle(bc.Radius, n)
	case "ellipse":
		b = body.Ellipse(bc.A, bc.B, n)
	case "rectangle":
		b = body.Rectangle(bc.A, bc.B, n)
	case "plate":
		b = body.Plate(bc.Length, n)
	case "naca":
		b = body.NACA4(bc.Camber, bc.CamberPos, bc.Thickness, n)
	default:
		return nil, fmt.Errorf("unknown shape %q", bc.Shape)
	}

	body.NewRigidTransform(geom.V(bc.X, bc.Y), bc.Alpha).ApplyTo(b)
	return b, nil
}

func (mc MotionConfig) buildMotion() (motion.Motion, error) {
	switch mc.Kind {
	case "", "constant":
		return motion.Rigid(mc.U, mc.V, mc.Omega), nil
	case "oscillation":
		return motion.NewRigidBodyMotion(kinematics.Oscillation{
			Ux: mc.U, Uy: mc.V,
			Alpha0: mc.Alpha0, AlphaDot0: mc.AlphaDot0,
			OffsetX: mc.OffsetX, OffsetY: mc.OffsetY,
			Omega: mc.Frequency,
			AmpX:  mc.AmpX, PhiX: mc.PhiX,
			AmpY: mc.AmpY, PhiY: mc.PhiY,
			AmpAlpha: mc.AmpAlpha, PhiAlpha: mc.PhiAlpha,
		}), nil
	case "oscillation_x":
		return motion.NewRigidBodyMotion(kinematics.OscillationX{
			Ux: mc.U, Omega: mc.Frequency, Amp: mc.AmpX, Phi: mc.PhiX,
		}), nil
	case "oscillation_y":
		return motion.NewRigidBodyMotion(kinematics.OscillationY{
			Uy: mc.V, Omega: mc.Frequency, Amp: mc.AmpY, Phi: mc.PhiY,
		}), nil
	case "rotational":
		return motion.NewRigidBodyMotion(kinematics.RotationalOscillation{
			Omega: mc.Frequency, Amp: mc.AmpAlpha, Phi: mc.PhiAlpha,
		}), nil
	case "pitch_heave":
		return motion.NewRigidBodyMotion(kinematics.PitchHeave{
			U0: mc.U0, Pivot: mc.Pivot, Omega: mc.Frequency,
			Alpha0:   mc.Alpha0,
			AmpAlpha: mc.AmpAlpha, PhiAlpha: mc.PhiAlpha,
			AmpY: mc.AmpY, PhiY: mc.PhiY,
		}), nil
	case "pitch_up":
		return motion.NewRigidBodyMotion(kinematics.PitchUp{
			U0: mc.U0, Pivot: mc.Pivot, K: mc.K,
			Alpha0: mc.Alpha0, T0: mc.T0, DeltaAlpha: mc.DeltaAlpha,
			Ramp: kinematics.EldredgeRamp{Sigma: mc.Sigma},
		}), nil
	case "pulsing":
		amp, freq := mc.PulseAmp, mc.Frequency
		deform := motion.NewDirectMotion(func(t float64, xb, yb, u, v []float64) {
			rate := amp * math.Cos(freq*t)
			for i := range xb {
				u[i] = rate * xb[i]
				v[i] = rate * yb[i]
			}
		})
		return motion.NewRigidAndDeformingMotion(motion.Rigid(mc.U, mc.V, mc.Omega), deform), nil
	default:
		return nil, fmt.Errorf("unknown motion kind %q", mc.Kind)
	}
}
