// Package driver runs the prescribed-motion timestep loop over a body
// collection: evaluate the flat motion velocity, advance the flat state,
// push the state back into the bodies. It never solves dynamics; the
// state it advances is purely kinematic.
package driver

import (
	"context"
	"fmt"

	"github.com/san-kum/bodykin/internal/body"
	"github.com/san-kum/bodykin/internal/motion"
)

type Config struct {
	Dt       float64
	Duration float64
	// ValidateState aborts the run when the state picks up NaN or Inf.
	ValidateState bool
}

// Observer is notified after every step with the current flat state.
type Observer interface {
	OnStep(state motion.State, t float64)
}

// Result is the recorded trajectory of a run.
type Result struct {
	Times  []float64
	States []motion.State
	Steps  int
}

// Driver advances a body list under a motion list.
type Driver struct {
	bodies    body.List
	motions   motion.List
	observers []Observer
}

func New(bodies body.List, motions motion.List) (*Driver, error) {
	if len(bodies) != len(motions) {
		return nil, fmt.Errorf("driver: %d bodies for %d motions", len(bodies), len(motions))
	}
	return &Driver{bodies: bodies, motions: motions}, nil
}

func (d *Driver) AddObserver(o Observer) {
	d.observers = append(d.observers, o)
}

// Run steps the bodies from t=0 through cfg.Duration, recording the flat
// state at every step. The state is advanced with a forward Euler push
// of the motion velocity; motions with closed-form position could be set
// exactly, but the velocity path exercises the same bookkeeping the
// external flow solver uses.
func (d *Driver) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	state, err := motion.ListState(d.bodies, d.motions)
	if err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:  make([]float64, 0, steps+1),
		States: make([]motion.State, 0, steps+1),
	}
	t := 0.0
	result.Times = append(result.Times, t)
	result.States = append(result.States, state.Clone())

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		vel, err := motion.ListVelocity(d.bodies, d.motions, t)
		if err != nil {
			return result, err
		}
		for j := range state {
			state[j] += cfg.Dt * vel[j]
		}
		t += cfg.Dt

		if cfg.ValidateState && !state.IsValid() {
			return result, fmt.Errorf("driver: invalid state (NaN/Inf) at t=%.4f", t)
		}
		if _, err := motion.UpdateBodies(d.bodies, state, d.motions); err != nil {
			return result, err
		}

		result.Steps++
		result.Times = append(result.Times, t)
		result.States = append(result.States, state.Clone())

		for _, o := range d.observers {
			o.OnStep(state, t)
		}
	}

	return result, nil
}

// RunWithCallback steps like Run but hands each state to the callback
// instead of recording; returning false stops the run early.
func (d *Driver) RunWithCallback(ctx context.Context, cfg Config, callback func(state motion.State, t float64) bool) error {
	if err := validate(cfg); err != nil {
		return err
	}

	state, err := motion.ListState(d.bodies, d.motions)
	if err != nil {
		return err
	}

	t := 0.0
	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(state, t) {
			return nil
		}

		vel, err := motion.ListVelocity(d.bodies, d.motions, t)
		if err != nil {
			return err
		}
		for j := range state {
			state[j] += cfg.Dt * vel[j]
		}
		t += cfg.Dt

		if _, err := motion.UpdateBodies(d.bodies, state, d.motions); err != nil {
			return err
		}
	}
	return nil
}

func validate(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("driver: dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("driver: duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
