package config

import (
	"math"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	cfg := Presets["heaving_plate"]
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Name != cfg.Name || loaded.Dt != cfg.Dt || loaded.Duration != cfg.Duration {
		t.Errorf("header mismatch: %+v vs %+v", loaded, cfg)
	}
	if len(loaded.Bodies) != 1 {
		t.Fatalf("body count = %d", len(loaded.Bodies))
	}
	if loaded.Bodies[0].Motion.Kind != "pitch_heave" {
		t.Errorf("motion kind = %q", loaded.Bodies[0].Motion.Kind)
	}
	if loaded.Bodies[0].Motion.AmpAlpha != 0.35 {
		t.Errorf("amp_alpha = %v", loaded.Bodies[0].Motion.AmpAlpha)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBuildPresets(t *testing.T) {
	for name, cfg := range Presets {
		t.Run(name, func(t *testing.T) {
			bodies, motions, err := cfg.Build()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if len(bodies) != len(motions) {
				t.Fatalf("%d bodies, %d motions", len(bodies), len(motions))
			}
			if len(bodies) != len(cfg.Bodies) {
				t.Fatalf("built %d bodies, config has %d", len(bodies), len(cfg.Bodies))
			}
			for i, b := range bodies {
				if b.NumPoints() == 0 {
					t.Errorf("body %d has no points", i)
				}
				if _, err := motions[i].MotionVelocity(b, 0.1); err != nil {
					t.Errorf("body %d velocity: %v", i, err)
				}
			}
		})
	}
}

func TestBuildAppliesPose(t *testing.T) {
	cfg := &Config{
		Dt: 0.01, Duration: 1,
		Bodies: []BodyConfig{
			{Shape: "circle", Radius: 1, Points: 16, X: 2, Y: -1, Alpha: math.Pi / 3},
		},
	}
	bodies, _, err := cfg.Build()
	if err != nil {
		t.Fatal(err)
	}
	b := bodies[0]
	if b.Cent.X != 2 || b.Cent.Y != -1 || b.Alpha != math.Pi/3 {
		t.Errorf("pose = %v, %v", b.Cent, b.Alpha)
	}
}

func TestBuildUnknownShape(t *testing.T) {
	cfg := &Config{Bodies: []BodyConfig{{Shape: "dodecahedron"}}}
	if _, _, err := cfg.Build(); err == nil {
		t.Error("expected error for unknown shape")
	}
}

func TestBuildUnknownMotion(t *testing.T) {
	cfg := &Config{Bodies: []BodyConfig{
		{Shape: "circle", Radius: 1, Motion: MotionConfig{Kind: "warp"}},
	}}
	if _, _, err := cfg.Build(); err == nil {
		t.Error("expected error for unknown motion kind")
	}
}
