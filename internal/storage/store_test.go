package storage

import (
	"math"
	"testing"

	"github.com/san-kum/bodykin/internal/driver"
	"github.com/san-kum/bodykin/internal/motion"
)

func sampleResult() *driver.Result {
	return &driver.Result{
		Times: []float64{0, 0.1, 0.2},
		States: []motion.State{
			{0, 0, 0},
			{0.1, 0, 0.05},
			{0.2, 0, 0.1},
		},
		Steps: 2,
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := s.Save("cylinder", 0.1, 0.2, sampleResult())
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("run count = %d, want 1", len(runs))
	}
	if runs[0].ID != runID || runs[0].Scenario != "cylinder" {
		t.Errorf("metadata = %+v", runs[0])
	}
	if runs[0].Steps != 2 || runs[0].StateDim != 3 {
		t.Errorf("steps=%d dim=%d", runs[0].Steps, runs[0].StateDim)
	}

	times, states, err := s.LoadTrajectory(runID)
	if err != nil {
		t.Fatalf("load trajectory: %v", err)
	}
	if len(times) != 3 || len(states) != 3 {
		t.Fatalf("rows = %d/%d, want 3", len(times), len(states))
	}
	if math.Abs(states[2][0]-0.2) > 1e-15 || math.Abs(states[2][2]-0.1) > 1e-15 {
		t.Errorf("last state = %v", states[2])
	}
}

func TestList_EmptyBaseDir(t *testing.T) {
	s := New(t.TempDir() + "/does-not-exist")
	runs, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if runs != nil {
		t.Errorf("runs = %v, want nil", runs)
	}
}

func TestLoadTrajectory_MissingRun(t *testing.T) {
	s := New(t.TempDir())
	if _, _, err := s.LoadTrajectory("ghost_0"); err == nil {
		t.Error("expected error for missing run")
	}
}
