// Package storage persists recorded motion trajectories: one directory
// per run holding metadata.json and trajectory.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/bodykin/internal/driver"
	"github.com/san-kum/bodykin/internal/motion"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Scenario  string    `json:"scenario"`
	Timestamp time.Time `json:"timestamp"`
	Dt        float64   `json:"dt"`
	Duration  float64   `json:"duration"`
	Steps     int       `json:"steps"`
	StateDim  int       `json:"state_dim"`
}

// Save writes a run directory and returns its ID.
func (s *Store) Save(scenario string, dt, duration float64, result *driver.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	dim := 0
	if len(result.States) > 0 {
		dim = len(result.States[0])
	}
	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Timestamp: time.Now(),
		Dt:        dt,
		Duration:  duration,
		Steps:     result.Steps,
		StateDim:  dim,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		metaFile.Close()
		return "", err
	}
	if err := metaFile.Close(); err != nil {
		return "", err
	}

	if err := writeTrajectory(filepath.Join(runDir, "trajectory.csv"), result); err != nil {
		return "", err
	}
	return runID, nil
}

func writeTrajectory(path string, result *driver.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	dim := 0
	if len(result.States) > 0 {
		dim = len(result.States[0])
	}
	header := make([]string, 0, dim+1)
	header = append(header, "t")
	for i := 0; i < dim; i++ {
		header = append(header, fmt.Sprintf("s%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, dim+1)
	for i, st := range result.States {
		row[0] = strconv.FormatFloat(result.Times[i], 'g', -1, 64)
		for j, v := range st {
			row[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// List returns the metadata of all stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.loadMetadata(e.Name())
		if err != nil {
			continue // skip malformed run dirs
		}
		runs = append(runs, meta)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) loadMetadata(runID string) (RunMetadata, error) {
	var meta RunMetadata
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return meta, err
	}
	err = json.Unmarshal(data, &meta)
	return meta, err
}

// LoadTrajectory reads a stored run back as times and flat states.
func (s *Store) LoadTrajectory(runID string) ([]float64, []motion.State, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 1 {
		return nil, nil, fmt.Errorf("storage: empty trajectory for %s", runID)
	}

	var times []float64
	var states []motion.State
	for _, rec := range records[1:] { // skip header
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, nil, err
		}
		st := make(motion.State, len(rec)-1)
		for j, field := range rec[1:] {
			if st[j], err = strconv.ParseFloat(field, 64); err != nil {
				return nil, nil, err
			}
		}
		times = append(times, t)
		states = append(states, st)
	}
	return times, states, nil
}
