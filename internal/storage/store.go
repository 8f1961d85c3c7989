// Package storage persists runs as a directory holding metadata.json and
// trajectory.csv.
package storage

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/lvsim/internal/logging"
	"github.com/san-kum/lvsim/internal/lotka"
	"github.com/sirupsen/logrus"
)

const (
	metadataFile   = "metadata.json"
	trajectoryFile = "trajectory.csv"
)

type Store struct {
	baseDir string
	log     logrus.FieldLogger
}

func New(baseDir string, log logrus.FieldLogger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{baseDir: baseDir, log: log}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Timestamp    time.Time        `json:"timestamp"`
	Params       lotka.Params     `json:"params"`
	Duration     float64          `json:"duration"`
	Steps        int              `json:"steps"`
	TimeColumn   string           `json:"time_column"`
	Unstable     bool             `json:"unstable"`
	TriggerDrift Float            `json:"trigger_drift"`
	MaxDrift     Float            `json:"max_relative_drift"`
	Metrics      map[string]Float `json:"metrics"`
}

// NewMetadata fills the parts of RunMetadata that come from the simulation.
func NewMetadata(name string, sim *lotka.Simulation, duration float64, metrics map[string]float64) RunMetadata {
	return RunMetadata{
		Name:         name,
		Params:       sim.Params(),
		Duration:     duration,
		Steps:        sim.Steps(),
		Unstable:     sim.Unstable(),
		TriggerDrift: Float(sim.TriggerDrift()),
		MaxDrift:     Float(sim.MaxRelativeDrift()),
		Metrics:      Floats(metrics),
	}
}

// Save writes meta and the rows of a run into a fresh directory and returns
// the run id.
func (s *Store) Save(meta RunMetadata, rows []Row) (string, error) {
	now := time.Now()
	name := meta.Name
	if name == "" {
		name = "run"
	}
	runID := fmt.Sprintf("%s_%d", name, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now
	if meta.TimeColumn == "" {
		meta.TimeColumn = ColumnTime
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", fmt.Errorf("write metadata: %w", err)
	}

	f, err := os.Create(filepath.Join(runDir, trajectoryFile))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteTrajectory(f, rows, meta.TimeColumn); err != nil {
		return "", fmt.Errorf("write trajectory: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"run":   runID,
		"steps": len(rows),
	}).Debug("run saved")

	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// List returns the metadata of every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			s.log.WithError(err).WithField("dir", entry.Name()).Warn("skipping unreadable run")
			continue
		}

		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTrajectory reads the rows of a run and fills whichever of T and Step
// was not stored.
func (s *Store) LoadTrajectory(runID string) ([]Row, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, runID, trajectoryFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := ReadTrajectory(f)
	if err != nil {
		return nil, err
	}

	dt := meta.Params.Dt
	for i := range rows {
		if meta.TimeColumn == ColumnStep {
			rows[i].T = float64(rows[i].Step) * dt
		} else if dt > 0 {
			rows[i].Step = int(math.Round(rows[i].T / dt))
		}
	}
	return rows, nil
}
