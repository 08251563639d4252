// Package storage persists headless runs: one directory per run with a
// metadata file and the sampled trajectory.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
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

// RunMetadata summarizes one recorded run.
type RunMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Dt        float64            `json:"dt"`
	Elapsed   float64            `json:"elapsed"`
	Outcome   string             `json:"outcome"` // final lifecycle phase
	Escapes   int                `json:"escapes"`
	Bounces   int                `json:"bounces"`
	Resets    int                `json:"resets"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Sample is one trajectory row.
type Sample struct {
	Time  float64
	X     float64
	Y     float64
	VX    float64
	VY    float64
	Speed float64
	Alive int
}

// Save writes metadata.json and trajectory.csv under a fresh run
// directory and returns the run id.
func (s *Store) Save(meta RunMetadata, samples []Sample) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Preset, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time", "x", "y", "vx", "vy", "speed", "alive_rings"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, sm := range samples {
		row := []string{
			strconv.FormatFloat(sm.Time, 'f', 6, 64),
			strconv.FormatFloat(sm.X, 'f', 6, 64),
			strconv.FormatFloat(sm.Y, 'f', 6, 64),
			strconv.FormatFloat(sm.VX, 'f', 6, 64),
			strconv.FormatFloat(sm.VY, 'f', 6, 64),
			strconv.FormatFloat(sm.Speed, 'f', 6, 64),
			strconv.Itoa(sm.Alive),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for every stored run.
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
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

// Load reads one run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads a run's sampled trajectory.
func (s *Store) LoadTrajectory(runID string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 7

	// Skip header.
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return []Sample{}, nil
		}
		return nil, err
	}

	samples := make([]Sample, 0)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		fields := make([]float64, 6)
		ok := true
		for i := 0; i < 6; i++ {
			fields[i], err = strconv.ParseFloat(record[i], 64)
			if err != nil {
				ok = false
				break
			}
		}
		alive, err := strconv.Atoi(record[6])
		if !ok || err != nil {
			continue
		}

		samples = append(samples, Sample{
			Time:  fields[0],
			X:     fields[1],
			Y:     fields[2],
			VX:    fields[3],
			VY:    fields[4],
			Speed: fields[5],
			Alive: alive,
		})
	}
	return samples, nil
}

// ExportJSON writes a run's metadata to w as indented JSON.
func (s *Store) ExportJSON(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
