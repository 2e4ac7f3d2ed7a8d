// Package config loads solver settings from a YAML file.
//
// Every field has a default (see Default). A file only needs to name the
// settings it changes; command-line flags override the file when set.
package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalidFile is returned when the file exists but does not decode.
var ErrInvalidFile = errors.New("config: invalid file")

// File mirrors the YAML layout.
type File struct {
	Algorithm    string    `yaml:"algorithm"`
	Duration     float64   `yaml:"duration"` // seconds per run
	Runs         int       `yaml:"runs"`
	Parallel     bool      `yaml:"parallel"`
	Workers      int       `yaml:"workers"` // 0 = number of CPUs
	Construction string    `yaml:"construction"`
	Seed         int64     `yaml:"seed"` // 0 = time based
	Annealing    Annealing `yaml:"annealing"`
	LogLevel     string    `yaml:"log_level"`
}

// Annealing tunes the simulated-annealing temperature schedule.
type Annealing struct {
	// StartTemperature of 0 lets the driver calibrate it from sampled moves.
	StartTemperature float64 `yaml:"start_temperature"`
	EndRatio         float64 `yaml:"end_ratio"`
}

// Default returns the settings used when neither file nor flags say otherwise.
func Default() File {
	return File{
		Algorithm:    "hill-climbing",
		Duration:     5,
		Runs:         1,
		Construction: "random",
		Annealing:    Annealing{EndRatio: 1e-3},
		LogLevel:     "info",
	}
}

// Load reads path on top of Default. Unknown keys are rejected.
func Load(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, errors.Wrapf(err, "open config %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return File{}, errors.WithMessage(err, path)
	}
	return cfg, nil
}

// Decode parses YAML from r on top of Default. An empty document yields Default.
func Decode(r io.Reader) (File, error) {
	cfg := Default()

	data, err := io.ReadAll(r)
	if err != nil {
		return File{}, errors.WithStack(err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return File{}, errors.Wrapf(ErrInvalidFile, "%v", err)
	}
	return cfg, nil
}

// Budget is the per-run time budget.
func (f File) Budget() time.Duration {
	return time.Duration(f.Duration * float64(time.Second))
}

// Level parses LogLevel; an empty value means info.
func (f File) Level() (logrus.Level, error) {
	if f.LogLevel == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(f.LogLevel)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidFile, "log_level: %v", err)
	}
	return lvl, nil
}
