package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEmpty(t *testing.T) {
	cfg, err := Decode(strings.NewReader("\n"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 5*time.Second, cfg.Budget())
}

func TestDecodeOverridesDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
algorithm: simulated-annealing
duration: 0.5
runs: 8
parallel: true
annealing:
  start_temperature: 12.5
`))
	require.NoError(t, err)

	assert.Equal(t, "simulated-annealing", cfg.Algorithm)
	assert.Equal(t, 500*time.Millisecond, cfg.Budget())
	assert.Equal(t, 8, cfg.Runs)
	assert.True(t, cfg.Parallel)
	assert.Equal(t, 12.5, cfg.Annealing.StartTemperature)
	// Untouched keys keep their defaults.
	assert.Equal(t, 1e-3, cfg.Annealing.EndRatio)
	assert.Equal(t, "random", cfg.Construction)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("algorithms: hill-climbing\n"))
	require.ErrorIs(t, err, ErrInvalidFile)

	_, err = Decode(strings.NewReader("runs: many\n"))
	require.ErrorIs(t, err, ErrInvalidFile)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runs: 3\nlog_level: debug\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Runs)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, lvl)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLevel(t *testing.T) {
	lvl, err := File{}.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, lvl)

	_, err = File{LogLevel: "loud"}.Level()
	require.ErrorIs(t, err, ErrInvalidFile)
}
